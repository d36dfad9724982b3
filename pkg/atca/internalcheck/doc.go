// Package internalcheck provides internal validation and testing utilities.
//
// This package contains static policy checks enforced over the public
// packages of the binding. It is not intended for external use and the API
// may change without notice.
package internalcheck
