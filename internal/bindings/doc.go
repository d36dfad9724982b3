// Package bindings hosts the thin cgo layer that loads the native cryptoauth
// shared library and resolves symbols from it. The real implementation lives
// behind build tags so that the rest of the repository can compile without
// cgo; no other package in the module may import "C" or "unsafe".
package bindings
