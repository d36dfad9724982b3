// Package atca is a Go binding layer for the native cryptoauth shared
// library that drives Microchip CryptoAuthentication devices (ATSHA204A,
// ATECC508A, ATECC608, ECC204 and friends).
//
// The package has three jobs and deliberately nothing more: it locates and
// loads the shared library, it converts between Go values and the fixed
// C-layout records the library's API expects (see the record subpackage),
// and it resolves device metadata such as names, type enumerators and
// native type sizes. All cryptography and device communication stays inside
// the native library; this layer only crosses the call boundary.
//
// # Opening the library
//
//	lib, err := atca.Open(atca.Config{})
//	if err != nil {
//	    // atca.ErrLibraryLoad: no cryptoauth shared object found
//	}
//	defer lib.Close()
//
// Open performs platform discovery (standard loader paths, the executable
// directory, then Config.SearchPaths) unless Config.LibraryPath pins an
// explicit file. All cgo is isolated in internal/bindings; builds without
// cgo compile fine and Open reports ErrNotBuilt.
//
// # Device metadata
//
//	name := atca.DeviceName(revision) // "ATECC608", or "UNKNOWN"
//	id := atca.DeviceTypeID("ecc204") // atca.DeviceECC204
//
// Unknown revisions and names resolve to sentinels rather than errors; the
// native library treats them the same way.
//
// # Concurrency
//
// The layer is synchronous and performs no locking of its own. The native
// library serializes hardware access internally; callers that share a
// Library across goroutines must provide their own coordination.
package atca
