package bindings

import "errors"

// Config carries the parameters the loader needs to locate the native
// cryptoauth shared library.
type Config struct {
	// Path pins an explicit shared object file. Discovery is skipped when
	// it is set.
	Path string

	// SearchPaths are extra directories consulted during discovery, in
	// addition to the standard loader search path and the directory of the
	// running executable.
	SearchPaths []string
}

// Handle is an opaque identifier returned by the dynamic loader when the
// native library is successfully opened.
type Handle uintptr

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. CI and downstream callers can use this to fall back to
	// safer defaults.
	ErrNotBuilt = errors.New("cryptoauth/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("cryptoauth/internal/bindings: cgo not enabled")

	// ErrNotFound reports that no cryptoauth shared library could be located
	// on any of the searched paths.
	ErrNotFound = errors.New("cryptoauth/internal/bindings: cryptoauth library not found")

	// ErrSymbol reports that a required symbol is absent from the loaded
	// library.
	ErrSymbol = errors.New("cryptoauth/internal/bindings: symbol not found")
)
