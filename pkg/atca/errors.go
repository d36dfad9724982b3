package atca

import (
	"errors"
	"fmt"

	"cryptoauth-go/internal/bindings"
)

var (
	// ErrLibraryLoad reports that no cryptoauth shared library could be
	// found or loaded. There is no retry; every subsequent call fails until
	// a library is supplied.
	ErrLibraryLoad = errors.New("cryptoauth library could not be loaded")

	// ErrLibraryClosed is returned when a Library is used after Close.
	ErrLibraryClosed = errors.New("cryptoauth library handle already closed")

	// ErrUnsupportedSize reports an introspected native type size that has
	// no fixed-width scalar representation (anything other than 1, 2 or 4
	// bytes).
	ErrUnsupportedSize = errors.New("native type size is not 1, 2 or 4 bytes")
)

// Errors from the bindings layer re-exported so callers do not import
// internal packages.
var (
	ErrNotBuilt      = bindings.ErrNotBuilt
	ErrCGONotEnabled = bindings.ErrCGONotEnabled
)

// RemapError converts bindings layer errors to public API errors. It is
// exported for use by subpackages.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bindings.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrLibraryLoad, err)
	}
	return err
}
