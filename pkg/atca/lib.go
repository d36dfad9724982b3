package atca

import (
	"context"

	"cryptoauth-go/internal/bindings"
	"cryptoauth-go/pkg/atca/logging"
)

// knownSizeNames lists the context types whose <name>_size accessors the
// library exports for introspection. They are resolved once when the
// library is opened; names the library does not know fall back to
// DefaultSize on lookup.
var knownSizeNames = []string{
	"atca_aes_cbc_ctx",
	"atca_aes_cmac_ctx",
	"atca_aes_ctr_ctx",
	"atca_aes_gcm_ctx",
	"atca_sha256_ctx",
	"atca_hmac_ctx",
}

// Library is an opened handle to the native cryptoauth library. It is the
// process-wide entry point for every other call in the binding; open it
// once at startup and keep it for the process lifetime, or Close it to drop
// the loader reference.
type Library struct {
	cfg    Config
	handle bindings.Handle
	sizes  *Sizes
	log    logging.Logger
	closed bool
}

// Open loads the native cryptoauth library per cfg and resolves the known
// size accessors. It fails with ErrLibraryLoad when no library can be
// found, and with ErrNotBuilt or ErrCGONotEnabled when the binary was built
// without the native bindings.
func Open(cfg Config) (*Library, error) {
	log := cfg.Logger
	if log == nil {
		log = logging.New(nil)
	}

	h, err := bindings.Open(cfg.toBindings())
	if err != nil {
		return nil, RemapError(err)
	}

	l := &Library{
		cfg:    cfg,
		handle: h,
		sizes:  NewSizes(handleResolver{h}, knownSizeNames...),
		log:    log,
	}
	log.Debug(context.Background(), "cryptoauth library loaded",
		"path", cfg.LibraryPath, "extra_search_paths", len(cfg.SearchPaths))
	return l, nil
}

// Close releases the loader reference to the native library. The method is
// idempotent in effect, returning ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	if l.closed {
		return ErrLibraryClosed
	}
	if err := bindings.Close(l.handle); err != nil {
		return RemapError(err)
	}
	l.closed = true
	l.handle = 0
	return nil
}

// Handle returns the raw loader handle, or zero when the library is closed
// or was never opened.
func (l *Library) Handle() uintptr {
	if l == nil || l.closed {
		return 0
	}
	return uintptr(l.handle)
}

// Sizes returns the native type size registry resolved from this library.
func (l *Library) Sizes() *Sizes { return l.sizes }

// SizeOf is shorthand for Sizes().Size.
func (l *Library) SizeOf(name string) int { return l.sizes.Size(name) }

// NativeVersion reports the version string of the loaded native library via
// its atcab_version entry point.
func (l *Library) NativeVersion() (string, error) {
	if l.closed {
		return "", ErrLibraryClosed
	}
	ver, status, err := bindings.Version(l.handle)
	if err != nil {
		return "", RemapError(err)
	}
	if err := Status(status).Err(); err != nil {
		return "", err
	}
	return ver, nil
}

// handleResolver adapts a loaded library handle to the SizeResolver
// interface using the <name>_size symbol convention.
type handleResolver struct {
	h bindings.Handle
}

func (r handleResolver) ResolveSize(name string) (int, bool) {
	return bindings.SizeOf(r.h, name)
}
