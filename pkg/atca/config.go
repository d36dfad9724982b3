package atca

import (
	"cryptoauth-go/internal/bindings"
	"cryptoauth-go/pkg/atca/logging"
)

// Config expresses the knobs required to load the native cryptoauth
// library. The zero value performs full platform discovery and logs through
// slog.Default().
type Config struct {
	// LibraryPath pins an explicit shared object file. When set, discovery
	// is skipped and exactly this file is loaded.
	LibraryPath string

	// SearchPaths lists extra directories consulted during discovery, after
	// the standard loader search path and the directory of the running
	// executable.
	SearchPaths []string

	// Logger receives lifecycle and discovery events. Nil binds to
	// slog.Default() via logging.New(nil).
	Logger logging.Logger
}

func (c Config) toBindings() bindings.Config {
	return bindings.Config{Path: c.LibraryPath, SearchPaths: c.SearchPaths}
}
