// Package logging provides a minimal logging facade for the cryptoauth
// binding.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. It is intentionally small so applications can provide
// their own implementation for testing, redaction policies, or integration
// with existing logging systems.
//
// # Default Implementation
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger := logging.New(slog.New(handler))
//
// # Redaction Support
//
// Secrets read from or written to the device must never reach a log line.
// Mark such attributes instead of logging their values:
//
//	logger.Debug(ctx, "slot written", "slot", 2, logging.Redacted("data"))
//	// Logs: slot=2 data="[redacted]"
package logging
