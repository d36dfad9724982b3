//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds or Windows. These allow the
// package to compile but return ErrNotBuilt when called.

func Open(Config) (Handle, error) {
	return 0, ErrNotBuilt
}

func Close(Handle) error {
	return nil
}

func Symbol(Handle, string) (uintptr, bool) {
	return 0, false
}

func SizeOf(Handle, string) (int, bool) {
	return 0, false
}

func Version(Handle) (string, uint8, error) {
	return "", 0, ErrNotBuilt
}
