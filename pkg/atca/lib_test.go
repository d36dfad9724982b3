package atca

import (
	"errors"
	"fmt"
	"testing"

	"cryptoauth-go/internal/bindings"
)

func TestWrapperVersionFallback(t *testing.T) {
	if got := WrapperVersion(); got != fallbackVersion {
		t.Fatalf("expected fallback version %q, got %q", fallbackVersion, got)
	}
}

func TestOpenWithoutNativeLibrary(t *testing.T) {
	lib, err := Open(Config{})
	if err == nil {
		// a cryptoauth library happens to be installed on this machine
		defer lib.Close()
		t.Skip("native cryptoauth library present")
	}
	if !errors.Is(err, ErrNotBuilt) && !errors.Is(err, ErrCGONotEnabled) && !errors.Is(err, ErrLibraryLoad) {
		t.Fatalf("unexpected error from Open: %v", err)
	}
	if lib != nil {
		t.Fatalf("expected nil library, got %+v", lib)
	}
}

func TestCloseNilLibrary(t *testing.T) {
	var l *Library
	if err := l.Close(); err != nil {
		t.Fatalf("Close on nil library: %v", err)
	}
}

func TestCloseTwice(t *testing.T) {
	l := &Library{sizes: NewSizes(nil)}
	if err := l.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := l.Close(); !errors.Is(err, ErrLibraryClosed) {
		t.Fatalf("second Close err = %v, want ErrLibraryClosed", err)
	}
	if l.Handle() != 0 {
		t.Fatalf("Handle after Close = %#x, want 0", l.Handle())
	}
	if _, err := l.NativeVersion(); !errors.Is(err, ErrLibraryClosed) {
		t.Fatalf("NativeVersion after Close err = %v, want ErrLibraryClosed", err)
	}
}

func TestRemapError(t *testing.T) {
	if RemapError(nil) != nil {
		t.Error("RemapError(nil) != nil")
	}

	err := RemapError(fmt.Errorf("discovery failed: %w", bindings.ErrNotFound))
	if !errors.Is(err, ErrLibraryLoad) {
		t.Errorf("not-found err = %v, want ErrLibraryLoad", err)
	}

	if err := RemapError(errTest); !errors.Is(err, errTest) {
		t.Error("unrelated errors must pass through unchanged")
	}
}

var errTest = errors.New("test error")
