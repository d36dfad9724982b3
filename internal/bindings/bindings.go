//go:build cgo && !windows

package bindings

/*
#cgo LDFLAGS: -ldl

#include <dlfcn.h>
#include <stdint.h>
#include <stdlib.h>

typedef int (*atca_size_fn)(void);
typedef uint8_t (*atca_version_fn)(char*);

static int atca_call_size(void *fn) {
	return ((atca_size_fn)fn)();
}

static uint8_t atca_call_version(void *fn, char *ver) {
	return ((atca_version_fn)fn)(ver);
}
*/
import "C"

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"
)

// Open loads the native cryptoauth shared library and returns an opaque
// handle to it. An explicit cfg.Path is opened directly; otherwise the
// standard loader search path is tried first, then the directory of the
// running executable and any cfg.SearchPaths.
func Open(cfg Config) (Handle, error) {
	if cfg.Path != "" {
		return dlopen(cfg.Path)
	}

	dirs := candidateDirs(cfg.SearchPaths)
	prependLoaderPath(dirs)

	var firstErr error
	for _, name := range sharedObjectNames() {
		h, err := dlopen(name)
		if err == nil {
			return h, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		for _, dir := range dirs {
			h, err = dlopen(filepath.Join(dir, name))
			if err == nil {
				return h, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrNotFound, firstErr)
}

// Close releases the loader handle. The native library itself keeps any
// hardware state it holds; this only drops the process reference.
func Close(h Handle) error {
	if h == 0 {
		return nil
	}
	if C.dlclose(unsafe.Pointer(uintptr(h))) != 0 {
		return fmt.Errorf("dlclose: %s", dlerror())
	}
	return nil
}

// Symbol resolves name in the loaded library. The second return reports
// whether the symbol exists.
func Symbol(h Handle, name string) (uintptr, bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	C.dlerror() // clear any stale error state
	p := C.dlsym(unsafe.Pointer(uintptr(h)), cname)
	if p == nil {
		return 0, false
	}
	return uintptr(p), true
}

// SizeOf invokes the library's <name>_size introspection function and returns
// the byte size it reports. The second return is false when the library does
// not export such a symbol.
func SizeOf(h Handle, name string) (int, bool) {
	fn, ok := Symbol(h, name+"_size")
	if !ok {
		return 0, false
	}
	return int(C.atca_call_size(unsafe.Pointer(fn))), true
}

// Version calls atcab_version and returns the version string the library
// writes along with the raw status byte of the call.
func Version(h Handle) (string, uint8, error) {
	fn, ok := Symbol(h, "atcab_version")
	if !ok {
		return "", 0, fmt.Errorf("%w: atcab_version", ErrSymbol)
	}

	buf := (*C.char)(C.calloc(versionBufLen, 1))
	defer C.free(unsafe.Pointer(buf))

	status := C.atca_call_version(unsafe.Pointer(fn), buf)
	return C.GoString(buf), uint8(status), nil
}

// atcab_version writes a short dotted version string; the native prototype
// gives no length, so the buffer is sized well past anything it emits.
const versionBufLen = 64

func sharedObjectNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libcryptoauth.dylib"}
	}
	return []string{"libcryptoauth.so"}
}

func loaderPathEnv() string {
	if runtime.GOOS == "darwin" {
		return "DYLD_LIBRARY_PATH"
	}
	return "LD_LIBRARY_PATH"
}

func candidateDirs(extra []string) []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return append(dirs, extra...)
}

// prependLoaderPath pushes the candidate directories onto the dynamic loader
// search path environment variable. Some loaders only read the variable at
// process start, which is why Open also probes each directory explicitly.
func prependLoaderPath(dirs []string) {
	if len(dirs) == 0 {
		return
	}
	key := loaderPathEnv()
	parts := append([]string{}, dirs...)
	if prev := os.Getenv(key); prev != "" {
		parts = append(parts, prev)
	}
	os.Setenv(key, strings.Join(parts, string(os.PathListSeparator)))
}

func dlopen(name string) (Handle, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	h := C.dlopen(cname, C.RTLD_NOW|C.RTLD_GLOBAL)
	if h == nil {
		return 0, fmt.Errorf("dlopen %s: %s", name, dlerror())
	}
	return Handle(uintptr(h)), nil
}

func dlerror() string {
	if msg := C.dlerror(); msg != nil {
		return C.GoString(msg)
	}
	return "unknown error"
}
