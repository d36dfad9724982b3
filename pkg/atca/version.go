package atca

// Version is the wrapper version, populated at build time via ldflags. In
// development builds it reports the fallback below.
var Version = fallbackVersion

const fallbackVersion = "v0.0.0-dev"

// WrapperVersion returns the semantic version of this Go binding, as
// opposed to the native library version reported by Library.NativeVersion.
func WrapperVersion() string {
	return Version
}
