package atca

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents
// compiler dead store elimination using runtime.KeepAlive.
//
// Key material read back from the device transits plain byte buffers and
// marshalled records; callers should wipe those once the value has been
// consumed. This follows the pattern discussed in golang/go#33325. It
// cannot guarantee complete sanitization under Go's garbage collector, but
// the native library separately cleanses its own internal buffers.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
