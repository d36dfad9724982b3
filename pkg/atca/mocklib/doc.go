// Package mocklib provides an in-memory stand-in for the native library's
// symbol surface, for testing and examples.
//
// The native cryptoauth library exports <name>_size introspection functions
// that the binding resolves through the dynamic loader. Table implements
// the atca.SizeResolver interface over a plain map, so size registry and
// marshalling logic can be tested without a shared library on the machine.
//
//	tbl := mocklib.New()
//	tbl.SetSize("atca_aes_cbc_ctx", 2)
//	sizes := atca.NewSizes(tbl, "atca_aes_cbc_ctx")
//
// Table tracks which names were asked for, so tests can also assert
// resolution behavior (eager vs. on-demand, fallback on miss).
//
// Mocklib is designed for testing only; it performs no hardware access.
package mocklib
