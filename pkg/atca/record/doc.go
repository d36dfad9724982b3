// Package record describes and instantiates fixed-layout native records.
//
// The cryptoauth library communicates through C structures, unions and
// arrays whose memory layout is fixed by the C ABI. This package is the Go
// side of that contract: a Type describes a layout (scalar, struct, union or
// array), and a Value is an instance of a Type backed by a little-endian
// byte buffer of exactly the declared size. Values can be hydrated from raw
// bytes received across the boundary and serialized back without loss.
//
// Construction from plain Go literals goes through the Input variants:
//
//	cfg, err := record.Marshal(cfgType, record.Fields{
//	    "iface_type": record.Enum(0),
//	    "atcai2c": record.Fields{
//	        "address": record.Integer(0xC0),
//	        "bus":     record.Integer(1),
//	        "baud":    record.Integer(400000),
//	    },
//	})
//
// Nested structs, unions and arrays are marshalled recursively, so a whole
// native record can be built from one nested literal.
//
// The byte size declared by a Type is authoritative: no conversion ever
// writes past it, and hydrating from a shorter buffer is an error.
package record
