package atca

import "cryptoauth-go/pkg/atca/record"

// IfaceType enumerates the host interfaces the native HAL can drive,
// matching the ATCAIfaceType enumerator values.
type IfaceType uint32

const (
	IfaceI2C IfaceType = iota
	IfaceSWI
	IfaceUART
	IfaceSPI
	IfaceHID
	IfaceKit
)

func (i IfaceType) String() string {
	switch i {
	case IfaceI2C:
		return "i2c"
	case IfaceSWI:
		return "swi"
	case IfaceUART:
		return "uart"
	case IfaceSPI:
		return "spi"
	case IfaceHID:
		return "hid"
	case IfaceKit:
		return "kit"
	default:
		return UnknownDevice
	}
}

// IfaceCfgType describes ATCAIfaceCfg, the interface configuration record
// handed to the native init call. The per-interface settings live in an
// anonymous union in C; here the union member is named "cfg" and its arms
// keep their C names, so a whole configuration marshals from one nested
// literal:
//
//	v, err := atca.NewIfaceCfg(record.Fields{
//	    "iface_type": record.Enum(atca.IfaceI2C),
//	    "devtype":    record.Enum(atca.DeviceATECC608),
//	    "cfg": record.Fields{
//	        "atcai2c": record.Fields{
//	            "address": record.Integer(0xC0),
//	            "bus":     record.Integer(1),
//	            "baud":    record.Integer(400000),
//	        },
//	    },
//	    "wake_delay": record.Integer(1500),
//	})
var IfaceCfgType = mustIfaceCfgType()

func mustIfaceCfgType() *record.Type {
	build := func(t *record.Type, err error) *record.Type {
		if err != nil {
			panic(err)
		}
		return t
	}

	i2c := build(record.NewStruct("atcai2c",
		record.Field{Name: "address", Type: record.Uint8},
		record.Field{Name: "bus", Type: record.Uint8},
		record.Field{Name: "baud", Type: record.Uint32},
	))
	swi := build(record.NewStruct("atcaswi",
		record.Field{Name: "address", Type: record.Uint8},
		record.Field{Name: "bus", Type: record.Uint8},
	))
	uart := build(record.NewStruct("atcauart",
		record.Field{Name: "port", Type: record.Uint32},
		record.Field{Name: "baud", Type: record.Uint32},
		record.Field{Name: "wordsize", Type: record.Uint8},
		record.Field{Name: "parity", Type: record.Uint8},
		record.Field{Name: "stopbits", Type: record.Uint8},
	))
	spi := build(record.NewStruct("atcaspi",
		record.Field{Name: "bus", Type: record.Uint8},
		record.Field{Name: "select_pin", Type: record.Uint8},
		record.Field{Name: "baud", Type: record.Uint32},
	))
	hid := build(record.NewStruct("atcahid",
		record.Field{Name: "idx", Type: record.Uint32},
		record.Field{Name: "vid", Type: record.Uint32},
		record.Field{Name: "pid", Type: record.Uint32},
		record.Field{Name: "packetsize", Type: record.Uint32},
	))

	cfg := build(record.NewUnion("cfg",
		record.Field{Name: "atcai2c", Type: i2c},
		record.Field{Name: "atcaswi", Type: swi},
		record.Field{Name: "atcauart", Type: uart},
		record.Field{Name: "atcaspi", Type: spi},
		record.Field{Name: "atcahid", Type: hid},
	))

	return build(record.NewStruct("ATCAIfaceCfg",
		record.Field{Name: "iface_type", Type: record.Uint32},
		record.Field{Name: "devtype", Type: record.Uint32},
		record.Field{Name: "cfg", Type: cfg},
		record.Field{Name: "wake_delay", Type: record.Uint16},
		record.Field{Name: "rx_retries", Type: record.Uint32},
	))
}

// NewIfaceCfg marshals a nested literal into an ATCAIfaceCfg record.
func NewIfaceCfg(fields record.Fields) (*record.Value, error) {
	return record.Marshal(IfaceCfgType, fields)
}
