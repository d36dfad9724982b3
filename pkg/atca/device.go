package atca

import "strings"

// UnknownDevice is the sentinel name returned for revisions and lookups
// that match no known device. It is deliberately not an error; the native
// library uses the same soft-failure convention.
const UnknownDevice = "UNKNOWN"

// DeviceType identifies a CryptoAuthentication device family member using
// the ATCADeviceType enumerator values from the native library.
type DeviceType uint8

const (
	DeviceATSHA204A DeviceType = 0
	DeviceATECC108A DeviceType = 1
	DeviceATECC508A DeviceType = 2
	DeviceATECC608  DeviceType = 3
	DeviceATSHA206A DeviceType = 4
	DeviceECC204    DeviceType = 5
	DeviceUnknown   DeviceType = 0x20
)

func (d DeviceType) String() string {
	switch d {
	case DeviceATSHA204A:
		return "ATSHA204A"
	case DeviceATECC108A:
		return "ATECC108A"
	case DeviceATECC508A:
		return "ATECC508A"
	case DeviceATECC608:
		return "ATECC608"
	case DeviceATSHA206A:
		return "ATSHA206A"
	case DeviceECC204:
		return "ECC204"
	default:
		return UnknownDevice
	}
}

// InterfaceNames maps the common interface names used in configuration to
// the specific HAL names the native library uses internally.
var InterfaceNames = map[string]string{
	"i2c": "i2c",
	"hid": "kithid",
	"sha": "sha204",
	"ecc": "eccx08",
}

// Silicon revision byte (third byte of the info block) to device name.
var revisionDevices = map[byte]string{
	0x10: "ATECC108A",
	0x50: "ATECC508A",
	0x60: "ATECC608",
	0x20: "ECC204",
	0x00: "ATSHA204A",
	0x02: "ATSHA204A",
	0x40: "ATSHA206A",
}

var deviceTypeIDs = map[string]DeviceType{
	"ATSHA204A": DeviceATSHA204A,
	"ATECC108A": DeviceATECC108A,
	"ATECC508A": DeviceATECC508A,
	"ATECC608A": DeviceATECC608,
	"ATECC608B": DeviceATECC608,
	"ATECC608":  DeviceATECC608,
	"ATSHA206A": DeviceATSHA206A,
	"ATSAH206A": DeviceATSHA206A, // misspelled alias carried from the C table
	"ECC204":    DeviceECC204,
	"UNKNOWN":   DeviceUnknown,
}

// DeviceName returns the device name for the 4-byte revision block returned
// by the info command. The third byte carries the silicon revision code;
// unknown codes (and short input) resolve to UnknownDevice.
func DeviceName(revision []byte) string {
	if len(revision) < 3 {
		return UnknownDevice
	}
	if name, ok := revisionDevices[revision[2]]; ok {
		return name
	}
	return UnknownDevice
}

// DeviceTypeID returns the ATCADeviceType enumerator for a device name,
// case-insensitively. Unknown names resolve to DeviceUnknown.
func DeviceTypeID(name string) DeviceType {
	if id, ok := deviceTypeIDs[strings.ToUpper(name)]; ok {
		return id
	}
	return DeviceUnknown
}
