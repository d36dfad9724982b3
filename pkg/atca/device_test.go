package atca

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeviceNameKnownRevisions(t *testing.T) {
	cases := []struct {
		revision []byte
		want     string
	}{
		{[]byte{0x00, 0x00, 0x10, 0x05}, "ATECC108A"},
		{[]byte{0x00, 0x00, 0x50, 0x00}, "ATECC508A"},
		{[]byte{0x00, 0x00, 0x60, 0x02}, "ATECC608"},
		{[]byte{0x00, 0x00, 0x20, 0x00}, "ECC204"},
		{[]byte{0x00, 0x00, 0x00, 0x04}, "ATSHA204A"},
		{[]byte{0x00, 0x00, 0x02, 0x00}, "ATSHA204A"},
		{[]byte{0x00, 0x00, 0x40, 0x00}, "ATSHA206A"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, DeviceName(c.revision), "revision %x", c.revision)
	}
}

func TestDeviceNameUnknownRevisions(t *testing.T) {
	for code := 0; code <= 0xFF; code++ {
		if _, known := revisionDevices[byte(code)]; known {
			continue
		}
		rev := []byte{0x00, 0x00, byte(code), 0x00}
		require.Equal(t, UnknownDevice, DeviceName(rev), "revision code %#02x", code)
	}
}

func TestDeviceNameShortInput(t *testing.T) {
	require.Equal(t, UnknownDevice, DeviceName(nil))
	require.Equal(t, UnknownDevice, DeviceName([]byte{0x00, 0x00}))
}

func TestDeviceTypeIDCaseInsensitive(t *testing.T) {
	require.Equal(t, DeviceECC204, DeviceTypeID("ecc204"))
	require.Equal(t, DeviceECC204, DeviceTypeID("ECC204"))
	require.Equal(t, DeviceATECC608, DeviceTypeID("atecc608a"))
}

func TestDeviceTypeIDSentinel(t *testing.T) {
	require.Equal(t, DeviceUnknown, DeviceTypeID("UNKNOWN"))
	require.Equal(t, DeviceUnknown, DeviceTypeID("NOT_A_DEVICE"))
	require.EqualValues(t, 0x20, DeviceUnknown)
}

func TestDeviceTypeIDAliases(t *testing.T) {
	for _, name := range []string{"ATECC608", "ATECC608A", "ATECC608B"} {
		require.Equal(t, DeviceATECC608, DeviceTypeID(name), name)
	}
	for _, name := range []string{"ATSHA206A", "ATSAH206A"} {
		require.Equal(t, DeviceATSHA206A, DeviceTypeID(name), name)
	}
}

// Every name the revision table can produce must resolve to a type id, so
// that DeviceTypeID(DeviceName(rev)) never falls through to the sentinel
// for known silicon.
func TestRevisionNamesResolve(t *testing.T) {
	for code, name := range revisionDevices {
		require.NotEqual(t, DeviceUnknown, DeviceTypeID(name),
			"revision %#02x maps to %q which has no type id", code, name)
	}
}

func TestInterfaceNames(t *testing.T) {
	require.Equal(t, "kithid", InterfaceNames["hid"])
	require.Equal(t, "eccx08", InterfaceNames["ecc"])
	require.Equal(t, "sha204", InterfaceNames["sha"])
	require.Equal(t, "i2c", InterfaceNames["i2c"])
}
