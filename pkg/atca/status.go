package atca

import "fmt"

// Status is the ATCA_STATUS byte returned by every native API call.
type Status uint8

const (
	StatusSuccess            Status = 0x00
	StatusConfigZoneLocked   Status = 0x01
	StatusDataZoneLocked     Status = 0x02
	StatusWakeFailed         Status = 0xD0
	StatusCheckMacFailed     Status = 0xD1
	StatusParseError         Status = 0xD2
	StatusCRCError           Status = 0xD4
	StatusUnknownError       Status = 0xD5
	StatusECCFault           Status = 0xD6
	StatusSelfTestError      Status = 0xD7
	StatusHealthTestError    Status = 0xD8
	StatusFuncFail           Status = 0xE0
	StatusGenFail            Status = 0xE1
	StatusBadParam           Status = 0xE2
	StatusInvalidID          Status = 0xE3
	StatusInvalidSize        Status = 0xE4
	StatusRxCRCError         Status = 0xE5
	StatusRxFail             Status = 0xE6
	StatusRxNoResponse       Status = 0xE7
	StatusResyncWithWakeup   Status = 0xE8
	StatusParityError        Status = 0xE9
	StatusTxTimeout          Status = 0xEA
	StatusRxTimeout          Status = 0xEB
	StatusTooManyCommRetries Status = 0xEC
	StatusSmallBuffer        Status = 0xED
	StatusCommFail           Status = 0xF0
	StatusTimeout            Status = 0xF1
	StatusBadOpcode          Status = 0xF2
	StatusWakeSuccess        Status = 0xF3
	StatusExecutionError     Status = 0xF4
	StatusUnimplemented      Status = 0xF5
	StatusAssertFailure      Status = 0xF6
	StatusTxFail             Status = 0xF7
	StatusNotLocked          Status = 0xF8
	StatusNoDevices          Status = 0xF9
)

var statusNames = map[Status]string{
	StatusSuccess:            "success",
	StatusConfigZoneLocked:   "config zone locked",
	StatusDataZoneLocked:     "data zone locked",
	StatusWakeFailed:         "wake failed",
	StatusCheckMacFailed:     "checkmac or verify miscompare",
	StatusParseError:         "response parse error",
	StatusCRCError:           "device status CRC error",
	StatusUnknownError:       "device unknown error",
	StatusECCFault:           "device ECC fault",
	StatusSelfTestError:      "device self test error",
	StatusHealthTestError:    "device health test error",
	StatusFuncFail:           "function call failed",
	StatusGenFail:            "unspecified failure",
	StatusBadParam:           "bad argument",
	StatusInvalidID:          "invalid device id",
	StatusInvalidSize:        "out of range size",
	StatusRxCRCError:         "receive CRC error",
	StatusRxFail:             "receive failed",
	StatusRxNoResponse:       "no response",
	StatusResyncWithWakeup:   "re-sync with wake",
	StatusParityError:        "parity error",
	StatusTxTimeout:          "transmit timeout",
	StatusRxTimeout:          "receive timeout",
	StatusTooManyCommRetries: "too many comm retries",
	StatusSmallBuffer:        "supplied buffer too small",
	StatusCommFail:           "communication failed",
	StatusTimeout:            "command timed out",
	StatusBadOpcode:          "bad opcode",
	StatusWakeSuccess:        "wake succeeded",
	StatusExecutionError:     "command execution error",
	StatusUnimplemented:      "unimplemented",
	StatusAssertFailure:      "assertion failure",
	StatusTxFail:             "transmit failed",
	StatusNotLocked:          "zone not locked",
	StatusNoDevices:          "no devices found",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status 0x%02X", uint8(s))
}

// Err converts the status to an error. Success and WakeSuccess map to nil;
// everything else yields a *StatusError carrying the original byte.
func (s Status) Err() error {
	if s == StatusSuccess || s == StatusWakeSuccess {
		return nil
	}
	return &StatusError{Status: s}
}

// StatusError wraps a non-success Status as an error.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cryptoauth: %s (0x%02X)", e.Status, uint8(e.Status))
}
