package atca

import (
	"errors"
	"testing"
)

func TestStatusErr(t *testing.T) {
	if err := StatusSuccess.Err(); err != nil {
		t.Errorf("success: %v", err)
	}
	if err := StatusWakeSuccess.Err(); err != nil {
		t.Errorf("wake success: %v", err)
	}

	err := StatusRxNoResponse.Err()
	if err == nil {
		t.Fatal("no response must be an error")
	}
	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("err %T is not a *StatusError", err)
	}
	if serr.Status != StatusRxNoResponse {
		t.Errorf("status = %v, want %v", serr.Status, StatusRxNoResponse)
	}
}

func TestStatusString(t *testing.T) {
	if got := StatusBadParam.String(); got != "bad argument" {
		t.Errorf("StatusBadParam = %q", got)
	}
	if got := Status(0x42).String(); got != "status 0x42" {
		t.Errorf("unknown status = %q", got)
	}
}
