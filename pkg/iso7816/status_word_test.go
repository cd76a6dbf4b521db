package iso7816

import (
	"strings"
	"testing"
)

func TestStatusWord_Bytes(t *testing.T) {
	sw := NewStatusWord(0x6A, 0x84)
	if sw != SW_ERR_NOT_ENOUGH_MEMORY {
		t.Errorf("NewStatusWord(6A, 84) = %04X", uint16(sw))
	}
	if sw.SW1() != 0x6A || sw.SW2() != 0x84 {
		t.Errorf("SW1/SW2 = %02X/%02X", sw.SW1(), sw.SW2())
	}
}

func TestStatusWord_Classification(t *testing.T) {
	tests := []struct {
		sw          StatusWord
		isSuccess   bool
		hasMoreData bool
		isWarning   bool
		isError     bool
	}{
		{SW_NO_ERROR, true, false, false, false},
		{NewStatusWord(0x61, 0x10), false, true, false, false},
		{NewStatusWord(0x61, 0x00), false, true, false, false},
		{NewStatusWord(0x63, 0xC2), false, false, true, false},
		{SW_ERR_WRONG_LENGTH, false, false, false, true},
		{SW_ERR_NOT_ENOUGH_MEMORY, false, false, false, true},
	}

	for _, tt := range tests {
		if got := tt.sw.IsSuccess(); got != tt.isSuccess {
			t.Errorf("SW %X IsSuccess = %v, want %v", uint16(tt.sw), got, tt.isSuccess)
		}
		if got := tt.sw.HasMoreData(); got != tt.hasMoreData {
			t.Errorf("SW %X HasMoreData = %v, want %v", uint16(tt.sw), got, tt.hasMoreData)
		}
		if got := tt.sw.IsWarning(); got != tt.isWarning {
			t.Errorf("SW %X IsWarning = %v, want %v", uint16(tt.sw), got, tt.isWarning)
		}
		if got := tt.sw.IsError(); got != tt.isError {
			t.Errorf("SW %X IsError = %v, want %v", uint16(tt.sw), got, tt.isError)
		}
	}
}

func TestStatusWord_Verbose(t *testing.T) {
	tests := []struct {
		sw       StatusWord
		contains string
	}{
		{NewStatusWord(0x61, 0x20), "32 bytes available"},
		{NewStatusWord(0x6C, 0x05), "correct Le is 5"},
		{SW_ERR_SECURITY_STATUS_NOT_SAT, "SW_ERR_SECURITY_STATUS_NOT_SAT"},
		{NewStatusWord(0x69, 0x99), "Command not allowed"},
		{NewStatusWord(0x12, 0x34), "[1234] Unknown Status"},
	}

	for _, tt := range tests {
		got := tt.sw.Verbose()
		if !strings.Contains(got, tt.contains) {
			t.Errorf("Verbose(%X) = %q; want containing %q", uint16(tt.sw), got, tt.contains)
		}
	}
}

func TestStatusWord_String(t *testing.T) {
	if got := SW_NO_ERROR.String(); got != "SW_NO_ERROR" {
		t.Errorf("String() = %q", got)
	}
	if got := StatusWord(0x6A99).String(); got != "StatusWord(0x6A99)" {
		t.Errorf("String() = %q", got)
	}
}
