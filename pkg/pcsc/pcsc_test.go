package pcsc

import (
	"testing"
)

func TestMatchReader(t *testing.T) {
	readers := []string{
		"Alcor Micro AU9540 00 00",
		"Yubico YubiKey OTP+FIDO+CCID 01 00",
		"Yubico YubiKey CCID 02 00",
	}

	tests := []struct {
		name    string
		readers []string
		want    string
		match   string
		ok      bool
	}{
		{"Default picks first YubiKey", readers, DefaultReader, "Yubico YubiKey OTP+FIDO+CCID 01 00", true},
		{"Case insensitive", readers, "YUBICO YUBIKEY CCID", "Yubico YubiKey CCID 02 00", true},
		{"Explicit reader", readers, "alcor", "Alcor Micro AU9540 00 00", true},
		{"No match", readers, "gemalto", "", false},
		{"No readers", nil, DefaultReader, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchReader(tt.readers, tt.want)
			if ok != tt.ok {
				t.Fatalf("matchReader() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.match {
				t.Errorf("matchReader() = %q, want %q", got, tt.match)
			}
		})
	}
}

func TestMaxFrameSize(t *testing.T) {
	if got := (&Card{}).MaxFrameSize(); got != 264 {
		t.Errorf("MaxFrameSize() = %d, want 264", got)
	}
}
