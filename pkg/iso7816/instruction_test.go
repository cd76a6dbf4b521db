package iso7816

import (
	"strings"
	"testing"
)

func TestInsCode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ins     InsCode
		wantErr bool
	}{
		{name: "Standard SELECT (A4)", ins: INS_SELECT},
		{name: "Proprietary CALCULATE (A2)", ins: 0xA2},
		{name: "Proprietary SEND REMAINING (A5)", ins: 0xA5},
		{name: "Invalid INS 6X", ins: 0x6A, wantErr: true},
		{name: "Invalid INS 9X", ins: 0x90, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ins.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(0x%02X) error = %v, wantErr %v", byte(tt.ins), err, tt.wantErr)
			}
		})
	}
}

func TestInsCode_Verbose(t *testing.T) {
	tests := []struct {
		ins      InsCode
		contains []string
	}{
		{INS_SELECT, []string{"INS: 0xA4", "Command: INS_SELECT"}},
		{0xA2, []string{"INS: 0xA2", "Command: InsCode(0xA2)"}},
	}

	for _, tt := range tests {
		desc := tt.ins.Verbose()
		for _, part := range tt.contains {
			if !strings.Contains(desc, part) {
				t.Errorf("Verbose() = %q; want containing %q", desc, part)
			}
		}
	}
}
