package ykoath

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gregLibert/ykoath/pkg/tlv"
)

var testChallenge = tlv.Hex("00 00 00 00 03 5A 4E 8F")

func TestCalculate_Command(t *testing.T) {
	tests := []struct {
		name     string
		truncate bool
		reply    []byte
		want     []byte
	}{
		{
			name:     "Truncated",
			truncate: true,
			reply:    tlv.Hex("76 05 06 000004D2", "90 00"),
			want: tlv.Hex(
				"00 A2 00 01", // P2=01 truncate
				"0F",
				"71 03 666F6F",
				"74 08 00000000035A4E8F",
			),
		},
		{
			name:     "Full",
			truncate: false,
			reply:    tlv.Hex("75 15 06", strings.Repeat("11", 20), "90 00"),
			want: tlv.Hex(
				"00 A2 00 00",
				"0F",
				"71 03 666F6F",
				"74 08 00000000035A4E8F",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := newFakeCard(tt.reply)
			if _, err := NewClient(card).Calculate("foo", testChallenge, tt.truncate); err != nil {
				t.Fatalf("Calculate failed: %v", err)
			}
			if diff := cmp.Diff([][]byte{tt.want}, card.sent); diff != "" {
				t.Errorf("command mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_Response(t *testing.T) {
	tests := []struct {
		name     string
		truncate bool
		reply    []byte
		want     Response
		wantCode string
	}{
		{
			name:     "Truncated six digits",
			truncate: true,
			reply:    tlv.Hex("76 05 06 000004D2", "90 00"),
			want:     Response{Digits: 6, Value: 1234},
			wantCode: "001234",
		},
		{
			name:     "Truncated eight digits",
			truncate: true,
			reply:    tlv.Hex("76 05 08 075BCD15", "90 00"),
			want:     Response{Digits: 8, Value: 123456789},
			wantCode: "23456789",
		},
		{
			name:     "Full response keeps first four bytes",
			truncate: false,
			reply:    tlv.Hex("75 09 06 000004D2 AABBCCDD", "90 00"),
			want:     Response{Digits: 6, Value: 1234},
			wantCode: "001234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewClient(newFakeCard(tt.reply)).Calculate("foo", testChallenge, tt.truncate)
			if err != nil {
				t.Fatalf("Calculate failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
			if code := got.Code(); code != tt.wantCode {
				t.Errorf("Code() = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		truncate bool
		reply    []byte
		wantErr  error
		wantTag  int
	}{
		{
			name:     "Full tag when truncated requested",
			truncate: true,
			reply:    tlv.Hex("75 05 06 000004D2", "90 00"),
			wantTag:  0x75,
		},
		{
			name:     "Value too short",
			truncate: true,
			reply:    tlv.Hex("76 03 06 0000", "90 00"),
			wantErr:  ErrInsufficientData,
		},
		{
			name:     "Digits only",
			truncate: true,
			reply:    tlv.Hex("76 01 06", "90 00"),
			wantErr:  ErrInsufficientData,
		},
		{
			name:     "Empty payload",
			truncate: true,
			reply:    tlv.Hex("90 00"),
			wantErr:  ErrInsufficientData,
		},
		{
			name:     "No such account",
			truncate: true,
			reply:    tlv.Hex("69 84"),
			wantErr:  ErrNoSuchObject,
		},
		{
			name:     "Locked",
			truncate: true,
			reply:    tlv.Hex("69 82"),
			wantErr:  ErrAuthRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(newFakeCard(tt.reply)).Calculate("foo", testChallenge, tt.truncate)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantTag != 0 {
				var unexpected *UnexpectedValueError
				if !errors.As(err, &unexpected) || int(unexpected.Value) != tt.wantTag {
					t.Errorf("error = %v, want unexpected value %02X", err, tt.wantTag)
				}
			}
		})
	}
}

func TestCalculate_NameTooLong(t *testing.T) {
	card := newFakeCard()

	_, err := NewClient(card).Calculate(strings.Repeat("a", 256), testChallenge, true)
	if !errors.Is(err, tlv.ErrValueTooLong) {
		t.Errorf("error = %v, want ErrValueTooLong", err)
	}
	if len(card.sent) != 0 {
		t.Errorf("nothing should be transmitted, sent %d frames", len(card.sent))
	}
}

func TestResponse_Code(t *testing.T) {
	tests := []struct {
		resp Response
		want string
	}{
		{Response{Digits: 6, Value: 1234}, "001234"},
		{Response{Digits: 6, Value: 123456789}, "456789"},
		{Response{Digits: 8, Value: 0}, "00000000"},
		{Response{Digits: 7, Value: 4294967295}, "4967295"},
		{Response{Digits: 10, Value: 4294967295}, "4294967295"},
		{Response{Digits: 12, Value: 42}, "000000000042"},
		{Response{Digits: 255, Value: 7}, strings.Repeat("0", 254) + "7"},
		{Response{Digits: 0, Value: 99}, "0"},
	}

	for _, tt := range tests {
		if got := tt.resp.Code(); got != tt.want {
			t.Errorf("Code(%+v) = %q, want %q", tt.resp, got, tt.want)
		}
		if got := tt.resp.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.resp, got, tt.want)
		}
	}
}
