package record

import (
	"bytes"
	"testing"
)

func TestPutRecord_RoundTrip(t *testing.T) {
	var pr PutRecord
	pr.Record.Protected = Protected{CounterOrTimestep: 30, Properties: PropAlgSHA1, Digits: 6}
	pr.NameLen = 5
	copy(pr.Name[:], "hello")

	buf, err := pr.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: unexpected error: %v", err)
	}
	if len(buf) != SizePutRecord {
		t.Fatalf("MarshalBinary: len = %d, want %d", len(buf), SizePutRecord)
	}

	var got PutRecord
	if err := got.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary: unexpected error: %v", err)
	}
	if got.NameLen != pr.NameLen || !bytes.Equal(got.Name[:], pr.Name[:]) || got.Record.Protected != pr.Record.Protected {
		t.Errorf("UnmarshalBinary round trip mismatch: got %+v, want %+v", got, pr)
	}
}

func TestPutRecord_UnmarshalTooShort(t *testing.T) {
	var pr PutRecord
	if err := pr.UnmarshalBinary(make([]byte, SizePutRecord-1)); err != ErrBufferTooShort {
		t.Errorf("UnmarshalBinary(short buf) error = %v, want ErrBufferTooShort", err)
	}
}

func TestPutRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		nameLen uint8
		wantErr error
	}{
		{"zero", 0, ErrNameLenOverflow},
		{"min", 1, nil},
		{"max", NameMaxLen, nil},
		{"over max", NameMaxLen + 1, ErrNameLenOverflow},
	}
	for _, tt := range tests {
		pr := PutRecord{NameLen: tt.nameLen}
		if err := pr.Validate(); err != tt.wantErr {
			t.Errorf("%s: Validate() = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestPutRecord_RawName(t *testing.T) {
	var pr PutRecord
	pr.NameLen = 5
	copy(pr.Name[:], "hello-world")
	if got := string(pr.RawName()); got != "hello" {
		t.Errorf("RawName() = %q, want %q", got, "hello")
	}
}
