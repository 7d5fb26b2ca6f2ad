package record

import (
	"bytes"
	"testing"
)

func TestSecret_RoundTrip(t *testing.T) {
	var s Secret
	s.KeyLen = 20
	copy(s.Key[:], []byte("12345678901234567890"))

	buf, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: unexpected error: %v", err)
	}
	if len(buf) != SizeSecret {
		t.Fatalf("MarshalBinary: len = %d, want %d", len(buf), SizeSecret)
	}

	var got Secret
	if err := got.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary: unexpected error: %v", err)
	}
	if got.KeyLen != s.KeyLen || !bytes.Equal(got.Key[:], s.Key[:]) {
		t.Errorf("UnmarshalBinary round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestSecret_UnmarshalTooShort(t *testing.T) {
	var s Secret
	if err := s.UnmarshalBinary(make([]byte, SizeSecret-1)); err != ErrBufferTooShort {
		t.Errorf("UnmarshalBinary(short buf) error = %v, want ErrBufferTooShort", err)
	}
}

func TestSecret_Validate(t *testing.T) {
	tests := []struct {
		name    string
		keyLen  uint8
		wantErr error
	}{
		{"zero", 0, ErrKeyLenOverflow},
		{"max", KeyMaxLen, nil},
		{"over max", KeyMaxLen + 1, ErrKeyLenOverflow},
		{"typical", 20, nil},
	}
	for _, tt := range tests {
		s := Secret{KeyLen: tt.keyLen}
		if err := s.Validate(); err != tt.wantErr {
			t.Errorf("%s: Validate() = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestSecret_RawKey(t *testing.T) {
	s := newTestSecret([]byte("12345678901234567890"))
	if !bytes.Equal(s.RawKey(), []byte("12345678901234567890")) {
		t.Errorf("RawKey() = %q, want %q", s.RawKey(), "12345678901234567890")
	}
}

func newTestSecret(key []byte) Secret {
	var s Secret
	s.KeyLen = uint8(len(key))
	copy(s.Key[:], key)
	return s
}
