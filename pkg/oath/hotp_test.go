package oath

import "testing"

// Test vectors from RFC 4226 Appendix D, secret "12345678901234567890",
// 6-digit truncation.
func TestHOTP_RFC4226Vectors(t *testing.T) {
	key := []byte("12345678901234567890")
	want := []uint32{755224, 287082, 359152, 969429, 338314, 254676, 287922, 162583, 399871, 520489}

	for seq, w := range want {
		got, err := HOTP(key, uint64(seq), 6)
		if err != nil {
			t.Fatalf("HOTP(seq=%d): unexpected error: %v", seq, err)
		}
		if got != w {
			t.Errorf("HOTP(seq=%d) = %d, want %d", seq, got, w)
		}
	}
}

func TestHOTP_EmptyKey(t *testing.T) {
	if _, err := HOTP(nil, 0, 6); err != ErrEmptyKey {
		t.Errorf("HOTP(nil key) error = %v, want ErrEmptyKey", err)
	}
}

func TestHOTP_DigitsOutOfRange(t *testing.T) {
	key := []byte("12345678901234567890")
	tests := []int{0, -1, 9, 100}
	for _, d := range tests {
		if _, err := HOTP(key, 0, d); err != ErrDigitsOutOfRange {
			t.Errorf("HOTP(digits=%d) error = %v, want ErrDigitsOutOfRange", d, err)
		}
	}
}

func TestHOTP_DigitsBoundary(t *testing.T) {
	key := []byte("12345678901234567890")
	for _, d := range []int{1, 8} {
		if _, err := HOTP(key, 0, d); err != nil {
			t.Errorf("HOTP(digits=%d) unexpected error: %v", d, err)
		}
	}
}

func TestHOTP_ValueFitsDigits(t *testing.T) {
	key := []byte("12345678901234567890")
	for seq := uint64(0); seq < 50; seq++ {
		got, err := HOTP(key, seq, 6)
		if err != nil {
			t.Fatalf("HOTP: unexpected error: %v", err)
		}
		if got >= 1000000 {
			t.Errorf("HOTP(seq=%d) = %d, has more than 6 digits", seq, got)
		}
	}
}
