package oath

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
)

// MaxDigits is the largest digit count the device will compute
// (practically 6 or 8, but the wire format allows up to 8).
const MaxDigits = 8

// digitsDivisor maps a digit count to 10^digits, precomputed instead of
// a loop per call.
var digitsDivisor = [MaxDigits + 1]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
}

// HOTP computes the RFC 4226 HMAC-SHA1 one-time password for secret key
// at counter value seq, truncated to digits decimal digits.
//
//  1. C := seq as 8 big-endian bytes.
//  2. HS := HMAC-SHA1(key, C).
//  3. offset := HS[19] & 0x0f.
//  4. P := big-endian uint32 at HS[offset:offset+4].
//  5. return (P & 0x7fffffff) mod 10^digits.
func HOTP(key []byte, seq uint64, digits int) (uint32, error) {
	if len(key) == 0 {
		return 0, ErrEmptyKey
	}
	if digits < 1 || digits > MaxDigits {
		return 0, ErrDigitsOutOfRange
	}

	var counter [8]byte
	binary.BigEndian.PutUint64(counter[:], seq)

	mac := hmac.New(sha1.New, key)
	mac.Write(counter[:])
	hs := mac.Sum(nil)

	offset := hs[len(hs)-1] & 0x0f
	p := binary.BigEndian.Uint32(hs[offset : offset+4])
	sbits := p & 0x7fffffff

	return sbits % digitsDivisor[digits], nil
}
