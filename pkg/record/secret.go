package record

// Secret is the plaintext oath_record_secret (68 B): the data that lives
// inside a record's encrypted_blob once decrypted. Byte 0 of Key encodes
// OATH type and algorithm, byte 1 the digit count; the remaining
// key_len-2 bytes (up to KeyLen) hold the raw OATH secret.
type Secret struct {
	KeyLen uint8
	Key    [KeyBufLen]byte
}

// MarshalBinary encodes the secret into its fixed 68-byte layout.
func (s *Secret) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SizeSecret)
	s.MarshalTo(buf)
	return buf, nil
}

// MarshalTo writes the secret into buf, which must be at least
// SizeSecret bytes long.
func (s *Secret) MarshalTo(buf []byte) {
	buf[0] = s.KeyLen
	copy(buf[1:1+KeyBufLen], s.Key[:])
}

// UnmarshalBinary decodes a Secret from its fixed 68-byte layout.
// It does not enforce the key_len invariant; callers that need the
// invariant enforced should call Validate.
func (s *Secret) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeSecret {
		return ErrBufferTooShort
	}
	s.KeyLen = buf[0]
	copy(s.Key[:], buf[1:1+KeyBufLen])
	return nil
}

// Validate checks the 0 < key_len <= KeyMaxLen invariant from the data
// model.
func (s *Secret) Validate() error {
	if s.KeyLen == 0 || s.KeyLen > KeyMaxLen {
		return ErrKeyLenOverflow
	}
	return nil
}

// RawKey returns the first key_len bytes of Key. This is the exact byte
// string fed to the OATH engine as the HMAC secret (pkg/oath); the
// type/algorithm and digit-count bytes described for Key[0] and Key[1]
// are informational metadata for host tooling and are not stripped
// before use, matching the original firmware's handling.
func (s *Secret) RawKey() []byte {
	return s.Key[:s.KeyLen]
}
