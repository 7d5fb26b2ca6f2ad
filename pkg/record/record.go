package record

// Record is the packed oath_record (78 B): a 68-byte ciphertext blob
// (the AEAD-sealed Secret) immediately followed by its own associated
// data, the plaintext Protected block. Protected is authenticated but
// never encrypted — see pkg/crypto for the AEAD operations that bind
// the two together.
type Record struct {
	// EncryptedBlob holds ciphertext of a Secret while sealed, or
	// plaintext Secret bytes once Unlock has been called in place.
	EncryptedBlob [SizeSecret]byte
	Protected     Protected
}

// MarshalBinary encodes the record into its fixed 78-byte layout.
func (r *Record) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SizeRecord)
	r.MarshalTo(buf)
	return buf, nil
}

// MarshalTo writes the record into buf, which must be at least
// SizeRecord bytes long.
func (r *Record) MarshalTo(buf []byte) {
	copy(buf[0:SizeSecret], r.EncryptedBlob[:])
	r.Protected.MarshalTo(buf[SizeSecret:SizeRecord])
}

// UnmarshalBinary decodes a Record from its fixed 78-byte layout.
func (r *Record) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeRecord {
		return ErrBufferTooShort
	}
	copy(r.EncryptedBlob[:], buf[0:SizeSecret])
	return r.Protected.UnmarshalBinary(buf[SizeSecret:SizeRecord])
}
