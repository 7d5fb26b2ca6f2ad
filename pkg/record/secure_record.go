package record

// SecureRecord is the packed secure_oath_record (118 B): a Record plus
// the nonce and MAC that authenticate its encrypted_blob. This is the
// form that crosses the wire in PUT_GETRECORD and CALCULATE replies and
// requests.
type SecureRecord struct {
	Record Record
	Nonce  [NonceSize]byte
	MAC    [MACSize]byte
}

// MarshalBinary encodes the secure record into its fixed 118-byte
// layout.
func (sr *SecureRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SizeSecureRecord)
	sr.MarshalTo(buf)
	return buf, nil
}

// MarshalTo writes the secure record into buf, which must be at least
// SizeSecureRecord bytes long.
func (sr *SecureRecord) MarshalTo(buf []byte) {
	sr.Record.MarshalTo(buf[0:SizeRecord])
	copy(buf[SizeRecord:SizeRecord+NonceSize], sr.Nonce[:])
	copy(buf[SizeRecord+NonceSize:SizeSecureRecord], sr.MAC[:])
}

// UnmarshalBinary decodes a SecureRecord from its fixed 118-byte
// layout.
func (sr *SecureRecord) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeSecureRecord {
		return ErrBufferTooShort
	}
	if err := sr.Record.UnmarshalBinary(buf[0:SizeRecord]); err != nil {
		return err
	}
	copy(sr.Nonce[:], buf[SizeRecord:SizeRecord+NonceSize])
	copy(sr.MAC[:], buf[SizeRecord+NonceSize:SizeSecureRecord])
	return nil
}
