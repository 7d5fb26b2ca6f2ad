package record

// PutRecord is the packed oath_record_put (143 B): the client-to-device
// write form, a plaintext Record plus the display name the host wants
// attached to it in the Table of Contents. The device encrypts Record
// in place and strips Name before staging a SecureRecord reply — both
// types are views over the same buffer size (max(SizePutRecord,
// SizeSecureRecord) == SizePutRecord), mirroring the original firmware's
// buffer reuse without relying on struct aliasing.
type PutRecord struct {
	Record  Record
	NameLen uint8
	Name    [NameMaxLen]byte
}

// MarshalBinary encodes the put record into its fixed 143-byte layout.
func (pr *PutRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SizePutRecord)
	pr.MarshalTo(buf)
	return buf, nil
}

// MarshalTo writes the put record into buf, which must be at least
// SizePutRecord bytes long.
func (pr *PutRecord) MarshalTo(buf []byte) {
	pr.Record.MarshalTo(buf[0:SizeRecord])
	buf[SizeRecord] = pr.NameLen
	copy(buf[SizeRecord+1:SizePutRecord], pr.Name[:])
}

// UnmarshalBinary decodes a PutRecord from its fixed 143-byte layout.
func (pr *PutRecord) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizePutRecord {
		return ErrBufferTooShort
	}
	if err := pr.Record.UnmarshalBinary(buf[0:SizeRecord]); err != nil {
		return err
	}
	pr.NameLen = buf[SizeRecord]
	copy(pr.Name[:], buf[SizeRecord+1:SizePutRecord])
	return nil
}

// Validate checks the 0 < name_len <= NameMaxLen invariant.
func (pr *PutRecord) Validate() error {
	if pr.NameLen == 0 || pr.NameLen > NameMaxLen {
		return ErrNameLenOverflow
	}
	return nil
}

// RawName returns the first name_len bytes of Name.
func (pr *PutRecord) RawName() []byte {
	return pr.Name[:pr.NameLen]
}
