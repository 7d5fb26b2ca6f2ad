package record

// Descriptor is a single ToC entry: toc_record_descriptor (65 B), a
// display name only — the secret itself lives separately, encrypted,
// in the host's per-record blob storage.
type Descriptor struct {
	NameLen uint8
	Name    [NameMaxLen]byte
}

// MarshalTo writes the descriptor into buf, which must be at least
// SizeDescriptor bytes long.
func (d *Descriptor) MarshalTo(buf []byte) {
	buf[0] = d.NameLen
	copy(buf[1:SizeDescriptor], d.Name[:])
}

// UnmarshalBinary decodes a Descriptor from its fixed 65-byte layout.
func (d *Descriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeDescriptor {
		return ErrBufferTooShort
	}
	d.NameLen = buf[0]
	copy(d.Name[:], buf[1:SizeDescriptor])
	return nil
}

// Validate checks the 0 < name_len <= NameMaxLen invariant.
func (d *Descriptor) Validate() error {
	if d.NameLen == 0 || d.NameLen > NameMaxLen {
		return ErrNameLenOverflow
	}
	return nil
}

// RawName returns the first name_len bytes of Name.
func (d *Descriptor) RawName() []byte {
	return d.Name[:d.NameLen]
}
