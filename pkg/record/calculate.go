package record

import "encoding/binary"

// Calculate is the packed oath_calculate (122 B): a host-supplied
// SecureRecord plus the UNIX time to evaluate it against. The device
// holds no clock of its own — time always comes from the host.
type Calculate struct {
	SecureRecord SecureRecord
	Time         uint32
}

// MarshalBinary encodes the calculate request into its fixed 122-byte
// layout.
func (c *Calculate) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SizeCalculate)
	c.MarshalTo(buf)
	return buf, nil
}

// MarshalTo writes the calculate request into buf, which must be at
// least SizeCalculate bytes long.
func (c *Calculate) MarshalTo(buf []byte) {
	c.SecureRecord.MarshalTo(buf[0:SizeSecureRecord])
	binary.LittleEndian.PutUint32(buf[SizeSecureRecord:SizeCalculate], c.Time)
}

// UnmarshalBinary decodes a Calculate request from its fixed 122-byte
// layout.
func (c *Calculate) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeCalculate {
		return ErrBufferTooShort
	}
	if err := c.SecureRecord.UnmarshalBinary(buf[0:SizeSecureRecord]); err != nil {
		return err
	}
	c.Time = binary.LittleEndian.Uint32(buf[SizeSecureRecord:SizeCalculate])
	return nil
}
