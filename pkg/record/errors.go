// Package record implements the packed binary layout of OATH secret
// records and the Table-of-Contents, exactly as laid out on the wire
// between the device and the host.
package record

import "errors"

// Layout and bounds errors.
var (
	// ErrBufferTooShort is returned when an UnmarshalBinary source is
	// shorter than the type's fixed on-wire size.
	ErrBufferTooShort = errors.New("record: buffer too short")

	// ErrKeyLenOverflow is returned when key_len is zero or exceeds
	// KeyMaxLen.
	ErrKeyLenOverflow = errors.New("record: key_len out of range")

	// ErrNameLenOverflow is returned when name_len is zero or exceeds
	// NameMaxLen.
	ErrNameLenOverflow = errors.New("record: name_len out of range")

	// ErrDigitsOutOfRange is returned when digits is zero or exceeds
	// MaxDigits.
	ErrDigitsOutOfRange = errors.New("record: digits out of range")

	// ErrDescriptorCountOverflow is returned when descriptor_count
	// exceeds DescriptorMaxCount.
	ErrDescriptorCountOverflow = errors.New("record: descriptor_count out of range")
)
