package record

import "encoding/binary"

// Property bit masks for Protected.Properties (OATH_PROP_* in the
// original firmware).
const (
	// PropTypeHOTP is set when the record is HOTP (counter-based)
	// rather than TOTP (time-based).
	PropTypeHOTP uint8 = 1 << 7

	// PropAlgMask isolates the two algorithm bits.
	PropAlgMask uint8 = 0x60

	// PropAlgSHA1 is the only implemented algorithm.
	PropAlgSHA1 uint8 = 0x00
	// PropAlgSHA256 is reserved; OATH_PROP_ALG bits 01.
	PropAlgSHA256 uint8 = 0x20
	// PropAlgSHA512 is reserved; OATH_PROP_ALG bits 10.
	PropAlgSHA512 uint8 = 0x40
	// PropAlgUndefined is reserved; OATH_PROP_ALG bits 11.
	PropAlgUndefined uint8 = 0x60

	// PropTouch requires a touch confirmation before CALCULATE
	// returns a value.
	PropTouch uint8 = 1 << 4
)

// Protected is the plaintext oath_record_protected (10 B). It is the
// AEAD associated data for a record's encrypted_blob: authenticated but
// never encrypted, so the dispatcher can bind a ciphertext to its
// counter/timestep and properties without decrypting it first.
type Protected struct {
	// CounterOrTimestep is the HOTP counter, or the TOTP time step in
	// seconds.
	CounterOrTimestep uint64
	Properties        uint8
	Digits            uint8
}

// IsHOTP reports whether PropTypeHOTP is set.
func (p *Protected) IsHOTP() bool {
	return p.Properties&PropTypeHOTP != 0
}

// Algorithm returns the two-bit OATH_PROP_ALG field.
func (p *Protected) Algorithm() uint8 {
	return p.Properties & PropAlgMask
}

// NeedsTouch reports whether PropTouch is set.
func (p *Protected) NeedsTouch() bool {
	return p.Properties&PropTouch != 0
}

// MarshalBinary encodes the protected block into its fixed 10-byte
// layout. The result is used verbatim as AEAD associated data.
func (p *Protected) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SizeProtected)
	p.MarshalTo(buf)
	return buf, nil
}

// MarshalTo writes the protected block into buf, which must be at
// least SizeProtected bytes long.
func (p *Protected) MarshalTo(buf []byte) {
	binary.LittleEndian.PutUint64(buf[0:8], p.CounterOrTimestep)
	buf[8] = p.Properties
	buf[9] = p.Digits
}

// UnmarshalBinary decodes a Protected block from its fixed 10-byte
// layout.
func (p *Protected) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeProtected {
		return ErrBufferTooShort
	}
	p.CounterOrTimestep = binary.LittleEndian.Uint64(buf[0:8])
	p.Properties = buf[8]
	p.Digits = buf[9]
	return nil
}

// Validate checks the 1 <= digits <= MaxDigits invariant.
func (p *Protected) Validate() error {
	if p.Digits == 0 || p.Digits > MaxDigits {
		return ErrDigitsOutOfRange
	}
	return nil
}
