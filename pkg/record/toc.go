package record

// TOCSettingTouch is the TOC_SETTING_TOUCH bit (bit 7) of a
// TOCHeaderProtected's Settings byte: reading the list requires a
// touch confirmation.
const TOCSettingTouch uint8 = 1 << 7

// TOCHeaderProtected is the 1-byte toc_header_protected, the plaintext
// AEAD associated data for the ToC's encrypted descriptor blob.
type TOCHeaderProtected struct {
	Settings uint8
}

// NeedsTouch reports whether TOCSettingTouch is set.
func (p *TOCHeaderProtected) NeedsTouch() bool {
	return p.Settings&TOCSettingTouch != 0
}

// MarshalBinary encodes the protected header into its fixed 1-byte
// layout. The result is used verbatim as AEAD associated data.
func (p *TOCHeaderProtected) MarshalBinary() ([]byte, error) {
	return []byte{p.Settings}, nil
}

// UnmarshalBinary decodes a TOCHeaderProtected from its 1-byte layout.
func (p *TOCHeaderProtected) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeTOCHeaderProt {
		return ErrBufferTooShort
	}
	p.Settings = buf[0]
	return nil
}

// TOCHeader is the packed decrypted_toc_header (42 B): the plaintext
// count and AEAD envelope fields that precede the (possibly encrypted)
// descriptor array in a TOC buffer.
type TOCHeader struct {
	DescriptorCount uint8
	Nonce           [NonceSize]byte
	MAC             [MACSize]byte
	ProtectedHeader TOCHeaderProtected
}

// MarshalTo writes the header into buf, which must be at least
// SizeTOCHeader bytes long.
func (h *TOCHeader) MarshalTo(buf []byte) {
	buf[0] = h.DescriptorCount
	copy(buf[1:1+NonceSize], h.Nonce[:])
	copy(buf[1+NonceSize:1+NonceSize+MACSize], h.MAC[:])
	buf[1+NonceSize+MACSize] = h.ProtectedHeader.Settings
}

// UnmarshalBinary decodes a TOCHeader from its fixed 42-byte layout.
func (h *TOCHeader) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeTOCHeader {
		return ErrBufferTooShort
	}
	h.DescriptorCount = buf[0]
	copy(h.Nonce[:], buf[1:1+NonceSize])
	copy(h.MAC[:], buf[1+NonceSize:1+NonceSize+MACSize])
	h.ProtectedHeader.Settings = buf[1+NonceSize+MACSize]
	return nil
}

// Validate checks the descriptor_count <= DescriptorMaxCount invariant.
func (h *TOCHeader) Validate() error {
	if h.DescriptorCount > DescriptorMaxCount {
		return ErrDescriptorCountOverflow
	}
	return nil
}

// TOC is the packed decrypted_toc (2122 B): a TOCHeader followed by a
// fixed array of 32 descriptors. Only the first DescriptorCount
// descriptors are meaningful; the rest are zeroed, exactly as in the
// original firmware's statically sized buffer.
type TOC struct {
	Header      TOCHeader
	Descriptors [DescriptorMaxCount]Descriptor
}

// DescriptorsBlobLen returns the byte length of the (possibly
// encrypted) descriptor array for the header's current DescriptorCount.
func (h *TOCHeader) DescriptorsBlobLen() int {
	return int(h.DescriptorCount) * SizeDescriptor
}

// MarshalTo writes the full ToC into buf, which must be at least
// SizeTOC bytes long.
func (t *TOC) MarshalTo(buf []byte) {
	t.Header.MarshalTo(buf[0:SizeTOCHeader])
	off := SizeTOCHeader
	for i := range t.Descriptors {
		t.Descriptors[i].MarshalTo(buf[off : off+SizeDescriptor])
		off += SizeDescriptor
	}
}

// UnmarshalBinary decodes a full ToC from its fixed 2122-byte layout.
func (t *TOC) UnmarshalBinary(buf []byte) error {
	if len(buf) < SizeTOC {
		return ErrBufferTooShort
	}
	if err := t.Header.UnmarshalBinary(buf[0:SizeTOCHeader]); err != nil {
		return err
	}
	off := SizeTOCHeader
	for i := range t.Descriptors {
		if err := t.Descriptors[i].UnmarshalBinary(buf[off : off+SizeDescriptor]); err != nil {
			return err
		}
		off += SizeDescriptor
	}
	return nil
}

// DescriptorsBlob returns the encoded bytes of the first DescriptorCount
// descriptors (DescriptorsBlobLen bytes). The slice is a freshly
// marshaled copy and does not alias t's storage — callers that mutate
// it must call SetDescriptorsBlob to write it back.
func (t *TOC) DescriptorsBlob() []byte {
	n := t.Header.DescriptorsBlobLen()
	buf := make([]byte, DescriptorMaxCount*SizeDescriptor)
	off := 0
	for i := range t.Descriptors {
		t.Descriptors[i].MarshalTo(buf[off : off+SizeDescriptor])
		off += SizeDescriptor
	}
	return buf[:n]
}

// SetDescriptorsBlob decodes blob (n = DescriptorCount*SizeDescriptor
// bytes) back into the first DescriptorCount entries of Descriptors.
func (t *TOC) SetDescriptorsBlob(blob []byte) error {
	off := 0
	for i := 0; i < int(t.Header.DescriptorCount); i++ {
		if err := t.Descriptors[i].UnmarshalBinary(blob[off : off+SizeDescriptor]); err != nil {
			return err
		}
		off += SizeDescriptor
	}
	return nil
}
