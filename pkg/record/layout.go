package record

// Fixed on-wire sizes for every packed type. All multi-byte integers are
// little-endian; there is no implicit padding anywhere in this package —
// every Marshal/Unmarshal pair writes and reads exact byte offsets rather
// than relying on struct layout.
const (
	// KeyBufLen is the storage size of the secret-record key buffer.
	// KeyMaxLen (below) is the usable invariant bound; the extra byte
	// keeps SizeSecret, and everything derived from it, aligned with the
	// fixed sizes this package's types are specified against.
	KeyBufLen = 67

	// KeyMaxLen is the largest legal key_len (byte 0 = type/algorithm,
	// byte 1 = digit count, remaining bytes the raw OATH secret).
	KeyMaxLen = 66

	// NameMaxLen is the largest legal name_len for a descriptor or put
	// record.
	NameMaxLen = 64

	// NonceSize is the XChaCha20-Poly1305 nonce length.
	NonceSize = 24

	// MACSize is the Poly1305 tag length.
	MACSize = 16

	// DescriptorMaxCount bounds the number of ToC entries.
	DescriptorMaxCount = 32

	// MaxDigits is the largest legal OATH digit count.
	MaxDigits = 8
)

// Fixed on-wire byte sizes, one constant per type in this package.
const (
	SizeSecret       = 1 + KeyBufLen                      // 68
	SizeProtected    = 8 + 1 + 1                           // 10
	SizeRecord       = SizeSecret + SizeProtected          // 78
	SizeSecureRecord = SizeRecord + NonceSize + MACSize    // 118
	SizePutRecord    = SizeRecord + 1 + NameMaxLen         // 143
	SizeCalculate    = SizeSecureRecord + 4                // 122
	SizeDescriptor   = 1 + NameMaxLen                      // 65
	SizeTOCHeaderProt = 1                                  // 1
	SizeTOCHeader    = 1 + NonceSize + MACSize + SizeTOCHeaderProt // 42
	SizeTOC          = SizeTOCHeader + DescriptorMaxCount*SizeDescriptor // 2122
)
