package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// FingerprintSize is the length of a debug fingerprint.
const FingerprintSize = 8

// DeriveDebugFingerprint derives a short, one-way fingerprint of a
// decrypted blob for diagnostic display (e.g. a CLI status line showing
// "ToC fingerprint: ab12cd34" without ever printing the blob itself).
// It is not part of the wire protocol and carries no security
// guarantees beyond "looks different when the input differs" — it must
// never be used as a MAC or key.
func DeriveDebugFingerprint(key, data []byte) ([FingerprintSize]byte, error) {
	var out [FingerprintSize]byte
	reader := hkdf.New(sha256.New, key, nil, []byte("tkey-oath debug fingerprint"))
	if _, err := io.ReadFull(reader, out[:]); err != nil {
		return out, err
	}
	// Fold in a truncated SHA-256 digest of data so fingerprints
	// actually vary with the blob, not just the key.
	sum := sha256.Sum256(data)
	for i := range out {
		out[i] ^= sum[i]
	}
	return out, nil
}
