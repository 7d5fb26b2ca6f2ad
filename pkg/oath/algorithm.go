package oath

import "github.com/tillitis/tkey-device-oath/pkg/record"

// Algorithm identifies the hash used to compute a one-time password.
// Only SHA1 is implemented.
type Algorithm uint8

const (
	// AlgSHA1 is the only implemented algorithm.
	AlgSHA1 Algorithm = iota
	// AlgUnsupported covers the SHA256, SHA512 and reserved
	// OATH_PROP_ALG encodings that a decrypted record may carry but
	// that this engine refuses to evaluate.
	AlgUnsupported
)

// AlgorithmOf decodes the OATH_PROP_ALG bits of a record's properties
// byte. Decided Open Question (see DESIGN.md): rather than silently
// running SHA1 regardless of the algorithm bits, as the original
// firmware does, unrecognized bits are reported as AlgUnsupported so
// the caller can fail the operation explicitly.
func AlgorithmOf(properties uint8) Algorithm {
	if properties&record.PropAlgMask == record.PropAlgSHA1 {
		return AlgSHA1
	}
	return AlgUnsupported
}
