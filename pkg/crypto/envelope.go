package crypto

import (
	"crypto/cipher"
	"encoding/binary"

	"golang.org/x/crypto/chacha20poly1305"
)

// Fixed sizes for the device's AEAD binding (spec section 4.2).
const (
	// KeySize is the size of the CDI-derived key.
	KeySize = 32

	// NonceSize is the XChaCha20-Poly1305 nonce length.
	NonceSize = 24

	// MACSize is the Poly1305 tag length.
	MACSize = 16
)

// Entropy supplies the device's TRNG, one 32-bit word at a time. It
// polls a ready bit internally and blocks until a word is available;
// implementations of internal/hw's TRNG type satisfy this interface
// structurally.
type Entropy interface {
	ReadWord() (uint32, error)
}

// Envelope seals and opens records and ToC blobs against a single
// fixed 32-byte key for the lifetime of a power cycle. It never
// generates or stores its own nonces — Lock draws one fresh from the
// supplied Entropy on every call, and Unlock takes the nonce supplied
// by the caller (normally one previously produced by Lock and carried
// alongside the ciphertext).
type Envelope struct {
	aead cipher.AEAD
}

// NewEnvelope returns an Envelope bound to key, which must be exactly
// KeySize bytes — the local_cdi captured once at boot.
func NewEnvelope(key []byte) (*Envelope, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &Envelope{aead: aead}, nil
}

// Lock draws a fresh nonce from entropy and seals plaintext in place,
// authenticating ad alongside it. On return plaintext holds the
// ciphertext of the same length; nonce and mac must be stored
// alongside it for a later Unlock.
func (e *Envelope) Lock(entropy Entropy, plaintext, ad []byte) (nonce [NonceSize]byte, mac [MACSize]byte, err error) {
	if err = fillFromTRNG(nonce[:], entropy); err != nil {
		return nonce, mac, err
	}
	sealed := e.aead.Seal(nil, nonce[:], plaintext, ad)
	ctLen := len(sealed) - MACSize
	copy(plaintext, sealed[:ctLen])
	copy(mac[:], sealed[ctLen:])
	return nonce, mac, nil
}

// Unlock opens ciphertext in place against nonce, mac and ad. On
// success ciphertext holds the plaintext. On MAC mismatch it returns
// ErrAuthFailed and zeroes ciphertext first — the caller must never
// read it after a failed Unlock.
func (e *Envelope) Unlock(ciphertext []byte, nonce [NonceSize]byte, mac [MACSize]byte, ad []byte) error {
	combined := make([]byte, len(ciphertext)+MACSize)
	copy(combined, ciphertext)
	copy(combined[len(ciphertext):], mac[:])

	opened, err := e.aead.Open(nil, nonce[:], combined, ad)
	if err != nil {
		for i := range ciphertext {
			ciphertext[i] = 0
		}
		return ErrAuthFailed
	}
	copy(ciphertext, opened)
	return nil
}

// fillFromTRNG fills buf with bytes drawn word-by-word from entropy,
// matching the original firmware's get_random: consume whole 32-bit
// words, copying only the bytes still needed from the final word.
func fillFromTRNG(buf []byte, entropy Entropy) error {
	for len(buf) > 0 {
		word, err := entropy.ReadWord()
		if err != nil {
			return err
		}
		var wordBuf [4]byte
		binary.LittleEndian.PutUint32(wordBuf[:], word)
		n := copy(buf, wordBuf[:])
		buf = buf[n:]
	}
	return nil
}
