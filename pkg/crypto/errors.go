// Package crypto wraps the XChaCha20-Poly1305 AEAD construction with the
// fixed key/nonce/associated-data binding the device uses for every
// record and ToC it seals.
package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a CDI-derived key is not
	// exactly KeySize bytes.
	ErrInvalidKeySize = errors.New("crypto: invalid key size, must be 32 bytes")

	// ErrInvalidNonceSize describes a nonce that is not exactly
	// NonceSize bytes. Lock and Unlock take the nonce as a fixed-size
	// array and never return it.
	ErrInvalidNonceSize = errors.New("crypto: invalid nonce size, must be 24 bytes")

	// ErrInvalidMACSize describes a MAC that is not exactly MACSize
	// bytes. Lock and Unlock take the MAC as a fixed-size array and
	// never return it.
	ErrInvalidMACSize = errors.New("crypto: invalid mac size, must be 16 bytes")

	// ErrAuthFailed is returned by Unlock when the MAC does not verify.
	// Callers must treat the plaintext buffer as unreadable on this
	// error — Unlock zeroes it before returning.
	ErrAuthFailed = errors.New("crypto: message authentication failed")
)
