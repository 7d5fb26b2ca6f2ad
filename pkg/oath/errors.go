// Package oath implements the HMAC-SHA1-based HOTP computation (RFC
// 4226) and its TOTP time derivation (RFC 6238), as used by the
// device's CALCULATE command.
package oath

import "errors"

var (
	// ErrEmptyKey is returned when the secret has zero length.
	ErrEmptyKey = errors.New("oath: empty key")

	// ErrDigitsOutOfRange is returned when digits is not in [1, 8].
	ErrDigitsOutOfRange = errors.New("oath: digits out of range")

	// ErrZeroStep is returned by TOTP when step is zero (division by
	// zero).
	ErrZeroStep = errors.New("oath: zero time step")
)
