// Package frame implements the outer frame-protocol header the device
// core is handed validated frames through: a 1-byte header packing
// id, endpoint, status and a length code, followed by a payload whose
// size the length code determines. The frame codec itself is outside
// the device core's documented scope, but nothing above pkg/dispatcher
// supplies one, so this package gives a concrete implementation.
package frame

import "errors"

var (
	// ErrHeaderTooShort is returned when fewer than one byte is
	// available to decode a header from.
	ErrHeaderTooShort = errors.New("frame: header too short")

	// ErrPayloadTooShort is returned when fewer bytes are available
	// than the header's length code requires.
	ErrPayloadTooShort = errors.New("frame: payload too short")

	// ErrInvalidLengthCode is returned when a length code's 3 bits
	// don't map to one of the four defined payload sizes.
	ErrInvalidLengthCode = errors.New("frame: invalid length code")
)
