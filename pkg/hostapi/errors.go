// Package hostapi provides the host-side helpers for talking to the
// device core: builders that pack a PUT or CALCULATE request the way
// the original firmware's c_shim.c does, a chunker for the multi-frame
// LOAD_TOC/PUT transfers, and parsers for the fixed-length replies.
package hostapi

import "errors"

var (
	// ErrReplyTooShort is returned when a reply frame's payload is
	// shorter than the response it's being parsed as requires.
	ErrReplyTooShort = errors.New("hostapi: reply too short")

	// ErrUnexpectedResponseCode is returned when a reply's response
	// code byte doesn't match the one the caller expected.
	ErrUnexpectedResponseCode = errors.New("hostapi: unexpected response code")

	// ErrStatusBad is returned when a reply's status byte is
	// STATUS_BAD.
	ErrStatusBad = errors.New("hostapi: device returned STATUS_BAD")
)
