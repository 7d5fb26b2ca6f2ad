package session

import (
	"github.com/tillitis/tkey-device-oath/pkg/record"
)

// State holds all state the dispatcher carries across frames for one
// power cycle. Per the single-threaded, strictly sequential command
// loop (the device services exactly one command at a time, with no
// concurrent frames in flight) there is no mutex: the dispatcher is
// the sole owner and holds State for the duration of one handler call.
//
// This stores the four things spec section 5 names:
//  1. ToC — the decrypted-in-place Table of Contents
//  2. RecordBuf — the staging buffer shared by PUT, PUT_GETRECORD and
//     CALCULATE
//  3. Cursor — nbytes_transferred, the signed chunk-transfer cursor
//  4. ForcedNextCommand — the forced-next-command constraint
type State struct {
	// === Table of Contents (field 1) ===
	// TOCBuf is the raw overlay backing a record.TOC: LOAD_TOC appends
	// ciphertext chunks directly into it, GET_LIST and GET_ENCRYPTEDTOC
	// stream it back out, and PUT decodes it into a record.TOC value to
	// append a descriptor. The AEAD unlock (LOAD_TOC) and lock
	// (GET_ENCRYPTEDTOC) work on its raw descriptor bytes in place. It
	// is zeroed at boot.
	TOCBuf [record.SizeTOC]byte

	// === Record staging (field 2) ===
	RecordBuf          [record.SizePutRecord]byte // big enough for PutRecord and SecureRecord
	RecordBufEncrypted bool                        // set once a PUT has fully completed

	// === Chunk cursor (field 3) ===
	Cursor int32 // nbytes_transferred; non-negative on receive, non-positive on send

	// === Forced-next-command (field 4) ===
	ForcedNextCommand Command
}

// DecodeTOC unmarshals the current TOCBuf contents into a record.TOC
// value for the caller to inspect or mutate.
func (s *State) DecodeTOC() (record.TOC, error) {
	var t record.TOC
	err := t.UnmarshalBinary(s.TOCBuf[:])
	return t, err
}

// EncodeTOC writes t back into TOCBuf, overwriting it in place.
func (s *State) EncodeTOC(t record.TOC) {
	t.MarshalTo(s.TOCBuf[:])
}

// Reset zeroes the ToC and staging buffer and re-arms the boot-time
// forced command, matching the power-up lifecycle: the ToC buffer is
// zeroed at boot and re-populated only by a successful LOAD_TOC.
func (s *State) Reset() {
	s.TOCBuf = [record.SizeTOC]byte{}
	s.RecordBuf = [record.SizePutRecord]byte{}
	s.RecordBufEncrypted = false
	s.Cursor = 0
	s.ForcedNextCommand = CommandLoadTOC
}

// Allow reports whether cmd may run given the current
// ForcedNextCommand constraint. GET_NAMEVERSION is always accepted
// regardless of any forced command, matching the rule that a forced
// command accepts either itself or GET_NAMEVERSION.
func (s *State) Allow(cmd Command) bool {
	if s.ForcedNextCommand == CommandAny {
		return true
	}
	if cmd == CommandGetNameVersion {
		return true
	}
	return cmd == s.ForcedNextCommand
}
