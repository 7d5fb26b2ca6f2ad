// Package session holds the single mutable state block the dispatcher
// carries across frames for one power cycle: the decrypted-in-place
// Table of Contents, the staging buffer shared by PUT and CALCULATE,
// the chunk transfer cursor, and the forced-next-command constraint.
package session

import "errors"

var (
	// ErrCursorOverflow describes a chunked transfer whose cursor would
	// advance past the bounds of the buffer it indexes. Nothing in this
	// module returns it: the dispatcher clamps every chunk to the bytes
	// still remaining, so the cursor never passes the buffer's end.
	ErrCursorOverflow = errors.New("session: cursor overflow")
)
