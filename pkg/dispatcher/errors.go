// Package dispatcher implements the single command loop: it decodes
// one inbound frame, validates the forced-next-command ordering rule,
// drives the record, crypto, oath and session packages, and produces
// exactly one reply frame. It is the Go-idiomatic reshaping of the
// original firmware's monolithic main() for-loop switch: the loop
// itself lives in cmd/tkey-oath-sim, and Dispatcher.HandleFrame is the
// body of one iteration.
package dispatcher

import "errors"

var (
	// ErrBadPayload describes a request payload shorter than a command
	// requires. No handler in this package returns it: HandleFrame and
	// the handlers answer a short payload with a NOK or STATUS_BAD reply
	// directly.
	ErrBadPayload = errors.New("dispatcher: payload too short")
)
