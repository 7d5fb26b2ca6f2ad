package hw

import "context"

// Touch is the capacitive touch sensor gating operations that require
// explicit user presence (OATH_PROP_TOUCH). The original firmware
// blocks forever on the touch event register with no timeout; Wait
// instead honors ctx cancellation, which is the idiomatic stand-in for
// an unbounded wait that a caller still needs to be able to abandon.
type Touch interface {
	Wait(ctx context.Context) error
}
