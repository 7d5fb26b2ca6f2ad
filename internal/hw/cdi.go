// Package hw defines the hardware interfaces the device core depends
// on but does not implement itself: the Compound Device Identifier
// region, the TRNG, the status LED, and the touch sensor. Real
// implementations are memory-mapped I/O and out of scope for this
// repository (spec section 1); Sim provides an in-memory stand-in used
// by tests and the cmd/tkey-oath-sim demo.
package hw

// CDISize is the width of the Compound Device Identifier region.
const CDISize = 32

// CDI reads the device-and-app-bound key material captured once at
// boot. Implementations perform a word-wise copy from the hardware CDI
// region; the returned bytes are treated as constant for the lifetime
// of the power cycle.
type CDI interface {
	Read() ([CDISize]byte, error)
}
