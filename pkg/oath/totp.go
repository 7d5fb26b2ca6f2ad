package oath

// TOTP computes the time-based variant of HOTP (RFC 6238): the
// sequence number is unixTime / step (integer division), where step is
// the record's counter_or_timestep interpreted as a timestep in
// seconds. The device holds no clock; unixTime always comes from the
// host.
func TOTP(key []byte, unixTime uint32, step uint64, digits int) (uint32, error) {
	if step == 0 {
		return 0, ErrZeroStep
	}
	seq := uint64(unixTime) / step
	return HOTP(key, seq, digits)
}
