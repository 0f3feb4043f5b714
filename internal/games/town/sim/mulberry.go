package sim

// mulberry32 is a tiny 32-bit generator. Its sequence for a given seed is
// fixed, which keeps the tree layout identical across builds.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

// Float64 returns the next value in [0, 1).
func (m *mulberry32) Float64() float64 {
	m.state += 0x6D2B79F5
	a := m.state
	t := (a ^ a>>15) * (1 | a)
	t = (t + (t^t>>7)*(61|t)) ^ t
	return float64(t^t>>14) / 4294967296
}
