package z80

// cycleIncrement is the number of ticks one machine cycle takes.
const cycleIncrement = 4

// Clock counts elapsed machine ticks. It is plain storage for the
// execution loop, decoding itself consumes no cycles.
type Clock struct {
	time uint64
}

// NewClock returns a clock starting at the given tick count.
func NewClock(start uint64) *Clock {
	return &Clock{time: start}
}

// Incr advances the clock by one machine cycle.
func (c *Clock) Incr() {
	c.time += cycleIncrement
}

// IncrN advances the clock by n machine cycles.
func (c *Clock) IncrN(n uint64) {
	c.time += cycleIncrement * n
}

// Time returns the elapsed tick count.
func (c *Clock) Time() uint64 {
	return c.time
}
