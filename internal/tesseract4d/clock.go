package tesseract4d

// clock integrates wall-clock timestamps into the animation phase.
// After reset it has no baseline; the first timestamp only records one,
// so the first tick advances the phase by zero.
type clock struct {
	phase    Real
	baseline Real
	started  bool
}

func (c *clock) reset() {
	c.phase = 0
	c.baseline = 0
	c.started = false
}

// advance consumes a timestamp (seconds) and returns the new phase.
// The delta is clamped to MaxFrameDelta before scaling by speed, so a
// long gap between ticks moves the animation by at most one clamped step.
func (c *clock) advance(now, speed Real) Real {
	if !c.started {
		c.started = true
		c.baseline = now
		return c.phase
	}
	delta := now - c.baseline
	c.baseline = now
	if delta < 0 {
		delta = 0
	}
	if delta > MaxFrameDelta {
		delta = MaxFrameDelta
	}
	c.phase += delta * speed
	return c.phase
}
