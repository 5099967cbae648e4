package game

// FixedClock turns variable frame times into a whole number of fixed steps.
// Time beyond MaxSteps per frame is dropped so a long stall cannot snowball.
type FixedClock struct {
	Step     float32
	MaxSteps int
	acc      float32
}

func NewFixedClock(hz float32, maxSteps int) FixedClock {
	return FixedClock{Step: 1 / hz, MaxSteps: maxSteps}
}

// Advance adds frame seconds and returns how many steps to run now.
func (c *FixedClock) Advance(frame float32) int {
	if frame < 0 {
		frame = 0
	}
	c.acc += frame
	steps := 0
	for c.acc >= c.Step && steps < c.MaxSteps {
		c.acc -= c.Step
		steps++
	}
	if steps == c.MaxSteps && c.acc >= c.Step {
		c.acc = 0
	}
	return steps
}
