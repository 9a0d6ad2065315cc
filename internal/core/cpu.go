package core

// CPU is the single simulated processor. It owns the clock and the timeline.
type CPU struct {
	clock    int
	busyTime int
	timeline []TimelineSegment

	// mergeAdjacent extends the last segment when the same process runs again
	// straight after it, as tick based preemptive schedulers do.
	mergeAdjacent bool
}

func NewCPU(mergeAdjacent bool) *CPU {
	return &CPU{
		timeline:      make([]TimelineSegment, 0),
		mergeAdjacent: mergeAdjacent,
	}
}

// Clock returns the current time.
func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil advances the clock to t. The clock never moves backwards and
// idle spans are not recorded.
func (c *CPU) IdleUntil(t int) {
	if t > c.clock {
		c.clock = t
	}
}

// Execute runs p for units time units starting at the current clock.
// units is capped to the remaining burst of p.
func (c *CPU) Execute(p *Process, units int) {
	if units > p.Remaining {
		units = p.Remaining
	}
	if units <= 0 {
		return
	}

	if !p.Started {
		p.Started = true
		p.StartTime = c.clock
	}

	last := len(c.timeline) - 1
	if c.mergeAdjacent && last >= 0 &&
		c.timeline[last].ProcessID == p.Spec.ID && c.timeline[last].EndTime == c.clock {
		c.timeline[last].EndTime += units
	} else {
		c.timeline = append(c.timeline, TimelineSegment{
			ProcessID: p.Spec.ID,
			StartTime: c.clock,
			EndTime:   c.clock + units,
		})
	}

	c.clock += units
	c.busyTime += units
	p.Remaining -= units
	if p.Remaining == 0 {
		p.CompletionTime = c.clock
	}
}

// Timeline returns a copy of the recorded segments.
func (c *CPU) Timeline() []TimelineSegment {
	out := make([]TimelineSegment, len(c.timeline))
	copy(out, c.timeline)
	return out
}

// BusyTime returns the number of time units the CPU spent executing.
func (c *CPU) BusyTime() int {
	return c.busyTime
}
