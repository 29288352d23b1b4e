package core

// TimeSlice is a contiguous stretch of CPU time given to one process.
type TimeSlice struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated processor. The clock only moves forward,
// either by executing a process or by idling until the next arrival.
type Cpu struct {
	clock    int
	metric   CpuMetric
	timeline []TimeSlice
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]TimeSlice, 0)}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// IdleUntil jumps the clock to t. Nothing happens if t is not in the future.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs p for units time units and returns the new clock.
// Back-to-back slices of the same process are merged.
func (c *Cpu) Execute(p Process, units int) int {
	start := c.clock
	c.clock += units
	c.metric.UtilizationTime += units

	if n := len(c.timeline); n > 0 && c.timeline[n-1].ProcessID == p.ID && c.timeline[n-1].Stop == start {
		c.timeline[n-1].Stop = c.clock
	} else {
		c.timeline = append(c.timeline, TimeSlice{ProcessID: p.ID, Start: start, Stop: c.clock})
	}
	return c.clock
}

func (c *Cpu) Timeline() []TimeSlice {
	out := make([]TimeSlice, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
