package core

import "time"

// Stopwatch measures the wall time of named pipeline phases in order.
type Stopwatch struct {
	start time.Time
	last  time.Time
	laps  []Lap
}

// Lap is one recorded phase duration.
type Lap struct {
	Name     string
	Duration time.Duration
}

// NewStopwatch starts a stopwatch at the current time.
func NewStopwatch() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, last: now}
}

// Lap records the time since the previous lap under the given name and
// returns the duration.
func (s *Stopwatch) Lap(name string) time.Duration {
	now := time.Now()
	d := now.Sub(s.last)
	s.last = now
	s.laps = append(s.laps, Lap{Name: name, Duration: d})
	return d
}

// Laps returns the recorded laps in order.
func (s *Stopwatch) Laps() []Lap { return s.laps }

// Total returns the time since the stopwatch was created.
func (s *Stopwatch) Total() time.Duration { return time.Since(s.start) }
