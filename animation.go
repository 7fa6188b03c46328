package charts

import (
	"time"
)

// Progress is a snapshot of the animation channels at one instant. Every
// channel is a completion fraction in [0, 1]; values outside are clamped.
//
// Chart grows the axes, grid lines and labels of cartesian charts. Angle,
// Shift and Text drive the sweep, the rotation and the labels of a pie.
type Progress struct {
	Chart float64
	Angle float64
	Shift float64
	Text  float64
}

// Done returns the snapshot of a fully drawn chart.
func Done() Progress {
	return Progress{
		Chart: 1,
		Angle: 1,
		Shift: 1,
		Text:  1,
	}
}

// Entrance schedules the animation of one shape relative to the start of the
// chart animation. A zero Entrance means the shape is drawn immediately.
type Entrance struct {
	Delay    time.Duration
	Duration time.Duration
}

func (e Entrance) End() time.Duration {
	return e.Delay + e.Duration
}

func (e Entrance) IsZero() bool {
	return e.Delay == 0 && e.Duration == 0
}
