// Package anim drives chart entrance animations. It turns the durations and
// delays of the chart options into progress snapshots at a given instant, so
// that a frame can be computed for any point in time without a running clock.
package anim

import (
	"math"
	"time"

	charts "github.com/midbel/chartlayout"
)

// Tween animates one value from 0 to 1 after Delay, over Duration.
type Tween struct {
	Delay    time.Duration
	Duration time.Duration
	Easing   Easing
}

// At returns the progress of the tween at elapsed time since the start of the
// animation.
func (t Tween) At(elapsed time.Duration) float64 {
	if elapsed < t.Delay {
		return 0
	}
	if t.Duration <= 0 || elapsed >= t.End() {
		return 1
	}
	frac := float64(elapsed-t.Delay) / float64(t.Duration)
	if t.Easing == nil {
		return frac
	}
	return t.Easing(frac)
}

func (t Tween) End() time.Duration {
	return t.Delay + t.Duration
}

// Forever is a delay that is never reached: a tween starting after Forever
// stays at zero.
const Forever = time.Duration(math.MaxInt64)

// Timeline gathers the tweens of every channel of a chart.
type Timeline struct {
	Chart Tween
	Angle Tween
	Shift Tween
	Text  Tween
}

// At returns the progress snapshot at elapsed.
func (t Timeline) At(elapsed time.Duration) charts.Progress {
	return charts.Progress{
		Chart: t.Chart.At(elapsed),
		Angle: t.Angle.At(elapsed),
		Shift: t.Shift.At(elapsed),
		Text:  t.Text.At(elapsed),
	}
}

// End returns the instant at which every channel is complete.
func (t Timeline) End() time.Duration {
	var end time.Duration
	for _, w := range []Tween{t.Chart, t.Angle, t.Shift, t.Text} {
		if w.Delay == Forever {
			continue
		}
		end = max(end, w.End())
	}
	return end
}

// Cartesian returns the timeline of a bar or line chart. Without animation
// every channel is complete from the start.
func Cartesian(opts charts.AnimationOptions) Timeline {
	if !opts.Enabled {
		return Timeline{}
	}
	return Timeline{
		Chart: Tween{
			Delay:    opts.Delay,
			Duration: opts.ComponentDuration,
			Easing:   Linear,
		},
	}
}

// Pie returns the timeline of a pie chart. Without animation the wedges and
// labels are complete and the pie is not rotated.
func Pie(opts charts.PieAnimationOptions) Timeline {
	if !opts.Enabled {
		return Timeline{
			Shift: Tween{Delay: Forever},
		}
	}
	var (
		angle = Tween{
			Delay:    opts.DrawDelay + opts.AngleDelay,
			Duration: opts.AngleDuration,
			Easing:   LinearOutSlowIn,
		}
		shift = Tween{
			Delay:    opts.DrawDelay + opts.ShiftDelay,
			Duration: opts.ShiftDuration,
			Easing:   ShiftEasing,
		}
	)
	if !opts.ShiftEnabled {
		shift = Tween{Delay: Forever}
	}
	return Timeline{
		Chart: angle,
		Angle: angle,
		Shift: shift,
		Text:  angle,
	}
}

// Shape returns the linear progress of a shape entrance at elapsed.
func Shape(e charts.Entrance, elapsed time.Duration) float64 {
	return Tween{
		Delay:    e.Delay,
		Duration: e.Duration,
	}.At(elapsed)
}

// Clock returns a function giving the progress of any shape entrance at the
// fixed instant elapsed, for use by the paint package.
func Clock(elapsed time.Duration) func(charts.Entrance) float64 {
	return func(e charts.Entrance) float64 {
		return Shape(e, elapsed)
	}
}
