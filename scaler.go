package charts

import (
	"math"
	"sort"

	"github.com/midbel/slices"
)

// maxTickIntervals bounds the number of intervals between generated ticks, so
// a generated TickSet never holds more than maxTickIntervals+1 values.
const maxTickIntervals = 5

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// TickSet is an ascending sequence of evenly spaced axis values.
type TickSet []float64

func (t TickSet) Min() float64 {
	if len(t) == 0 {
		return 0
	}
	return slices.Fst([]float64(t))
}

func (t TickSet) Max() float64 {
	if len(t) == 0 {
		return 0
	}
	return slices.Lst([]float64(t))
}

func (t TickSet) Delta() float64 {
	return t.Max() - t.Min()
}

func (t TickSet) Range() Range {
	return NewRange(t.Min(), t.Max())
}

// Step returns the distance between the first two ticks, or zero when the set
// has less than two ticks.
func (t TickSet) Step() float64 {
	if len(t) < 2 {
		return 0
	}
	return t[1] - t[0]
}

// GenerateTicks derives a tick set spanning at least [floor(min), ceil(max)].
// The step is ceil(delta/5) and never smaller than 1. When min and max share
// the same integer bounds, the set is widened by one step so that it always
// holds two ticks.
func GenerateTicks(min, max float64) TickSet {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		Logger().Warn("ticks: non finite bounds", "min", min, "max", max)
		return nil
	}
	if min > max {
		min, max = max, min
	}
	var (
		fst   = math.Floor(min)
		lst   = math.Ceil(max)
		delta = lst - fst
		step  = math.Ceil(delta / maxTickIntervals)
	)
	if step < 1 {
		step = 1
	}
	if delta == 0 {
		Logger().Warn("ticks: empty range widened", "value", fst, "step", step)
		lst += step
	}
	// fst+step may round back to fst at large magnitudes
	n := int(math.Ceil((lst - fst) / step))
	if n > maxTickIntervals {
		n = maxTickIntervals
	}
	ticks := make(TickSet, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, fst+step*float64(i))
	}
	Logger().Debug("ticks generated", "min", min, "max", max, "step", step, "count", len(ticks))
	return ticks
}

// ResolveTicks returns a sorted copy of ticks when the caller supplied any,
// and a generated set spanning values otherwise. The caller's slice is never
// modified. Non finite ticks are rejected with an InvalidValueError.
func ResolveTicks(ticks TickSet, values []float64) (TickSet, error) {
	if len(ticks) > 0 {
		for i, t := range ticks {
			if math.IsNaN(t) || math.IsInf(t, 0) {
				return nil, InvalidValueError{Series: "ticks", Index: i, Value: t}
			}
		}
		list := make(TickSet, len(ticks))
		copy(list, ticks)
		sort.Float64s(list)
		if len(list) < 2 || list.Delta() == 0 {
			return nil, DegenerateRangeError{Min: list.Min(), Max: list.Max()}
		}
		return list, nil
	}
	if len(values) == 0 {
		return nil, EmptySeriesError{Chart: "axis"}
	}
	min, max := values[0], values[0]
	for _, v := range slices.Rest(values) {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	list := GenerateTicks(min, max)
	if len(list) < 2 {
		return nil, DegenerateRangeError{Min: min, Max: max}
	}
	return list, nil
}

// ValueScaler maps a value onto a vertical pixel offset measured from the top
// of an axis of the given Length. Larger values are closer to the top.
type ValueScaler struct {
	Min    float64
	Delta  float64
	Length float64
}

// NewValueScaler creates a scaler over the range covered by ticks. It fails
// with a DegenerateRangeError when that range is empty.
func NewValueScaler(ticks TickSet, length float64) (ValueScaler, error) {
	if ticks.Delta() == 0 {
		return ValueScaler{}, DegenerateRangeError{Min: ticks.Min(), Max: ticks.Max()}
	}
	return ValueScaler{
		Min:    ticks.Min(),
		Delta:  ticks.Delta(),
		Length: length,
	}, nil
}

// Scale returns the pixel offset of v from the top of the axis. A scaler with
// a zero Delta puts every value on the baseline.
func (s ValueScaler) Scale(v float64) float64 {
	if s.Delta == 0 {
		return s.Length
	}
	return s.Length - ((v-s.Min)/s.Delta)*s.Length
}

// Offset returns the distance from the baseline to the scaled value.
func (s ValueScaler) Offset(v float64) float64 {
	return s.Length - s.Scale(v)
}

// categoryScaler splits a horizontal range into equal slots, one per
// category or per point.
type categoryScaler struct {
	Range
	Count int
}

func newCategoryScaler(rg Range, count int) categoryScaler {
	return categoryScaler{
		Range: rg,
		Count: count,
	}
}

func (s categoryScaler) Space() float64 {
	if s.Count <= 0 {
		return 0
	}
	return s.Len() / float64(s.Count)
}

func (s categoryScaler) Scale(i int) float64 {
	return s.Min() + float64(i)*s.Space()
}

func (s categoryScaler) Center(i int) float64 {
	return s.Scale(i) + s.Space()/2
}
