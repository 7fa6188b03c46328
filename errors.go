package charts

import (
	"fmt"
)

// DegenerateRangeError reports an axis whose range has no extent: fewer than
// two ticks, or a minimum equal to its maximum.
type DegenerateRangeError struct {
	Min float64
	Max float64
}

func (e DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate axis range [%g, %g]", e.Min, e.Max)
}

// ZeroTotalError reports a pie chart whose values do not sum to a positive
// total.
type ZeroTotalError struct {
	Total float64
}

func (e ZeroTotalError) Error() string {
	return fmt.Sprintf("pie total must be positive (got %g)", e.Total)
}

// EmptySeriesError reports a chart without data, or a series without values.
type EmptySeriesError struct {
	Chart  string
	Series string
}

func (e EmptySeriesError) Error() string {
	if e.Series == "" {
		return fmt.Sprintf("%s: no data", e.Chart)
	}
	return fmt.Sprintf("%s: series %q has no values", e.Chart, e.Series)
}

type InvalidValueError struct {
	Series string
	Index  int
	Value  float64
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("series %q: invalid value %g at index %d", e.Series, e.Value, e.Index)
}
