package charts

import (
	"math"
)

type Value struct {
	Value float64
	Label string
}

func NewValue(v float64, label string) Value {
	return Value{
		Value: v,
		Label: label,
	}
}

// Series is a named and coloured sequence of values. DotColor is only used by
// line charts for the point markers and defaults to Color.
type Series struct {
	Label    string
	Color    string
	DotColor string
	Values   []Value
}

func (s Series) Len() int {
	return len(s.Values)
}

// At returns the value at index i, or zero when the series is shorter.
func (s Series) At(i int) float64 {
	if i < 0 || i >= len(s.Values) {
		return 0
	}
	return s.Values[i].Value
}

func (s Series) getColor(i int) string {
	if s.Color != "" {
		return s.Color
	}
	return Category10.At(i)
}

func (s Series) getDotColor(i int) string {
	if s.DotColor != "" {
		return s.DotColor
	}
	return s.getColor(i)
}

// Slice is one wedge of a pie chart.
type Slice struct {
	Label string
	Value float64
	Color string
}

func (s Slice) getColor(i int) string {
	if s.Color != "" {
		return s.Color
	}
	return Category10.At(i)
}

func checkSeries(chart string, series []Series) ([]float64, error) {
	if len(series) == 0 {
		return nil, EmptySeriesError{Chart: chart}
	}
	var values []float64
	for _, s := range series {
		if len(s.Values) == 0 {
			return nil, EmptySeriesError{Chart: chart, Series: s.Label}
		}
		for j, v := range s.Values {
			if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
				return nil, InvalidValueError{Series: s.Label, Index: j, Value: v.Value}
			}
			values = append(values, v.Value)
		}
	}
	return values, nil
}

func legendItems(series []Series) []LegendItem {
	items := make([]LegendItem, 0, len(series))
	for i, s := range series {
		items = append(items, LegendItem{
			Label: s.Label,
			Color: s.getColor(i),
		})
	}
	return items
}
