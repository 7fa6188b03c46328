package charts

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func getSlices() []Slice {
	return []Slice{
		{Label: "label 1", Value: 10},
		{Label: "label 2", Value: 20},
		{Label: "label 3", Value: 15},
		{Label: "label 4", Value: 19},
		{Label: "label 5", Value: 11},
	}
}

func TestLayoutPie(t *testing.T) {
	lay, err := LayoutPie(getSlices(), DefaultPieOptions(), 400, Progress{Angle: 1, Text: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(lay.Wedges) != 5 {
		t.Fatalf("wedges: want 5, got %d", len(lay.Wedges))
	}
	if lay.Panel.Height != 400 || lay.Panel.LegendHeight != 58 {
		t.Fatalf("panel: unexpected geometry %+v", lay.Panel)
	}
	if lay.Radius != 171 || lay.Center != Pt(200, 171) {
		t.Fatalf("pie: unexpected radius %g and center %+v", lay.Radius, lay.Center)
	}
	var (
		sum  float64
		prev = -90.0
	)
	for _, w := range lay.Wedges {
		sum += w.Proportion
		if !almostEqual(w.Start, prev) {
			t.Errorf("wedge %d: want start %g, got %g", w.Index, prev, w.Start)
		}
		if !almostEqual(w.Sweep, w.Proportion*360) {
			t.Errorf("wedge %d: want sweep %g, got %g", w.Index, w.Proportion*360, w.Sweep)
		}
		prev = w.End()
	}
	if !almostEqual(sum, 1) {
		t.Errorf("proportions: want sum 1, got %g", sum)
	}
	if last := lay.Wedges[4]; !almostEqual(last.End(), 270) {
		t.Errorf("last wedge: want end 270, got %g", last.End())
	}
	if got := lay.Wedges[0].Percent.Text; got != "13.33%" {
		t.Errorf("percent: want 13.33%%, got %s", got)
	}
	if len(lay.Legend.Entries) != 5 || lay.Legend.Rows != 2 {
		t.Errorf("legend: unexpected layout %d entries in %d rows", len(lay.Legend.Entries), lay.Legend.Rows)
	}
}

func TestLayoutPie_PercentPosition(t *testing.T) {
	opts := DefaultPieOptions()
	lay, err := LayoutPie(getSlices(), opts, 400, Progress{Angle: 1, Text: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, w := range lay.Wedges {
		var (
			rad  = w.Mid() * math.Pi / 180
			half = ApproxMetrics{}.MeasureWidth(w.Percent.Text, opts.Percent.FontSize) / 2
			x    = lay.Center.X + lay.Radius/2*math.Cos(rad) - half
			y    = lay.Center.Y + lay.Radius/2*math.Sin(rad)
		)
		if !almostEqual(w.Percent.Pos.X, x) || !almostEqual(w.Percent.Pos.Y, y) {
			t.Errorf("wedge %d: want label at (%g, %g), got %+v", w.Index, x, y, w.Percent.Pos)
		}
	}
}

func TestLayoutPie_Shift(t *testing.T) {
	lay, err := LayoutPie(getSlices(), DefaultPieOptions(), 400, Done())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := lay.Wedges[0].Start; !almostEqual(got, 0) {
		t.Errorf("shifted pie: want start 0, got %g", got)
	}
	if got := lay.Wedges[4].End(); !almostEqual(got, 360) {
		t.Errorf("shifted pie: want end 360, got %g", got)
	}

	opts := DefaultPieOptions()
	opts.Animation.ShiftEnabled = false
	if lay, err = LayoutPie(getSlices(), opts, 400, Done()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := lay.Wedges[0].Start; !almostEqual(got, -90) {
		t.Errorf("no shift: want start -90, got %g", got)
	}
}

func TestLayoutPie_Progress(t *testing.T) {
	lay, err := LayoutPie(getSlices(), DefaultPieOptions(), 400, Progress{Angle: 0.5, Text: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var total float64
	for _, w := range lay.Wedges {
		total += w.Sweep
	}
	if !almostEqual(total, 180) {
		t.Errorf("half drawn pie: want 180 degrees, got %g", total)
	}
	if got := lay.Wedges[0].Percent.Size; !almostEqual(got, DefaultFontSize/2) {
		t.Errorf("percent: want half font size, got %g", got)
	}
}

func TestLayoutPie_Divider(t *testing.T) {
	full, err := LayoutPie(getSlices(), DefaultPieOptions(), 400, Progress{Angle: 1, Text: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	opts := DefaultPieOptions()
	opts.DividerAngle = 2
	lay, err := LayoutPie(getSlices(), opts, 400, Progress{Angle: 1, Text: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i, w := range lay.Wedges {
		ref := full.Wedges[i]
		if !almostEqual(w.Sweep, ref.Sweep-2) || !almostEqual(w.Start, ref.Start+1) {
			t.Errorf("wedge %d: want %g+%g, got %g+%g", i, ref.Start+1, ref.Sweep-2, w.Start, w.Sweep)
		}
		if !almostEqual(w.Mid(), ref.Mid()) {
			t.Errorf("wedge %d: divider moved the middle of the wedge", i)
		}
	}

	opts.DividerAngle = 100
	if lay, err = LayoutPie(getSlices(), opts, 400, Progress{Angle: 1, Text: 1}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, w := range lay.Wedges {
		if w.Sweep < 0 {
			t.Errorf("wedge %d: negative sweep %g", w.Index, w.Sweep)
		}
	}
}

func TestLayoutPie_Donut(t *testing.T) {
	opts := DefaultPieOptions()
	opts.InnerRadius = 0.5
	lay, err := LayoutPie(getSlices(), opts, 400, Done())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if lay.InnerRadius != lay.Radius/2 {
		t.Fatalf("donut: want inner radius %g, got %g", lay.Radius/2, lay.InnerRadius)
	}
}

func TestLayoutPie_Errors(t *testing.T) {
	var zerr ZeroTotalError
	data := []Slice{{Label: "a"}, {Label: "b"}}
	if _, err := LayoutPie(data, DefaultPieOptions(), 400, Done()); !errors.As(err, &zerr) {
		t.Errorf("zero total: expected ZeroTotalError, got %v", err)
	}
	var verr InvalidValueError
	data = []Slice{{Label: "a", Value: 10}, {Label: "b", Value: -1}}
	if _, err := LayoutPie(data, DefaultPieOptions(), 400, Done()); !errors.As(err, &verr) || verr.Index != 1 {
		t.Errorf("negative value: expected InvalidValueError, got %v", err)
	}
	data = []Slice{{Label: "a", Value: math.NaN()}}
	if _, err := LayoutPie(data, DefaultPieOptions(), 400, Done()); !errors.As(err, &verr) {
		t.Errorf("NaN value: expected InvalidValueError, got %v", err)
	}
	var serr EmptySeriesError
	if _, err := LayoutPie(nil, DefaultPieOptions(), 400, Done()); !errors.As(err, &serr) {
		t.Errorf("no data: expected EmptySeriesError, got %v", err)
	}
}

func TestLayoutPie_Idempotent(t *testing.T) {
	var (
		data     = getSlices()
		opts     = DefaultPieOptions()
		progress = Progress{Angle: 0.7, Shift: 0.3, Text: 0.7}
	)
	opts.DividerAngle = 2
	fst, err := LayoutPie(data, opts, 300, progress)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	snd, err := LayoutPie(data, opts, 300, progress)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !reflect.DeepEqual(fst, snd) {
		t.Fatalf("layouts differ for the same input")
	}
}
