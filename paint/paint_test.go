package paint

import (
	"bytes"
	"strings"
	"testing"

	charts "github.com/midbel/chartlayout"
)

func getSeries() []charts.Series {
	return []charts.Series{
		{
			Label: "first",
			Values: []charts.Value{
				charts.NewValue(10, "Jan"),
				charts.NewValue(20, "Feb"),
				charts.NewValue(15, "Mar"),
			},
		},
		{
			Label: "second",
			Values: []charts.Value{
				charts.NewValue(5, "Jan"),
				charts.NewValue(25, "Feb"),
				charts.NewValue(12, "Mar"),
			},
		},
	}
}

func TestPainter_Bars(t *testing.T) {
	lay, err := charts.LayoutBars(getSeries(), charts.DefaultBarOptions(), 400, charts.Done())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var (
		buf bytes.Buffer
		p   = Painter{Background: "white"}
	)
	if err := p.Bars(&buf, lay); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	str := buf.String()
	for _, tag := range []string{"<svg", "<rect", "<text", "Feb"} {
		if !strings.Contains(str, tag) {
			t.Errorf("%s not found in output", tag)
		}
	}
}

func TestPainter_Lines(t *testing.T) {
	lay, err := charts.LayoutLines(getSeries(), charts.DefaultLineOptions(), 400, charts.Done())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var buf bytes.Buffer
	if err := (Painter{}).Lines(&buf, lay); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	str := buf.String()
	for _, tag := range []string{"<svg", "<line", "<circle"} {
		if !strings.Contains(str, tag) {
			t.Errorf("%s not found in output", tag)
		}
	}
}

func TestPainter_Pie(t *testing.T) {
	data := []charts.Slice{
		{Label: "a", Value: 10},
		{Label: "b", Value: 20},
		{Label: "c", Value: 15},
	}
	for _, inner := range []float64{0, 0.5} {
		opts := charts.DefaultPieOptions()
		opts.InnerRadius = inner
		lay, err := charts.LayoutPie(data, opts, 300, charts.Done())
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		var buf bytes.Buffer
		if err := (Painter{}).Pie(&buf, lay); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		str := buf.String()
		if n := strings.Count(str, "<path"); n != len(data) {
			t.Errorf("inner %g: want %d paths, got %d", inner, len(data), n)
		}
	}
}

func TestPainter_HiddenShapes(t *testing.T) {
	opts := charts.DefaultLineOptions()
	opts.Animation.Enabled = true
	lay, err := charts.LayoutLines(getSeries(), opts, 400, charts.Progress{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var (
		buf bytes.Buffer
		p   = Painter{
			Shape: func(charts.Entrance) float64 { return 0 },
		}
	)
	if err := p.Lines(&buf, lay); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if strings.Contains(buf.String(), "<circle") {
		t.Errorf("markers should not be drawn before their entrance")
	}
}

func TestShapes(t *testing.T) {
	ci := charts.Circle{
		Center: charts.Pt(10, 10),
		Radius: 4,
		Color:  "red",
	}
	for _, fn := range []PointFunc{GetCircle, GetSquare, GetDiamond} {
		if el := fn(ci); el == nil {
			t.Errorf("no element returned for marker")
		}
	}
}
