package charts

import (
	"time"

	"github.com/midbel/slices"
)

// PanelGeometry holds the pixel dimensions of a chart. PlotHeight is the
// length of the vertical axis and AxisLength the length of the horizontal
// one; LeftMargin is the space reserved on the left for the tick labels.
type PanelGeometry struct {
	Width           float64
	Height          float64
	PlotHeight      float64
	AxisLabelHeight float64
	LegendHeight    float64
	LeftMargin      float64
	AxisLength      float64
}

// Frame is the static decoration of a cartesian chart.
type Frame struct {
	XAxis      Rect
	XColor     string
	YAxis      Rect
	YColor     string
	TickLabels []Text
	GridLines  []Line
}

type cartesian struct {
	CartesianOptions
	Ticks  TickSet
	Panel  PanelGeometry
	Scaler ValueScaler
}

func newCartesian(opts CartesianOptions, width float64, values []float64, series int) (cartesian, error) {
	ticks, err := ResolveTicks(opts.Ticks, values)
	if err != nil {
		return cartesian{}, err
	}
	c := cartesian{
		CartesianOptions: opts,
		Ticks:            ticks,
	}
	var (
		label  = opts.Format(slices.Lst([]float64(ticks)))
		height = opts.Padding + opts.Horizontal.FontSize
		rows   = LegendRows(series, DefaultLabelsPerRow)
	)
	c.Panel.Width = width
	c.Panel.PlotHeight = opts.Grid.Spacing * float64(len(ticks)-1)
	c.Panel.AxisLabelHeight = height
	c.Panel.LegendHeight = height * float64(rows)
	c.Panel.Height = c.Panel.PlotHeight + c.Panel.AxisLabelHeight + c.Panel.LegendHeight
	c.Panel.LeftMargin = opts.Metrics.MeasureWidth(label, opts.Vertical.FontSize) + opts.Padding
	c.Panel.AxisLength = max(0, width-c.Panel.LeftMargin)

	c.Scaler, err = NewValueScaler(ticks, c.Panel.PlotHeight)
	if err != nil {
		return cartesian{}, err
	}
	return c, nil
}

// Left returns the x coordinate of the vertical axis.
func (c cartesian) Left() float64 {
	return c.Panel.LeftMargin
}

// Baseline returns the y coordinate of the horizontal axis.
func (c cartesian) Baseline() float64 {
	return c.Panel.PlotHeight
}

// LabelBaseline returns the y coordinate of the labels below the horizontal
// axis.
func (c cartesian) LabelBaseline() float64 {
	return c.Panel.PlotHeight + c.Panel.AxisLabelHeight
}

func (c cartesian) frame(progress float64) Frame {
	progress = clamp01(progress)
	var (
		fr     Frame
		length = c.Panel.AxisLength * progress
		height = c.Panel.PlotHeight * progress
		dist   = c.Panel.PlotHeight / float64(len(c.Ticks)-1)
		font   = c.Vertical.FontSize
	)
	fr.XAxis = NewRect(Pt(c.Left(), c.Baseline()), length, c.Horizontal.Thickness)
	fr.YAxis = NewRect(Pt(c.Left(), c.Baseline()-height), c.Vertical.Thickness, height)
	fr.XColor = c.Horizontal.Color
	fr.YColor = c.Vertical.Color
	for i, t := range c.Ticks {
		y := c.Baseline() - dist*float64(i)
		fr.TickLabels = append(fr.TickLabels, Text{
			Text:   c.Format(t),
			Pos:    Pt(c.Left()/2, y+font/2),
			Size:   font * progress,
			Color:  c.Vertical.LabelColor,
			Anchor: AnchorMiddle,
		})
		// no line over the horizontal axis
		if !c.Grid.Show || i == 0 {
			continue
		}
		fr.GridLines = append(fr.GridLines, Line{
			Start:  Pt(c.Left(), y),
			End:    Pt(c.Left()+length, y),
			Width:  c.Grid.Thickness,
			Color:  c.Grid.Color,
			Dashed: c.Grid.Style == StyleDash,
		})
	}
	return fr
}

func (c cartesian) legend(items []LegendItem, progress float64) Legend {
	opts := LegendOptions{
		Left:      c.Left(),
		Top:       c.LabelBaseline(),
		Width:     c.Panel.AxisLength,
		RowHeight: c.Panel.AxisLabelHeight,
		Padding:   c.Padding,
		FontSize:  c.Horizontal.FontSize,
		Color:     c.Horizontal.LabelColor,
		PerRow:    DefaultLabelsPerRow,
	}
	return LayoutLegend(items, opts, progress)
}

// entrance returns the schedule of the shape at the given position in the
// stagger, or a zero Entrance when animations are disabled.
func (c cartesian) entrance(step int, delay time.Duration) Entrance {
	if !c.Animation.Enabled {
		return Entrance{}
	}
	return Entrance{
		Delay:    time.Duration(step)*c.Animation.Duration + delay,
		Duration: c.Animation.Duration,
	}
}
