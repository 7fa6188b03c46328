package charts

import (
	"math"
)

// Wedge is one slice of a pie. Angles are in degrees, measured clockwise from
// 3 o'clock in screen space.
type Wedge struct {
	Index      int
	Label      string
	Value      float64
	Color      string
	Proportion float64
	Start      float64
	Sweep      float64
	Percent    Text
}

func (w Wedge) End() float64 {
	return w.Start + w.Sweep
}

func (w Wedge) Mid() float64 {
	return w.Start + w.Sweep/2
}

type PieLayout struct {
	Panel       PanelGeometry
	Bounds      Rect
	Center      Point
	Radius      float64
	InnerRadius float64
	Style       DrawStyle
	StrokeWidth float64
	Wedges      []Wedge
	Legend      Legend
}

// LayoutPie computes a pie chart inside a square panel of the given width.
// The legend takes the bottom of the panel and the pie is centered in the
// remaining area.
//
// Wedges are laid out one after the other from 12 o'clock, rotated by the
// Shift progress of the configured shift angle. At full Angle progress the
// last wedge ends exactly one turn after the first one starts.
func LayoutPie(data []Slice, opts PieOptions, width float64, progress Progress) (PieLayout, error) {
	if len(data) == 0 {
		return PieLayout{}, EmptySeriesError{Chart: "pie"}
	}
	var total float64
	for i, s := range data {
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) || s.Value < 0 {
			return PieLayout{}, InvalidValueError{Series: s.Label, Index: i, Value: s.Value}
		}
		total += s.Value
	}
	if total <= 0 {
		return PieLayout{}, ZeroTotalError{Total: total}
	}
	opts = opts.normalize()

	var (
		lay = PieLayout{
			Style:       opts.Style,
			StrokeWidth: opts.StrokeWidth,
		}
		rowHeight = opts.Padding*2 + opts.Label.FontSize
		rows      = LegendRows(len(data), DefaultLabelsPerRow)
	)
	lay.Panel.Width = width
	lay.Panel.Height = width
	lay.Panel.AxisLength = width
	lay.Panel.LegendHeight = rowHeight * float64(rows)
	lay.Panel.PlotHeight = max(0, width-lay.Panel.LegendHeight)

	lay.Radius = max(0, min(width, lay.Panel.PlotHeight)/2)
	lay.InnerRadius = lay.Radius * opts.InnerRadius
	lay.Center = Pt(width/2, lay.Panel.PlotHeight/2)
	lay.Bounds = Rect{
		Left:   lay.Center.X - lay.Radius,
		Top:    lay.Center.Y - lay.Radius,
		Right:  lay.Center.X + lay.Radius,
		Bottom: lay.Center.Y + lay.Radius,
	}

	var (
		sweep   = clamp01(progress.Angle)
		textp   = clamp01(progress.Text)
		angle   = -90.0
		labelAt = lay.Radius / 2
		metrics = opts.Metrics
	)
	if opts.Animation.ShiftEnabled {
		angle += clamp01(progress.Shift) * opts.Animation.ShiftAngle
	}
	end := angle + fullcircle*sweep

	lay.Wedges = make([]Wedge, 0, len(data))
	for i, s := range data {
		w := Wedge{
			Index:      i,
			Label:      s.Label,
			Value:      s.Value,
			Color:      s.getColor(i),
			Proportion: s.Value / total,
			Start:      angle,
		}
		w.Sweep = w.Proportion * fullcircle * sweep
		if i == len(data)-1 {
			w.Sweep = max(0, end-angle)
		}
		var (
			str = opts.Format(w.Proportion * 100)
			pos = getPosFromAngle(lay.Center, w.Mid(), labelAt)
			off = metrics.MeasureWidth(str, opts.Percent.FontSize) / 2
		)
		w.Percent = Text{
			Text:   str,
			Pos:    Pt(pos.X-off, pos.Y),
			Size:   opts.Percent.FontSize * textp,
			Color:  opts.Percent.Color,
			Anchor: AnchorStart,
		}
		angle += w.Sweep
		if d := opts.DividerAngle; d > 0 {
			gap := min(d, w.Sweep)
			w.Start += gap / 2
			w.Sweep -= gap
		}
		lay.Wedges = append(lay.Wedges, w)
	}

	items := make([]LegendItem, 0, len(data))
	for i, s := range data {
		items = append(items, LegendItem{
			Label: s.Label,
			Color: s.getColor(i),
		})
	}
	lay.Legend = LayoutLegend(items, LegendOptions{
		Left:      lay.Bounds.Left,
		Top:       lay.Bounds.Bottom,
		Width:     lay.Bounds.Width(),
		RowHeight: rowHeight,
		Padding:   opts.Padding,
		FontSize:  opts.Label.FontSize,
		Color:     opts.Label.Color,
		PerRow:    DefaultLabelsPerRow,
	}, textp)

	Logger().Debug("pie laid out", "slices", len(data), "total", total, "radius", lay.Radius)
	return lay, nil
}
