// Package paint draws chart layouts as SVG documents.
package paint

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/svg"

	charts "github.com/midbel/chartlayout"
)

// ProgressFunc returns the progress of a shape entrance at the instant being
// painted.
type ProgressFunc func(charts.Entrance) float64

// Complete draws every shape fully grown.
func Complete(charts.Entrance) float64 {
	return 1
}

// Painter turns layouts into SVG. The zero value paints complete shapes with
// circle markers on a transparent background.
type Painter struct {
	Background string
	Point      PointFunc
	Shape      ProgressFunc
}

func (p Painter) Bars(w io.Writer, lay charts.BarLayout) error {
	var (
		at  = p.getShape()
		grp = getBaseGroup("", "bars")
	)
	for _, b := range lay.Bars {
		grp.Append(drawRect(b.At(at(b.Entrance)), b.Color))
	}
	elems := []svg.Element{
		drawFrame(lay.Frame),
		grp.AsElement(),
		drawTexts("categories", lay.Categories),
		drawLegend(lay.Legend),
	}
	charts.Logger().Debug("paint bars", "bars", len(lay.Bars), "width", lay.Panel.Width, "height", lay.Panel.Height)
	return p.render(w, lay.Panel, elems...)
}

func (p Painter) Lines(w io.Writer, lay charts.LineLayout) error {
	var (
		at    = p.getShape()
		point = p.getPoint()
		lines = getBaseGroup("", "lines")
		dots  = getBaseGroup("", "points")
	)
	for _, s := range lay.Segments {
		lines.Append(drawLine(s.At(at(s.Entrance))))
	}
	for _, m := range lay.Markers {
		ci := m.At(at(m.Entrance))
		if ci.Radius <= 0 {
			continue
		}
		dots.Append(point(ci))
	}
	elems := []svg.Element{
		drawFrame(lay.Frame),
		lines.AsElement(),
		drawTexts("labels", lay.Labels),
		dots.AsElement(),
		drawLegend(lay.Legend),
	}
	charts.Logger().Debug("paint lines", "segments", len(lay.Segments), "markers", len(lay.Markers))
	return p.render(w, lay.Panel, elems...)
}

func (p Painter) Pie(w io.Writer, lay charts.PieLayout) error {
	var (
		grp    = getBaseGroup("", "pie")
		labels []charts.Text
	)
	for _, wg := range lay.Wedges {
		labels = append(labels, wg.Percent)
		if wg.Sweep <= 0 || lay.Radius <= 0 {
			continue
		}
		grp.Append(drawWedge(lay, wg))
	}
	elems := []svg.Element{
		grp.AsElement(),
		drawTexts("percents", labels),
		drawLegend(lay.Legend),
	}
	charts.Logger().Debug("paint pie", "wedges", len(lay.Wedges), "radius", lay.Radius)
	return p.render(w, lay.Panel, elems...)
}

func (p Painter) render(w io.Writer, panel charts.PanelGeometry, elems ...svg.Element) error {
	el := svg.NewSVG(svg.WithDimension(panel.Width, panel.Height))
	el.OmitProlog = true
	if p.Background != "" {
		el.Append(drawRect(charts.NewRect(charts.Pt(0, 0), panel.Width, panel.Height), p.Background))
	}
	for _, e := range elems {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (p Painter) getShape() ProgressFunc {
	if p.Shape == nil {
		return Complete
	}
	return p.Shape
}

func (p Painter) getPoint() PointFunc {
	if p.Point == nil {
		return GetCircle
	}
	return p.Point
}

func drawFrame(fr charts.Frame) svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	g.Append(drawRect(fr.XAxis, fr.XColor))
	g.Append(drawRect(fr.YAxis, fr.YColor))
	for _, li := range fr.GridLines {
		g.Append(drawLine(li))
	}
	g.Append(drawTexts("ticks", fr.TickLabels))
	return g.AsElement()
}

func drawLegend(lg charts.Legend) svg.Element {
	g := svg.NewGroup(svg.WithID("legend"))
	for _, e := range lg.Entries {
		g.Append(drawRect(e.Swatch, e.Item.Color))
		if el, ok := drawText(e.Label); ok {
			g.Append(el)
		}
	}
	return g.AsElement()
}

func drawTexts(class string, list []charts.Text) svg.Element {
	g := getBaseGroup("", class)
	for _, t := range list {
		if el, ok := drawText(t); ok {
			g.Append(el)
		}
	}
	return g.AsElement()
}

func drawText(t charts.Text) (svg.Element, bool) {
	if t.Size <= 0 || t.Text == "" {
		return nil, false
	}
	tx := svg.NewText(t.Text)
	tx.Pos = svg.NewPos(t.Pos.X, t.Pos.Y)
	tx.Font = svg.NewFont(t.Size)
	tx.Anchor = t.Anchor.String()

	var g svg.Group
	if t.Color != "" {
		g.Fill = svg.NewFill(t.Color)
	}
	g.Append(tx.AsElement())
	return g.AsElement(), true
}

func drawRect(r charts.Rect, color string) svg.Element {
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	if color == "" {
		color = charts.DefaultAxisColor
	}
	var el svg.Rect
	el.Pos = svg.NewPos(r.Left, r.Top)
	el.Dim = svg.NewDim(r.Width(), r.Height())
	el.Fill = svg.NewFill(color)
	return el.AsElement()
}

func drawLine(li charts.Line) svg.Element {
	el := svg.NewLine(svg.NewPos(li.Start.X, li.Start.Y), svg.NewPos(li.End.X, li.End.Y))
	el.Stroke = svg.NewStroke(li.Color, li.Width)
	if li.Dashed {
		el.Stroke.DashArray(10)
	}
	return el.AsElement()
}

const (
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
	// an arc cannot start and end on the same point
	maxSweep = 359.99
)

func drawWedge(lay charts.PieLayout, w charts.Wedge) svg.Element {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	if lay.Style == charts.DrawStroke {
		pat.Fill = svg.NewFill("none")
		pat.Stroke = svg.NewStroke(w.Color, lay.StrokeWidth)
	} else {
		pat.Fill = svg.NewFill(w.Color)
	}
	var (
		sweep = min(w.Sweep, maxSweep)
		large = sweep > halfcircle
		outer = lay.Radius
		inner = lay.InnerRadius
		pos1  = getPosFromAngle(lay.Center, w.Start, outer)
		pos2  = getPosFromAngle(lay.Center, w.Start+sweep, outer)
	)
	if inner <= 0 {
		pat.AbsMoveTo(svg.NewPos(lay.Center.X, lay.Center.Y))
		pat.AbsLineTo(pos1)
		pat.AbsArcTo(pos2, outer, outer, 0, large, true)
		pat.ClosePath()
		return pat.AsElement()
	}
	var (
		pos3 = getPosFromAngle(lay.Center, w.Start+sweep, inner)
		pos4 = getPosFromAngle(lay.Center, w.Start, inner)
	)
	pat.AbsMoveTo(pos1)
	pat.AbsArcTo(pos2, outer, outer, 0, large, true)
	pat.AbsLineTo(pos3)
	pat.AbsArcTo(pos4, inner, inner, 0, large, false)
	pat.ClosePath()
	return pat.AsElement()
}

func getPosFromAngle(center charts.Point, angle, radius float64) svg.Pos {
	rad := angle * deg2rad
	return svg.NewPos(center.X+radius*math.Cos(rad), center.Y+radius*math.Sin(rad))
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
