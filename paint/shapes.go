package paint

import (
	"github.com/midbel/svg"

	charts "github.com/midbel/chartlayout"
)

// PointFunc draws the marker of a line chart point.
type PointFunc func(charts.Circle) svg.Element

func GetCircle(ci charts.Circle) svg.Element {
	var el svg.Circle
	el.Pos = svg.NewPos(ci.Center.X, ci.Center.Y)
	el.Fill = svg.NewFill(ci.Color)
	el.Radius = ci.Radius
	return el.AsElement()
}

func GetSquare(ci charts.Circle) svg.Element {
	var (
		size = ci.Radius * 2
		el   svg.Rect
	)
	el.Pos = svg.NewPos(ci.Center.X-ci.Radius, ci.Center.Y-ci.Radius)
	el.Dim = svg.NewDim(size, size)
	el.Fill = svg.NewFill(ci.Color)
	return el.AsElement()
}

func GetDiamond(ci charts.Circle) svg.Element {
	var (
		size = ci.Radius * 2
		el   svg.Rect
	)
	el.Pos = svg.NewPos(ci.Center.X-ci.Radius, ci.Center.Y-ci.Radius)
	el.Dim = svg.NewDim(size, size)
	el.Fill = svg.NewFill(ci.Color)
	el.Transform.RA = 45
	el.Transform.RX = ci.Center.X
	el.Transform.RY = ci.Center.Y
	return el.AsElement()
}
