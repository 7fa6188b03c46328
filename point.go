package charts

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Add(q Point) Point {
	return Pt(p.X+q.X, p.Y+q.Y)
}

func (p Point) Sub(q Point) Point {
	return Pt(p.X-q.X, p.Y-q.Y)
}

func (p Point) Mul(f float64) Point {
	return Pt(p.X*f, p.Y*f)
}

// Lerp returns the point at fraction f of the way from p to q.
func (p Point) Lerp(q Point, f float64) Point {
	return p.Add(q.Sub(p).Mul(f))
}

type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func NewRect(pos Point, width, height float64) Rect {
	return Rect{
		Left:   pos.X,
		Top:    pos.Y,
		Right:  pos.X + width,
		Bottom: pos.Y + height,
	}
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rect) TopLeft() Point {
	return Pt(r.Left, r.Top)
}

func (r Rect) Center() Point {
	return Pt(r.Left+r.Width()/2, r.Top+r.Height()/2)
}

func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

type Line struct {
	Start  Point
	End    Point
	Width  float64
	Color  string
	Dashed bool
}

type Circle struct {
	Center Point
	Radius float64
	Color  string
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// Text is a string positioned on its baseline. Pos.X is interpreted according
// to Anchor.
type Text struct {
	Text   string
	Pos    Point
	Size   float64
	Color  string
	Anchor Anchor
}

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// getPosFromAngle returns the point at the given angle (degrees, clockwise
// from 3 o'clock in screen space) and distance from center.
func getPosFromAngle(center Point, angle, radius float64) Point {
	rad := angle * deg2rad
	return Pt(center.X+radius*math.Cos(rad), center.Y+radius*math.Sin(rad))
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
