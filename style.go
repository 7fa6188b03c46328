package charts

import (
	"strconv"
	"time"
)

const (
	DefaultLineWidth        = 4.0
	DefaultFontSize         = 13.0
	DefaultAxisThickness    = 1.0
	DefaultPadding          = 8.0
	DefaultLineSpacing      = 30.0
	DefaultPointRatio       = 1.5
	DefaultUpscaleRatioStep = 0.5
	DefaultHiddenPointRatio = 0.5
	DefaultLabelsPerRow     = 3
	DefaultBarWidthRatio    = 0.8
	DefaultShiftAngle       = 90.0

	DefaultDuration = 600 * time.Millisecond
	DefaultDelay    = 200 * time.Millisecond

	DefaultAxisColor = "#3d3d3d"
)

type LineStyle int

const (
	StyleDash LineStyle = iota
	StyleSolid
)

type DrawStyle int

const (
	DrawFill DrawStyle = iota
	DrawStroke
)

type AxisOptions struct {
	Color      string
	Thickness  float64
	LabelColor string
	FontSize   float64
}

func DefaultAxisOptions() AxisOptions {
	return AxisOptions{
		Color:      DefaultAxisColor,
		Thickness:  DefaultAxisThickness,
		LabelColor: DefaultAxisColor,
		FontSize:   DefaultFontSize,
	}
}

func (o AxisOptions) normalize() AxisOptions {
	if o.Thickness <= 0 {
		o.Thickness = DefaultAxisThickness
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Color == "" {
		o.Color = DefaultAxisColor
	}
	if o.LabelColor == "" {
		o.LabelColor = DefaultAxisColor
	}
	return o
}

// GridOptions controls the horizontal lines drawn at every tick. Spacing is
// the vertical distance between two ticks and drives the plot height.
type GridOptions struct {
	Show      bool
	Color     string
	Thickness float64
	Spacing   float64
	Style     LineStyle
}

func DefaultGridOptions() GridOptions {
	return GridOptions{
		Show:      true,
		Color:     DefaultAxisColor,
		Thickness: DefaultAxisThickness,
		Spacing:   DefaultLineSpacing,
		Style:     StyleDash,
	}
}

func (o GridOptions) normalize() GridOptions {
	if o.Spacing <= 0 {
		o.Spacing = DefaultLineSpacing
	}
	if o.Thickness <= 0 {
		o.Thickness = DefaultAxisThickness
	}
	if o.Color == "" {
		o.Color = DefaultAxisColor
	}
	return o
}

// AnimationOptions describes the entrance of cartesian charts. Duration is the
// time given to each staggered shape, ComponentDuration the time given to the
// axes and labels.
type AnimationOptions struct {
	Enabled           bool
	Duration          time.Duration
	Delay             time.Duration
	ComponentDuration time.Duration
}

func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Enabled:           false,
		Duration:          DefaultDuration,
		Delay:             DefaultDelay,
		ComponentDuration: DefaultDuration,
	}
}

func (o AnimationOptions) normalize() AnimationOptions {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.ComponentDuration <= 0 {
		o.ComponentDuration = DefaultDuration
	}
	if o.Delay < 0 {
		o.Delay = 0
	}
	return o
}

type PointOptions struct {
	Show              bool
	BaseRatio         float64
	UpscaleBackCircle bool
	UpscaleRatioStep  float64
}

func DefaultPointOptions() PointOptions {
	return PointOptions{
		Show:             true,
		BaseRatio:        DefaultPointRatio,
		UpscaleRatioStep: DefaultUpscaleRatioStep,
	}
}

// ratio returns the marker radius ratio of series i out of n.
func (o PointOptions) ratio(i, n int) float64 {
	if !o.Show {
		return DefaultHiddenPointRatio
	}
	if o.UpscaleBackCircle {
		return o.BaseRatio + o.UpscaleRatioStep*float64(n-1-i)
	}
	return o.BaseRatio
}

type TextOptions struct {
	FontSize float64
	Color    string
}

func DefaultTextOptions() TextOptions {
	return TextOptions{
		FontSize: DefaultFontSize,
		Color:    DefaultAxisColor,
	}
}

func (o TextOptions) normalize() TextOptions {
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Color == "" {
		o.Color = DefaultAxisColor
	}
	return o
}

type PieAnimationOptions struct {
	Enabled       bool
	AngleDuration time.Duration
	AngleDelay    time.Duration
	ShiftEnabled  bool
	ShiftAngle    float64
	ShiftDuration time.Duration
	ShiftDelay    time.Duration
	DrawDelay     time.Duration
}

func DefaultPieAnimationOptions() PieAnimationOptions {
	return PieAnimationOptions{
		Enabled:       true,
		AngleDuration: time.Second,
		AngleDelay:    300 * time.Millisecond,
		ShiftEnabled:  true,
		ShiftAngle:    DefaultShiftAngle,
		ShiftDuration: time.Second,
		ShiftDelay:    300 * time.Millisecond,
		DrawDelay:     100 * time.Millisecond,
	}
}

// CartesianOptions are shared by bar and line charts. An empty Ticks lets the
// layout generate them from the data.
type CartesianOptions struct {
	Ticks      TickSet
	Format     func(float64) string
	Horizontal AxisOptions
	Vertical   AxisOptions
	Grid       GridOptions
	Animation  AnimationOptions
	Padding    float64
	Metrics    TextMetrics
}

func DefaultCartesianOptions() CartesianOptions {
	return CartesianOptions{
		Format:     FormatTick,
		Horizontal: DefaultAxisOptions(),
		Vertical:   DefaultAxisOptions(),
		Grid:       DefaultGridOptions(),
		Animation:  DefaultAnimationOptions(),
		Padding:    DefaultPadding,
		Metrics:    ApproxMetrics{},
	}
}

func (o CartesianOptions) normalize() CartesianOptions {
	if o.Format == nil {
		o.Format = FormatTick
	}
	if o.Padding < 0 {
		o.Padding = DefaultPadding
	}
	o.Horizontal = o.Horizontal.normalize()
	o.Vertical = o.Vertical.normalize()
	o.Grid = o.Grid.normalize()
	o.Animation = o.Animation.normalize()
	o.Metrics = getMetrics(o.Metrics)
	return o
}

type BarOptions struct {
	CartesianOptions
	BarWidthRatio float64
}

func DefaultBarOptions() BarOptions {
	return BarOptions{
		CartesianOptions: DefaultCartesianOptions(),
		BarWidthRatio:    DefaultBarWidthRatio,
	}
}

func (o BarOptions) normalize() BarOptions {
	o.CartesianOptions = o.CartesianOptions.normalize()
	if o.BarWidthRatio <= 0 {
		o.BarWidthRatio = DefaultBarWidthRatio
	}
	if o.BarWidthRatio > 1 {
		o.BarWidthRatio = 1
	}
	return o
}

type LineOptions struct {
	CartesianOptions
	Points    PointOptions
	LineWidth float64
}

func DefaultLineOptions() LineOptions {
	return LineOptions{
		CartesianOptions: DefaultCartesianOptions(),
		Points:           DefaultPointOptions(),
		LineWidth:        DefaultLineWidth,
	}
}

func (o LineOptions) normalize() LineOptions {
	o.CartesianOptions = o.CartesianOptions.normalize()
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.Points.BaseRatio <= 0 {
		o.Points.BaseRatio = DefaultPointRatio
	}
	return o
}

// PieOptions configures a pie chart. InnerRadius is a ratio of the outer
// radius in [0, 1); a positive value draws a donut. DividerAngle is a gap in
// degrees left between consecutive wedges.
type PieOptions struct {
	Animation    PieAnimationOptions
	Style        DrawStyle
	StrokeWidth  float64
	InnerRadius  float64
	DividerAngle float64
	Percent      TextOptions
	Label        TextOptions
	Padding      float64
	Metrics      TextMetrics
	Format       func(float64) string
}

func DefaultPieOptions() PieOptions {
	return PieOptions{
		Animation:   DefaultPieAnimationOptions(),
		Style:       DrawFill,
		StrokeWidth: DefaultLineWidth,
		Percent:     DefaultTextOptions(),
		Label:       DefaultTextOptions(),
		Padding:     DefaultPadding,
		Metrics:     ApproxMetrics{},
		Format:      FormatPercent,
	}
}

func (o PieOptions) normalize() PieOptions {
	o.Percent = o.Percent.normalize()
	o.Label = o.Label.normalize()
	o.Metrics = getMetrics(o.Metrics)
	if o.Format == nil {
		o.Format = FormatPercent
	}
	if o.Padding < 0 {
		o.Padding = DefaultPadding
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultLineWidth
	}
	if o.InnerRadius < 0 || o.InnerRadius >= 1 {
		o.InnerRadius = 0
	}
	if o.DividerAngle < 0 {
		o.DividerAngle = 0
	}
	return o
}

func FormatTick(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatPercent formats a percentage with two decimals.
func FormatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64) + "%"
}
