package charts

import (
	"math"
)

type LegendItem struct {
	Label string
	Color string
}

// LegendOptions places a legend whose first row baseline sits RowHeight below
// Top. Items are wrapped PerRow at a time.
type LegendOptions struct {
	Left      float64
	Top       float64
	Width     float64
	RowHeight float64
	Padding   float64
	FontSize  float64
	Color     string
	PerRow    int
}

type LegendEntry struct {
	Item   LegendItem
	Row    int
	Column int
	Swatch Rect
	Label  Text
}

type Legend struct {
	Entries []LegendEntry
	Rows    int
	Height  float64
}

// LegendRows returns the number of rows needed by n items.
func LegendRows(n, perRow int) int {
	if n <= 0 {
		return 0
	}
	if perRow <= 0 {
		perRow = DefaultLabelsPerRow
	}
	return int(math.Ceil(float64(n) / float64(perRow)))
}

// LayoutLegend computes the swatch and label of every item. The swatch takes
// the first quarter of its column and grows with progress, as does the label
// font size.
func LayoutLegend(items []LegendItem, opts LegendOptions, progress float64) Legend {
	if opts.PerRow <= 0 {
		opts.PerRow = DefaultLabelsPerRow
	}
	var (
		lg = Legend{
			Rows: LegendRows(len(items), opts.PerRow),
		}
		cols  = min(len(items), opts.PerRow)
		width float64
	)
	lg.Height = opts.RowHeight * float64(lg.Rows)
	if cols == 0 {
		return lg
	}
	width = opts.Width / float64(cols)
	progress = clamp01(progress)

	lg.Entries = make([]LegendEntry, 0, len(items))
	for i, it := range items {
		var (
			row    = i / opts.PerRow
			col    = i % opts.PerRow
			x      = opts.Left + width*float64(col)
			y      = opts.Top + opts.RowHeight*float64(row+1)
			start  = x + opts.Padding
			length = width / 4
		)
		e := LegendEntry{
			Item:   it,
			Row:    row,
			Column: col,
			Swatch: Rect{
				Left:   start,
				Top:    y - opts.FontSize,
				Right:  start + length*progress,
				Bottom: y + opts.FontSize/2,
			},
			Label: Text{
				Text:   it.Label,
				Pos:    Pt(start+length+opts.Padding, y),
				Size:   opts.FontSize * progress,
				Color:  opts.Color,
				Anchor: AnchorStart,
			},
		}
		lg.Entries = append(lg.Entries, e)
	}
	return lg
}
