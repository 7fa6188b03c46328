package charts

import (
	"time"
)

// Bar is the rectangle of one series in one category. Rect is the fully grown
// bar; its bottom edge lies on the horizontal axis.
type Bar struct {
	Series   int
	Category int
	Value    float64
	Color    string
	Rect     Rect
	Entrance Entrance
}

// At returns the bar grown from the baseline up to the fraction p of its
// height.
func (b Bar) At(p float64) Rect {
	r := b.Rect
	r.Top = r.Bottom - b.Rect.Height()*clamp01(p)
	return r
}

type BarLayout struct {
	Panel      PanelGeometry
	Ticks      TickSet
	Frame      Frame
	Bars       []Bar
	Categories []Text
	Legend     Legend
}

// End returns the instant at which the last bar completes its entrance.
func (b BarLayout) End() time.Duration {
	var end time.Duration
	for _, r := range b.Bars {
		end = max(end, r.Entrance.End())
	}
	return end
}

// LayoutBars computes a grouped bar chart. Every category holds one bar per
// series; series shorter than the longest one are padded with zeros. Values
// below the first tick give an empty bar on the baseline.
func LayoutBars(series []Series, opts BarOptions, width float64, progress Progress) (BarLayout, error) {
	values, err := checkSeries("bar", series)
	if err != nil {
		return BarLayout{}, err
	}
	opts = opts.normalize()

	cart, err := newCartesian(opts.CartesianOptions, width, values, len(series))
	if err != nil {
		return BarLayout{}, err
	}
	var count int
	for _, s := range series {
		count = max(count, s.Len())
	}
	var (
		lay = BarLayout{
			Panel: cart.Panel,
			Ticks: cart.Ticks,
			Frame: cart.frame(progress.Chart),
		}
		slots   = newCategoryScaler(NewRange(cart.Left(), cart.Left()+cart.Panel.AxisLength), count)
		cluster = slots.Space() * opts.BarWidthRatio
		bw      = cluster / float64(len(series))
		font    = opts.Horizontal.FontSize
		step    int
	)
	lay.Bars = make([]Bar, 0, count*len(series))
	for c := 0; c < count; c++ {
		var (
			center = slots.Center(c)
			start  = center - cluster/2
		)
		for i, s := range series {
			var (
				left = start + bw*float64(i)
				val  = s.At(c)
				bar  = Bar{
					Series:   i,
					Category: c,
					Value:    val,
					Color:    s.getColor(i),
				}
			)
			bar.Rect = Rect{
				Left:   left,
				Top:    min(cart.Scaler.Scale(val), cart.Baseline()),
				Right:  left + bw,
				Bottom: cart.Baseline(),
			}
			if bar.Rect.Height() > 0 {
				bar.Entrance = cart.entrance(step, 0)
				step++
			}
			lay.Bars = append(lay.Bars, bar)
		}
		lay.Categories = append(lay.Categories, Text{
			Text:   categoryLabel(series, c),
			Pos:    Pt(center, cart.LabelBaseline()),
			Size:   font * clamp01(progress.Chart),
			Color:  opts.Horizontal.LabelColor,
			Anchor: AnchorMiddle,
		})
	}
	lay.Legend = cart.legend(legendItems(series), progress.Chart)

	Logger().Debug("bars laid out", "series", len(series), "categories", count, "bars", len(lay.Bars), "width", width)
	return lay, nil
}

// categoryLabel returns the first non empty label found at index c.
func categoryLabel(series []Series, c int) string {
	for _, s := range series {
		if c < s.Len() && s.Values[c].Label != "" {
			return s.Values[c].Label
		}
	}
	return ""
}
