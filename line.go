package charts

import (
	"time"

	"github.com/midbel/slices"
)

// Segment joins two consecutive points of a series.
type Segment struct {
	Series   int
	Index    int
	Line     Line
	Entrance Entrance
}

// At returns the segment drawn from its start up to the fraction p of its
// length.
func (s Segment) At(p float64) Line {
	li := s.Line
	li.End = li.Start.Lerp(li.End, clamp01(p))
	return li
}

// Marker is the circle drawn on one point of a series.
type Marker struct {
	Series   int
	Index    int
	Ratio    float64
	Circle   Circle
	Entrance Entrance
}

// At returns the marker with its radius scaled by p.
func (m Marker) At(p float64) Circle {
	ci := m.Circle
	ci.Radius *= clamp01(p)
	return ci
}

type LineLayout struct {
	Panel    PanelGeometry
	Ticks    TickSet
	Frame    Frame
	Segments []Segment
	Markers  []Marker
	Labels   []Text
	Legend   Legend
}

// End returns the instant at which the last segment or marker completes its
// entrance.
func (l LineLayout) End() time.Duration {
	var end time.Duration
	for _, s := range l.Segments {
		end = max(end, s.Entrance.End())
	}
	for _, m := range l.Markers {
		end = max(end, m.Entrance.End())
	}
	return end
}

// LayoutLines computes a multi series line chart. Each series spreads its
// own points evenly over the horizontal axis, so series may differ in length.
func LayoutLines(series []Series, opts LineOptions, width float64, progress Progress) (LineLayout, error) {
	values, err := checkSeries("line", series)
	if err != nil {
		return LineLayout{}, err
	}
	opts = opts.normalize()

	cart, err := newCartesian(opts.CartesianOptions, width, values, len(series))
	if err != nil {
		return LineLayout{}, err
	}
	var (
		lay = LineLayout{
			Panel: cart.Panel,
			Ticks: cart.Ticks,
			Frame: cart.frame(progress.Chart),
		}
		axis  = NewRange(cart.Left(), cart.Left()+cart.Panel.AxisLength)
		delay = opts.Animation.Delay
		font  = opts.Horizontal.FontSize * clamp01(progress.Chart)
		seen  = make(map[labelKey]struct{})
	)
	for i, s := range series {
		var (
			slots = newCategoryScaler(axis, s.Len())
			ratio = opts.Points.ratio(i, len(series))
			color = s.getColor(i)
			dot   = s.getDotColor(i)
			pts   = make([]Point, s.Len())
		)
		for j, v := range s.Values {
			pts[j] = Pt(slots.Center(j), cart.Scaler.Scale(v.Value))

			lay.Markers = append(lay.Markers, Marker{
				Series: i,
				Index:  j,
				Ratio:  ratio,
				Circle: Circle{
					Center: pts[j],
					Radius: opts.LineWidth * ratio,
					Color:  dot,
				},
				Entrance: cart.entrance(len(lay.Markers), delay),
			})

			key := labelKey{
				Text: v.Label,
				X:    pts[j].X,
			}
			if _, ok := seen[key]; ok || v.Label == "" {
				continue
			}
			seen[key] = struct{}{}
			lay.Labels = append(lay.Labels, Text{
				Text:   v.Label,
				Pos:    Pt(pts[j].X, cart.LabelBaseline()),
				Size:   font,
				Color:  opts.Horizontal.LabelColor,
				Anchor: AnchorMiddle,
			})
		}
		prev := slices.Fst(pts)
		for j, pt := range slices.Rest(pts) {
			lay.Segments = append(lay.Segments, Segment{
				Series: i,
				Index:  j,
				Line: Line{
					Start: prev,
					End:   pt,
					Width: opts.LineWidth,
					Color: color,
				},
				Entrance: cart.entrance(len(lay.Segments)+1, delay),
			})
			prev = pt
		}
	}
	lay.Legend = cart.legend(legendItems(series), progress.Chart)

	Logger().Debug("lines laid out", "series", len(series), "segments", len(lay.Segments), "markers", len(lay.Markers), "width", width)
	return lay, nil
}

type labelKey struct {
	Text string
	X    float64
}
