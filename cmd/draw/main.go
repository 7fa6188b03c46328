package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	charts "github.com/midbel/chartlayout"
	"github.com/midbel/chartlayout/anim"
	"github.com/midbel/chartlayout/paint"
)

const (
	defaultWidth = 800
	defaultCol   = 1
)

func main() {
	var (
		kind    = flag.String("type", "bar", "chart type (bar, line, pie)")
		width   = flag.Float64("width", defaultWidth, "chart width")
		ratio   = flag.Float64("ratio", charts.DefaultBarWidthRatio, "bar width ratio")
		ticks   = flag.String("ticks", "", "comma separated tick values")
		at      = flag.Duration("at", -1, "render the frame at this instant of the animation")
		metrics = flag.String("metrics", "approx", "text metrics (approx, face)")
		xcol    = flag.Int("xcol", 0, "index of label column")
		ycol    = flag.Int("ycol", defaultCol, "index of value column")
		upscale = flag.Bool("upscale", false, "enlarge markers of background series")
		donut   = flag.Float64("donut", 0, "inner radius ratio of pie")
		divider = flag.Float64("divider", 0, "gap in degrees between wedges")
		marker  = flag.String("marker", "circle", "marker shape (circle, square, diamond)")
		result  = flag.String("file", "", "output file")
		verbose = flag.Bool("v", false, "verbose")
	)
	flag.Parse()

	setLogger(*verbose)

	cfg := config{
		Kind:    *kind,
		Width:   *width,
		Ratio:   *ratio,
		At:      *at,
		XCol:    *xcol,
		YCol:    *ycol,
		Upscale: *upscale,
		Donut:   *donut,
		Divider: *divider,
		Marker:  *marker,
		Files:   flag.Args(),
	}
	var err error
	if cfg.Ticks, err = parseTicks(*ticks); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.Metrics, err = getMetrics(*metrics); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := renderChart(*result, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func setLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	charts.SetLogger(slog.New(h))
}

type config struct {
	Kind    string
	Width   float64
	Ratio   float64
	Ticks   charts.TickSet
	At      time.Duration
	Metrics charts.TextMetrics
	XCol    int
	YCol    int
	Upscale bool
	Donut   float64
	Divider float64
	Marker  string
	Files   []string
}

// elapsed returns the instant to render. A negative value means the end of
// the animation.
func (c config) elapsed(tl anim.Timeline, end time.Duration) time.Duration {
	if c.At >= 0 {
		return c.At
	}
	return max(tl.End(), end)
}

func renderChart(file string, cfg config) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return draw(w, cfg)
}

func draw(w io.Writer, cfg config) error {
	if len(cfg.Files) == 0 {
		return errors.New("no data files given")
	}
	point, err := getPoint(cfg.Marker)
	if err != nil {
		return err
	}
	switch cfg.Kind {
	case "bar", "bars", "":
		series, err := readAllSeries(cfg.Files, cfg.XCol, cfg.YCol)
		if err != nil {
			return err
		}
		opts := charts.DefaultBarOptions()
		opts.Ticks = cfg.Ticks
		opts.Metrics = cfg.Metrics
		opts.BarWidthRatio = cfg.Ratio
		opts.Animation.Enabled = cfg.At >= 0

		var (
			tl  = anim.Cartesian(opts.Animation)
			lay charts.BarLayout
		)
		if lay, err = charts.LayoutBars(series, opts, cfg.Width, charts.Done()); err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		now := cfg.elapsed(tl, lay.End())
		if lay, err = charts.LayoutBars(series, opts, cfg.Width, tl.At(now)); err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		p := paint.Painter{
			Shape: anim.Clock(now),
		}
		return p.Bars(w, lay)
	case "line":
		series, err := readAllSeries(cfg.Files, cfg.XCol, cfg.YCol)
		if err != nil {
			return err
		}
		opts := charts.DefaultLineOptions()
		opts.Ticks = cfg.Ticks
		opts.Metrics = cfg.Metrics
		opts.Points.UpscaleBackCircle = cfg.Upscale
		opts.Animation.Enabled = cfg.At >= 0

		var (
			tl  = anim.Cartesian(opts.Animation)
			lay charts.LineLayout
		)
		if lay, err = charts.LayoutLines(series, opts, cfg.Width, charts.Done()); err != nil {
			return fmt.Errorf("line chart: %w", err)
		}
		now := cfg.elapsed(tl, lay.End())
		if lay, err = charts.LayoutLines(series, opts, cfg.Width, tl.At(now)); err != nil {
			return fmt.Errorf("line chart: %w", err)
		}
		p := paint.Painter{
			Point: point,
			Shape: anim.Clock(now),
		}
		return p.Lines(w, lay)
	case "pie", "donut":
		if len(cfg.Files) > 1 {
			return fmt.Errorf("%s: only one data file accepted (got %d)", cfg.Kind, len(cfg.Files))
		}
		data, err := readSlices(cfg.Files[0], cfg.XCol, cfg.YCol)
		if err != nil {
			return err
		}
		opts := charts.DefaultPieOptions()
		opts.Metrics = cfg.Metrics
		opts.InnerRadius = cfg.Donut
		opts.DividerAngle = cfg.Divider
		opts.Animation.Enabled = cfg.At >= 0

		tl := anim.Pie(opts.Animation)
		lay, err := charts.LayoutPie(data, opts, cfg.Width, tl.At(cfg.elapsed(tl, 0)))
		if err != nil {
			return fmt.Errorf("pie chart: %w", err)
		}
		var p paint.Painter
		return p.Pie(w, lay)
	default:
		return fmt.Errorf("%s: unrecognized chart type", cfg.Kind)
	}
}

func getMetrics(name string) (charts.TextMetrics, error) {
	switch name {
	case "approx", "":
		return charts.ApproxMetrics{}, nil
	case "face", "font":
		return charts.NewFaceMetrics(nil)
	default:
		return nil, fmt.Errorf("%s: unrecognized text metrics", name)
	}
}

func getPoint(name string) (paint.PointFunc, error) {
	switch name {
	case "circle", "":
		return paint.GetCircle, nil
	case "square":
		return paint.GetSquare, nil
	case "diamond":
		return paint.GetDiamond, nil
	default:
		return nil, fmt.Errorf("%s: unrecognized marker", name)
	}
}
