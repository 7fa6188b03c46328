package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	charts "github.com/midbel/chartlayout"
	"github.com/midbel/chartlayout/paint"
)

const defaultWidth = 400

const (
	blue    = "#0000ff"
	gray    = "#888888"
	green   = "#00ff00"
	magenta = "#ff00ff"
	yellow  = "#ffff00"
	cyan    = "#00ffff"
)

type sample struct {
	Name string
	Draw func(io.Writer, float64) error
}

var samples = []sample{
	{Name: "bar.svg", Draw: drawBar},
	{Name: "bars.svg", Draw: drawBars},
	{Name: "line.svg", Draw: drawLine},
	{Name: "pie.svg", Draw: drawPie},
}

func main() {
	var (
		dir     = flag.String("dir", ".", "output directory")
		width   = flag.Float64("width", defaultWidth, "chart width")
		verbose = flag.Bool("v", false, "verbose")
	)
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		charts.SetLogger(slog.New(h))
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := renderAll(*dir, *width); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func renderAll(dir string, width float64) error {
	var grp errgroup.Group
	for _, s := range samples {
		grp.Go(func() error {
			return renderSample(filepath.Join(dir, s.Name), width, s.Draw)
		})
	}
	return grp.Wait()
}

func renderSample(file string, width float64, draw func(io.Writer, float64) error) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := draw(w, width); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(file), err)
	}
	return nil
}

func drawBar(w io.Writer, width float64) error {
	series := []charts.Series{
		{
			Label: "values",
			Color: blue,
			Values: []charts.Value{
				charts.NewValue(12, "label1"),
				charts.NewValue(15, "label2"),
				charts.NewValue(13, "label3"),
				charts.NewValue(25, "label4"),
			},
		},
	}
	lay, err := charts.LayoutBars(series, charts.DefaultBarOptions(), width, charts.Done())
	if err != nil {
		return err
	}
	var p paint.Painter
	return p.Bars(w, lay)
}

func drawBars(w io.Writer, width float64) error {
	series := []charts.Series{
		{
			Label: "Data 1",
			Color: blue,
			Values: []charts.Value{
				charts.NewValue(10, "Jan"),
				charts.NewValue(20, "Feb"),
				charts.NewValue(15, "Mar"),
				charts.NewValue(13, "Apr"),
				charts.NewValue(14, "May"),
			},
		},
		{
			Label: "Data 2",
			Color: gray,
			Values: []charts.Value{
				charts.NewValue(16, "Jan"),
				charts.NewValue(12, "Feb"),
				charts.NewValue(10, "Mar"),
				charts.NewValue(14, "Apr"),
				charts.NewValue(11, "May"),
				charts.NewValue(13, "Jun"),
			},
		},
		{
			Label: "Data 3",
			Color: green,
			Values: []charts.Value{
				charts.NewValue(12, "Jan"),
				charts.NewValue(23, "Feb"),
				charts.NewValue(11, "Mar"),
				charts.NewValue(15, "Apr"),
				charts.NewValue(11, "May"),
			},
		},
	}
	opts := charts.DefaultBarOptions()
	opts.Ticks = charts.GenerateTicks(0, 25)
	opts.Format = func(f float64) string {
		return strconv.Itoa(int(f)) + " b$"
	}
	lay, err := charts.LayoutBars(series, opts, width, charts.Done())
	if err != nil {
		return err
	}
	var p paint.Painter
	return p.Bars(w, lay)
}

func drawLine(w io.Writer, width float64) error {
	var (
		labels = []string{"label1", "label2", "label3", "label4", "label5"}
		data   = [][]float64{
			{10, 12, 13, 18, 9},
			{15, 20, 8, 9, 6},
			{30, 28, 24, 20, 25},
		}
		colors = []string{green, gray, blue}
		series []charts.Series
	)
	for i, vs := range data {
		s := charts.Series{
			Label:    "line " + strconv.Itoa(i+1),
			Color:    colors[i],
			DotColor: colors[i],
		}
		for j, v := range vs {
			s.Values = append(s.Values, charts.NewValue(v, labels[j]))
		}
		series = append(series, s)
	}
	opts := charts.DefaultLineOptions()
	opts.Ticks = charts.GenerateTicks(6, 30)
	lay, err := charts.LayoutLines(series, opts, width, charts.Done())
	if err != nil {
		return err
	}
	p := paint.Painter{
		Point: paint.GetCircle,
	}
	return p.Lines(w, lay)
}

func drawPie(w io.Writer, width float64) error {
	data := []charts.Slice{
		{Label: "label 1", Value: 10, Color: green},
		{Label: "label 2", Value: 20, Color: gray},
		{Label: "label 3", Value: 15, Color: magenta},
		{Label: "label 4", Value: 19, Color: yellow},
		{Label: "label 5", Value: 11, Color: cyan},
	}
	lay, err := charts.LayoutPie(data, charts.DefaultPieOptions(), width, charts.Done())
	if err != nil {
		return err
	}
	var p paint.Painter
	return p.Pie(w, lay)
}
