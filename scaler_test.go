package charts

import (
	"errors"
	"math"
	"testing"
	"time"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestGenerateTicks(t *testing.T) {
	data := []struct {
		Min  float64
		Max  float64
		Want TickSet
	}{
		{Min: 0, Max: 25, Want: TickSet{0, 5, 10, 15, 20, 25}},
		{Min: 6, Max: 30, Want: TickSet{6, 11, 16, 21, 26, 31}},
		{Min: 0.5, Max: 3.2, Want: TickSet{0, 1, 2, 3, 4}},
		{Min: 25, Max: 0, Want: TickSet{0, 5, 10, 15, 20, 25}},
		{Min: -12, Max: 3, Want: TickSet{-12, -9, -6, -3, 0, 3}},
		{Min: 10, Max: 10, Want: TickSet{10, 11}},
	}
	for _, d := range data {
		got := GenerateTicks(d.Min, d.Max)
		if len(got) != len(d.Want) {
			t.Errorf("ticks(%g, %g): length mismatch! want %v, got %v", d.Min, d.Max, d.Want, got)
			continue
		}
		for i := range got {
			if !almostEqual(got[i], d.Want[i]) {
				t.Errorf("ticks(%g, %g): value mismatch at %d! want %v, got %v", d.Min, d.Max, i, d.Want, got)
				break
			}
		}
	}
}

func TestGenerateTicks_Properties(t *testing.T) {
	bounds := [][2]float64{
		{0, 1}, {0, 100}, {-3.5, 7.25}, {1e3, 1e4 + 3}, {42, 42.5}, {-100, -99}, {0.1, 0.2},
	}
	for _, b := range bounds {
		ticks := GenerateTicks(b[0], b[1])
		if len(ticks) < 2 || len(ticks) > maxTickIntervals+1 {
			t.Errorf("ticks(%g, %g): unexpected count %d", b[0], b[1], len(ticks))
			continue
		}
		if ticks.Min() > b[0] || ticks.Max() < b[1] {
			t.Errorf("ticks(%g, %g): %v does not cover the range", b[0], b[1], ticks)
		}
		step := ticks.Step()
		if step < 1 {
			t.Errorf("ticks(%g, %g): step too small %g", b[0], b[1], step)
		}
		for i := 1; i < len(ticks); i++ {
			if !almostEqual(ticks[i]-ticks[i-1], step) {
				t.Errorf("ticks(%g, %g): uneven step in %v", b[0], b[1], ticks)
				break
			}
		}
	}
}

func TestGenerateTicks_NotFinite(t *testing.T) {
	if got := GenerateTicks(math.NaN(), 1); got != nil {
		t.Errorf("NaN bound: expected no ticks, got %v", got)
	}
	if got := GenerateTicks(0, math.Inf(1)); got != nil {
		t.Errorf("infinite bound: expected no ticks, got %v", got)
	}
}

func TestGenerateTicks_LargeMagnitude(t *testing.T) {
	var (
		lo   = math.Ldexp(1, 60)
		hi   = lo + 256
		done = make(chan TickSet, 1)
	)
	go func() {
		done <- GenerateTicks(lo, hi)
	}()
	select {
	case ticks := <-done:
		if len(ticks) < 2 || len(ticks) > maxTickIntervals+1 {
			t.Fatalf("unexpected count %d: %v", len(ticks), ticks)
		}
		if ticks.Min() > lo || ticks.Max() < hi {
			t.Fatalf("%v does not cover [%g, %g]", ticks, lo, hi)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("ticks not generated within 3s")
	}
}

func TestResolveTicks(t *testing.T) {
	given := TickSet{20, 0, 10}
	got, err := ResolveTicks(given, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := TickSet{0, 10, 20}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ticks not sorted! want %v, got %v", want, got)
		}
	}
	if given[0] != 20 || given[1] != 0 || given[2] != 10 {
		t.Fatalf("given ticks modified: %v", given)
	}

	got, err = ResolveTicks(nil, []float64{12, 3, 7})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.Min() != 3 || got.Max() < 12 {
		t.Fatalf("generated ticks do not cover values: %v", got)
	}
}

func TestResolveTicks_Errors(t *testing.T) {
	var rerr DegenerateRangeError
	if _, err := ResolveTicks(TickSet{5}, nil); !errors.As(err, &rerr) {
		t.Errorf("single tick: expected DegenerateRangeError, got %v", err)
	}
	if _, err := ResolveTicks(TickSet{5, 5, 5}, nil); !errors.As(err, &rerr) {
		t.Errorf("equal ticks: expected DegenerateRangeError, got %v", err)
	}
	var verr InvalidValueError
	if _, err := ResolveTicks(TickSet{0, math.NaN(), 10}, nil); !errors.As(err, &verr) || verr.Index != 1 {
		t.Errorf("NaN tick: expected InvalidValueError, got %v", err)
	}
	if _, err := ResolveTicks(TickSet{math.Inf(-1), 10}, nil); !errors.As(err, &verr) {
		t.Errorf("infinite tick: expected InvalidValueError, got %v", err)
	}
	var serr EmptySeriesError
	if _, err := ResolveTicks(nil, nil); !errors.As(err, &serr) {
		t.Errorf("no values: expected EmptySeriesError, got %v", err)
	}
}

func TestValueScaler_Scale(t *testing.T) {
	scaler, err := NewValueScaler(TickSet{0, 5, 10, 15, 20, 25}, 150)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	data := []struct {
		Value float64
		Want  float64
	}{
		{Value: 0, Want: 150},
		{Value: 25, Want: 0},
		{Value: 12.5, Want: 75},
		{Value: 5, Want: 120},
	}
	for _, d := range data {
		if got := scaler.Scale(d.Value); !almostEqual(got, d.Want) {
			t.Errorf("scale(%g): want %g, got %g", d.Value, d.Want, got)
		}
	}
	if got := scaler.Offset(25); !almostEqual(got, 150) {
		t.Errorf("offset(25): want 150, got %g", got)
	}
	prev := scaler.Scale(-1)
	for v := 0.0; v <= 30; v += 0.5 {
		curr := scaler.Scale(v)
		if curr >= prev {
			t.Fatalf("scale not decreasing at %g: %g >= %g", v, curr, prev)
		}
		prev = curr
	}
}

func TestValueScaler_Degenerate(t *testing.T) {
	var rerr DegenerateRangeError
	if _, err := NewValueScaler(TickSet{5, 5}, 100); !errors.As(err, &rerr) {
		t.Fatalf("expected DegenerateRangeError, got %v", err)
	}
	if rerr.Min != 5 || rerr.Max != 5 {
		t.Fatalf("unexpected range in error: %v", rerr)
	}
	scaler := ValueScaler{Min: 5, Length: 100}
	if got := scaler.Scale(42); got != 100 {
		t.Fatalf("zero delta: expected value on baseline, got %g", got)
	}
}

func TestCategoryScaler(t *testing.T) {
	s := newCategoryScaler(NewRange(10, 110), 4)
	if got := s.Space(); got != 25 {
		t.Fatalf("space: want 25, got %g", got)
	}
	if got := s.Center(0); got != 22.5 {
		t.Fatalf("center(0): want 22.5, got %g", got)
	}
	if got := s.Scale(3); got != 85 {
		t.Fatalf("scale(3): want 85, got %g", got)
	}
	if got := newCategoryScaler(NewRange(0, 10), 0).Space(); got != 0 {
		t.Fatalf("no category: want 0, got %g", got)
	}
}
