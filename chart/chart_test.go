package chart

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/etnz/papertrade/date"
)

func series(closes ...float64) []Point {
	day := date.New(2025, time.June, 2)
	points := make([]Point, len(closes))
	for i, c := range closes {
		points[i] = Point{Date: day.Add(i), Close: c}
	}
	return points
}

func TestDailyReturns(t *testing.T) {
	got := DailyReturns(series(100, 110, 99))
	if len(got) != 2 {
		t.Fatalf("got %d returns, want 2", len(got))
	}
	if math.Abs(got[0].Close-0.10) > 1e-9 {
		t.Errorf("first return = %v, want 0.10", got[0].Close)
	}
	if math.Abs(got[1].Close-(-0.10)) > 1e-9 {
		t.Errorf("second return = %v, want -0.10", got[1].Close)
	}
}

func TestDailyReturns_ShortSeries(t *testing.T) {
	if got := DailyReturns(series(100)); got != nil {
		t.Errorf("returns of a single point = %v, want nil", got)
	}
}

func TestPrice_RendersPNG(t *testing.T) {
	png, err := Price("AAPL", series(100, 102, 101, 105, 104))
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("output does not start with the PNG signature")
	}
}

func TestRender_NeedsTwoPoints(t *testing.T) {
	if _, err := Returns("AAPL", series(100)); err == nil {
		t.Error("rendering a single point succeeded, want an error")
	}
}
