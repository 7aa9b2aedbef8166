// Package chart renders the stock analysis charts (closing prices and
// daily returns) as PNG images.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/etnz/papertrade/date"
)

// Point is one day of the closing price series.
type Point struct {
	Date  date.Date
	Close float64
}

// DailyReturns derives the day-over-day relative price changes from a
// closing price series. The result has one fewer point than the input.
func DailyReturns(points []Point) []Point {
	if len(points) < 2 {
		return nil
	}
	returns := make([]Point, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, Point{
			Date:  points[i].Date,
			Close: points[i].Close/prev - 1,
		})
	}
	return returns
}

// Price renders the closing price series as a PNG line chart.
func Price(symbol string, points []Point) ([]byte, error) {
	return render(
		fmt.Sprintf("%s Stock Price", symbol),
		points,
		func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("$%.2f", f)
			}
			return ""
		},
	)
}

// Returns renders the daily returns series as a PNG line chart.
func Returns(symbol string, points []Point) ([]byte, error) {
	return render(
		fmt.Sprintf("%s Daily Returns", symbol),
		points,
		func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.2f%%", f*100)
			}
			return ""
		},
	)
}

func render(title string, points []Point, yFormatter chart.ValueFormatter) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Date.Time()
		yValues[i] = p.Close
	}

	series := chart.TimeSeries{
		Name: title,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: yFormatter,
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
