package temperature

import (
	"fmt"
	"math"
)

type Point struct {
	Value float64
	At    string
}

type Extremes struct {
	Max   Point
	Min   Point
	Found bool
}

// TrackExtremes scans the series once. On ties the earlier sample is kept.
// Invalid samples are skipped; Found reports whether any valid one exists.
func TrackExtremes(series []Sample) Extremes {
	ext := Extremes{
		Max: Point{Value: math.Inf(-1)},
		Min: Point{Value: math.Inf(1)},
	}
	for _, s := range series {
		if !s.Valid || math.IsNaN(s.Temperature) {
			continue
		}
		ext.Found = true
		if s.Temperature > ext.Max.Value {
			ext.Max = Point{Value: s.Temperature, At: s.Time}
		}
		if s.Temperature < ext.Min.Value {
			ext.Min = Point{Value: s.Temperature, At: s.Time}
		}
	}
	return ext
}

// Summary renders the footer line shown under the chart.
func (e Extremes) Summary() string {
	if !e.Found {
		return "No temperature data available."
	}
	return fmt.Sprintf("Highest: %s°C at %s | Lowest: %s°C at %s",
		formatTemp(e.Max.Value), e.Max.At, formatTemp(e.Min.Value), e.Min.At)
}

func formatTemp(v float64) string {
	return fmt.Sprintf("%g", v)
}
