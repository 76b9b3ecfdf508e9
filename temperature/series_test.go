package temperature

import (
	"context"
	"errors"
	"strings"
	"testing"

	"attendance_dashboard/models"
)

type stubFetcher struct {
	readings []models.HealthReading
	err      error
}

func (s stubFetcher) FetchHealth(_ context.Context) ([]models.HealthReading, error) {
	return s.readings, s.err
}

func TestLoaderLoadKeepsOrder(t *testing.T) {
	loader := NewLoader(stubFetcher{readings: []models.HealthReading{
		{Time: "10:00", Temperature: "20"},
		{Time: "10:05", Temperature: "35"},
		{Time: "10:10", Temperature: "10"},
	}})

	series, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(series) != 3 || series[0].Time != "10:00" || series[2].Temperature != 10 {
		t.Fatalf("unexpected series: %+v", series)
	}
}

func TestLoaderLoadError(t *testing.T) {
	boom := errors.New("connection refused")
	loader := NewLoader(stubFetcher{err: boom})
	if _, err := loader.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestGenerateChart(t *testing.T) {
	series := []Sample{
		{Time: "t1", Temperature: 20, Valid: true},
		{Time: "t2", Temperature: 35, Valid: true},
		{Time: "<t3>", Temperature: 0},
		{Time: "t4", Temperature: 10, Valid: true},
	}
	svg := string(GenerateChart(series, TrackExtremes(series)))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("expected an svg document, got %q", svg)
	}
	// The invalid sample splits the line into two runs.
	if strings.Count(svg, "M") < 2 {
		t.Fatalf("expected the line to restart after the invalid sample: %s", svg)
	}
	if strings.Count(svg, "<circle") != 2 {
		t.Fatalf("expected max and min markers: %s", svg)
	}
	if strings.Contains(svg, "<t3>") {
		t.Fatalf("labels must be escaped")
	}
}

func TestGenerateChartSingleSampleMarksBothExtremes(t *testing.T) {
	series := []Sample{{Time: "t1", Temperature: 21, Valid: true}}
	svg := string(GenerateChart(series, TrackExtremes(series)))

	if !strings.Contains(svg, `fill="#d62728"`) || !strings.Contains(svg, `fill="#1f77b4"`) {
		t.Fatalf("expected both max and min markers: %s", svg)
	}
}

func TestGenerateChartEmpty(t *testing.T) {
	svg := string(GenerateChart(nil, TrackExtremes(nil)))
	if !strings.Contains(svg, "No temperature data") {
		t.Fatalf("expected empty-state chart, got %s", svg)
	}
}
