package temperature

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"attendance_dashboard/models"
)

// Sample is one reading. Valid is false when the upstream value was not a
// number; such samples stay in the series but never count as an extreme.
type Sample struct {
	Time        string
	Temperature float64
	Valid       bool
}

// Fetcher retrieves the raw health readings from upstream.
type Fetcher interface {
	FetchHealth(ctx context.Context) ([]models.HealthReading, error)
}

type Loader struct {
	fetcher Fetcher
}

func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches the series in upstream order.
func (l *Loader) Load(ctx context.Context) ([]Sample, error) {
	readings, err := l.fetcher.FetchHealth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching temperature series: %w", err)
	}
	return ParseSamples(readings), nil
}

func ParseSamples(readings []models.HealthReading) []Sample {
	samples := make([]Sample, 0, len(readings))
	for _, r := range readings {
		s := Sample{Time: r.Time.String()}
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Temperature.String()), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			s.Temperature = v
			s.Valid = true
		}
		samples = append(samples, s)
	}
	return samples
}
