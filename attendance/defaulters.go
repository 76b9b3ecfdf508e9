package attendance

import "time"

// DefaulterThreshold is the attendance percentage below which a student is
// flagged.
const DefaulterThreshold = 75.0

// InputError is a validation failure meant to be shown to the user as is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

var (
	ErrMissingRangeBound = &InputError{Message: "Please select both start and end dates."}
	ErrInvertedRange     = &InputError{Message: "Start date must not be after end date."}
)

type Defaulter struct {
	RollNo     string
	Present    int
	Percentage float64
}

type DefaulterReport struct {
	Start         time.Time
	End           time.Time
	TotalSessions int
	Threshold     float64
	// Defaulters are in the order the roll numbers were first seen.
	Defaulters []Defaulter
}

func (r DefaulterReport) RollNumbers() []string {
	out := make([]string, 0, len(r.Defaulters))
	for _, d := range r.Defaulters {
		out = append(out, d.RollNo)
	}
	return out
}

func (r DefaulterReport) Percentages() map[string]float64 {
	out := make(map[string]float64, len(r.Defaulters))
	for _, d := range r.Defaulters {
		out[d.RollNo] = d.Percentage
	}
	return out
}

// ComputeDefaulters counts, per roll number, the sessions dated within
// [start, end] that list it as present, and reports those whose share of
// all sessions in the range is below threshold. Students who attended none
// of the sessions never appear. An empty range yields an empty report.
func ComputeDefaulters(records []Record, start, end *time.Time, threshold float64) (DefaulterReport, error) {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return DefaulterReport{}, ErrMissingRangeBound
	}
	from, to := Day(*start), Day(*end)
	if from.After(to) {
		return DefaulterReport{}, ErrInvertedRange
	}

	report := DefaulterReport{Start: from, End: to, Threshold: threshold}

	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		day := Day(r.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		report.TotalSessions++
		for _, rollNo := range r.RollNoOfStudentPresent {
			if _, seen := counts[rollNo]; !seen {
				order = append(order, rollNo)
			}
			counts[rollNo]++
		}
	}

	if report.TotalSessions == 0 {
		return report, nil
	}

	for _, rollNo := range order {
		percentage := float64(counts[rollNo]) / float64(report.TotalSessions) * 100
		if percentage < threshold {
			report.Defaulters = append(report.Defaulters, Defaulter{
				RollNo:     rollNo,
				Present:    counts[rollNo],
				Percentage: percentage,
			})
		}
	}
	return report, nil
}
