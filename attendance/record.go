package attendance

import (
	"fmt"
	"strings"
	"time"

	"attendance_dashboard/models"
)

// DateLayout is the day format used by the date pickers and the API.
const DateLayout = "2006-01-02"

var timestampLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Record is a session with its date and slot already normalised.
type Record struct {
	Date                   time.Time
	TimeSlot               SlotID
	RollNoOfStudentPresent []string
	CreatedAt              time.Time
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a date or timestamp and returns its UTC day.
func ParseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// NewRecord converts an upstream row. A missing createdAt falls back to date.
func NewRecord(m models.AttendanceRecord) (Record, error) {
	date, err := ParseDay(m.Date)
	if err != nil {
		return Record{}, err
	}

	createdAt := date
	if strings.TrimSpace(m.CreatedAt) != "" {
		if createdAt, err = parseTimestamp(m.CreatedAt); err != nil {
			return Record{}, err
		}
	}

	slot, err := ParseSlotID(m.TimeSlot.String())
	if err != nil {
		return Record{}, err
	}

	roster := make([]string, len(m.RollNoOfStudentPresent))
	copy(roster, m.RollNoOfStudentPresent)

	return Record{
		Date:                   date,
		TimeSlot:               slot,
		RollNoOfStudentPresent: roster,
		CreatedAt:              createdAt,
	}, nil
}
