package attendance

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotID identifies one of the fixed class periods of the day.
type SlotID int

type TimeSlot struct {
	ID    SlotID
	Label string
}

var timeSlots = []TimeSlot{
	{ID: 1, Label: "8:15-9:15"},
	{ID: 2, Label: "9:15-10:15"},
	{ID: 3, Label: "10:30-11:30"},
	{ID: 4, Label: "11:30-12:30"},
	{ID: 5, Label: "1:15-2:15"},
	{ID: 6, Label: "2:15-3:15"},
	{ID: 7, Label: "3:15-4:15"},
	{ID: 8, Label: "4:15-5:15"},
}

// TimeSlots returns the registry in slot order.
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

func (s SlotID) Valid() bool {
	return s >= 1 && int(s) <= len(timeSlots)
}

// Label returns the clock range for the slot, or "" for an unknown id.
func (s SlotID) Label() string {
	if !s.Valid() {
		return ""
	}
	return timeSlots[s-1].Label
}

// ParseSlotID accepts the textual forms upstream uses ("3", " 3 ", "3.0").
func ParseSlotID(value string) (SlotID, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return SlotID(n), nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid time slot %q", value)
	}
	return SlotID(int(f)), nil
}
