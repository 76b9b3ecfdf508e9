package attendance

import "time"

// FindMatches returns every record created on date for slot, in list order.
func FindMatches(records []Record, date time.Time, slot SlotID) []Record {
	day := Day(date)
	var matches []Record
	for _, r := range records {
		if r.TimeSlot == slot && Day(r.CreatedAt).Equal(day) {
			matches = append(matches, r)
		}
	}
	return matches
}

// FindPresentRoster returns the roster of the first record created on date
// for slot. When several records match, the later ones are ignored.
func FindPresentRoster(records []Record, date time.Time, slot SlotID) []string {
	matches := FindMatches(records, date, slot)
	if len(matches) == 0 {
		return []string{}
	}
	roster := make([]string, len(matches[0].RollNoOfStudentPresent))
	copy(roster, matches[0].RollNoOfStudentPresent)
	return roster
}
