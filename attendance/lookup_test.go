package attendance

import (
	"reflect"
	"testing"
	"time"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDay(value)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", value, err)
	}
	return d
}

func record(t *testing.T, date string, slot SlotID, present ...string) Record {
	t.Helper()
	d := day(t, date)
	return Record{Date: d, TimeSlot: slot, RollNoOfStudentPresent: present, CreatedAt: d.Add(9 * time.Hour)}
}

func TestFindPresentRosterSingleRecord(t *testing.T) {
	records := []Record{record(t, "2024-01-01", 1, "A1", "A2")}

	got := FindPresentRoster(records, day(t, "2024-01-01"), 1)
	if !reflect.DeepEqual(got, []string{"A1", "A2"}) {
		t.Fatalf("expected [A1 A2], got %v", got)
	}

	got = FindPresentRoster(records, day(t, "2024-01-02"), 1)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil roster, got %#v", got)
	}
}

func TestFindPresentRosterSlotMismatch(t *testing.T) {
	records := []Record{record(t, "2024-01-01", 1, "A1")}
	if got := FindPresentRoster(records, day(t, "2024-01-01"), 2); len(got) != 0 {
		t.Fatalf("expected no roster for slot 2, got %v", got)
	}
}

func TestFindPresentRosterTakesFirstMatch(t *testing.T) {
	records := []Record{
		record(t, "2024-01-01", 3, "B1"),
		record(t, "2024-01-01", 3, "B2", "B3"),
	}
	got := FindPresentRoster(records, day(t, "2024-01-01"), 3)
	if !reflect.DeepEqual(got, []string{"B1"}) {
		t.Fatalf("expected first roster [B1], got %v", got)
	}
	if n := len(FindMatches(records, day(t, "2024-01-01"), 3)); n != 2 {
		t.Fatalf("expected 2 matches, got %d", n)
	}
}

func TestFindPresentRosterMatchesOnCreatedAtDay(t *testing.T) {
	// Dated the 1st, created early on the 3rd in UTC+5:30, which is still
	// the 2nd in UTC.
	ist := time.FixedZone("IST", 5*3600+1800)
	r := Record{
		Date:                   day(t, "2024-01-01"),
		TimeSlot:               4,
		RollNoOfStudentPresent: []string{"C1"},
		CreatedAt:              time.Date(2024, 1, 3, 2, 0, 0, 0, ist),
	}
	records := []Record{r}

	if got := FindPresentRoster(records, day(t, "2024-01-02"), 4); !reflect.DeepEqual(got, []string{"C1"}) {
		t.Fatalf("expected lookup by createdAt day, got %v", got)
	}
	for _, other := range []string{"2024-01-01", "2024-01-03"} {
		if got := FindPresentRoster(records, day(t, other), 4); len(got) != 0 {
			t.Fatalf("expected no match on %s, got %v", other, got)
		}
	}
}

func TestFindPresentRosterIdempotentAndPure(t *testing.T) {
	records := []Record{record(t, "2024-01-01", 1, "A1", "A2")}

	first := FindPresentRoster(records, day(t, "2024-01-01"), 1)
	first[0] = "mutated"
	second := FindPresentRoster(records, day(t, "2024-01-01"), 1)

	if !reflect.DeepEqual(second, []string{"A1", "A2"}) {
		t.Fatalf("expected unchanged roster on second call, got %v", second)
	}
	if records[0].RollNoOfStudentPresent[0] != "A1" {
		t.Fatalf("lookup result aliases the stored roster")
	}
}
