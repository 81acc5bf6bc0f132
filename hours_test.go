package schemaorg

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatOpeningHours_ClosedDaysOmitted(t *testing.T) {
	got := FormatOpeningHours(Hours{
		"monday":   "9:00 AM - 5:00 PM",
		"saturday": "Closed",
	})
	want := []OpeningHoursSpec{{DayOfWeek: "Monday", Opens: "09:00", Closes: "17:00"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected specs (-want +got):\n%s", diff)
	}
}

func TestFormatOpeningHours_WeekOrderThenUnknownKeys(t *testing.T) {
	got := FormatOpeningHours(Hours{
		"SUNDAY":   "10:00 - 14:00",
		"holidays": "11:00 AM - 2:00 PM",
		"friday":   "8:30am-6:00pm",
		"Monday":   "9:00 - 17:00",
		"Weekend":  "10:00 - 12:00",
	})
	want := []OpeningHoursSpec{
		{DayOfWeek: "Monday", Opens: "09:00", Closes: "17:00"},
		{DayOfWeek: "Friday", Opens: "08:30", Closes: "18:00"},
		{DayOfWeek: "Sunday", Opens: "10:00", Closes: "14:00"},
		{DayOfWeek: "Weekend", Opens: "10:00", Closes: "12:00"},
		{DayOfWeek: "holidays", Opens: "11:00", Closes: "14:00"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected specs (-want +got):\n%s", diff)
	}
}

func TestFormatOpeningHours_ClosedIsCaseInsensitive(t *testing.T) {
	got := FormatOpeningHours(Hours{"monday": "CLOSED", "tuesday": " closed ", "wednesday": "Closed"})
	if len(got) != 0 {
		t.Fatalf("expected no specs, got %#v", got)
	}
}

func TestFormatOpeningHours_MalformedEntriesDropped(t *testing.T) {
	got := FormatOpeningHours(Hours{
		"monday":    "by appointment",
		"tuesday":   "9 - 5",
		"wednesday": "25:00 - 26:00",
		"thursday":  "13:00 PM - 5:00 PM",
		"friday":    "Open 9:00 AM - 5:00 PM (lunch 12-1)",
	})
	want := []OpeningHoursSpec{{DayOfWeek: "Friday", Opens: "09:00", Closes: "17:00"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected specs (-want +got):\n%s", diff)
	}
}

func TestFormatOpeningHours_InvalidTokenDropsEntry(t *testing.T) {
	got := FormatOpeningHours(Hours{
		"monday":  "0:00 AM - 5:00 PM",
		"tuesday": "9:00 AM - 12:60 PM",
		"friday":  "9:00 AM - 5:00 PM",
	})
	want := []OpeningHoursSpec{{DayOfWeek: "Friday", Opens: "09:00", Closes: "17:00"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected specs (-want +got):\n%s", diff)
	}
}

func TestFormatOpeningHours_AtMostOneSpecPerDay(t *testing.T) {
	h := Hours{
		"monday":  "9:00 AM - 12:00 PM, 1:00 PM - 5:00 PM",
		"tuesday": "9:00 - 17:00",
	}
	got := FormatOpeningHours(h)
	if len(got) > len(h) {
		t.Fatalf("expected at most %d specs, got %d", len(h), len(got))
	}
	seen := map[string]bool{}
	for _, s := range got {
		if seen[s.DayOfWeek] {
			t.Fatalf("duplicate spec for %s", s.DayOfWeek)
		}
		seen[s.DayOfWeek] = true
	}
	if got[0].Opens != "09:00" || got[0].Closes != "12:00" {
		t.Fatalf("expected first range used, got %#v", got[0])
	}
}

func TestFormatOpeningHours_Empty(t *testing.T) {
	if got := FormatOpeningHours(nil); len(got) != 0 {
		t.Fatalf("expected no specs, got %#v", got)
	}
}

func TestOpeningHours_ReportsDroppedEntries(t *testing.T) {
	_, dropped := openingHours(Hours{"monday": "noon", "tuesday": "9:00 - 5:00"})
	if len(dropped) != 1 {
		t.Fatalf("expected one dropped entry, got %#v", dropped)
	}
	d := dropped[0]
	if d.Day != "monday" || d.Value != "noon" {
		t.Fatalf("unexpected dropped entry: %#v", d)
	}
	var he *HoursError
	if !errors.As(error(d), &he) || errors.Unwrap(d) == nil {
		t.Fatalf("expected unwrappable HoursError")
	}
}

func TestOpeningHoursSpec_Node(t *testing.T) {
	n := OpeningHoursSpec{DayOfWeek: "Monday", Opens: "09:00", Closes: "17:00"}.Node()
	want := []string{"@type", "dayOfWeek", "opens", "closes"}
	if diff := cmp.Diff(want, n.Keys()); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
	if v, _ := n.Get("@type"); v != "OpeningHoursSpecification" {
		t.Fatalf("unexpected @type: %v", v)
	}
}
