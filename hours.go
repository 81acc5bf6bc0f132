package schemaorg

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/brochurekit/schemaorg-go/jsonld"
	"github.com/brochurekit/schemaorg-go/timetoken"
)

// ClosedKeyword marks a day without opening hours. It matches case-insensitively.
const ClosedKeyword = "Closed"

var weekdays = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayIndex = func() map[string]int {
	m := make(map[string]int, len(weekdays))
	for i, d := range weekdays {
		m[strings.ToLower(d)] = i
	}
	return m
}()

// hoursRangeRe finds the first "open - close" pair; surrounding text is ignored.
var hoursRangeRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)?)\s*-\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?)`)

// OpeningHoursSpec is one day's opening and closing time in 24-hour "HH:MM".
type OpeningHoursSpec struct {
	DayOfWeek string
	Opens     string
	Closes    string
}

// Node returns the spec as an OpeningHoursSpecification node.
func (s OpeningHoursSpec) Node() *jsonld.Object {
	o := jsonld.NewNode("OpeningHoursSpecification")
	o.Set("dayOfWeek", s.DayOfWeek)
	o.Set("opens", s.Opens)
	o.Set("closes", s.Closes)
	return o
}

// HoursError describes an hours entry that could not be turned into a spec.
type HoursError struct {
	Day   string
	Value string
	Err   error
}

func (e *HoursError) Error() string {
	if e == nil {
		return "hours error"
	}
	return fmt.Sprintf("hours[%q]: %v", e.Day, e.Err)
}

func (e *HoursError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FormatOpeningHours converts h into opening hours specs ordered Monday
// through Sunday, followed by unrecognised day keys in lexical order.
//
// Day keys are matched case-insensitively; keys that are not weekday names
// pass through unchanged. Days marked Closed are skipped, as are entries
// without a parseable "H:MM[ AM|PM] - H:MM[ AM|PM]" range. A range whose
// open or close token is out of range, such as "0:00 AM" or "25:00", drops
// the whole entry; no "00:00" placeholder is substituted.
func FormatOpeningHours(h Hours) []OpeningHoursSpec {
	specs, _ := openingHours(h)
	return specs
}

// openingHours is FormatOpeningHours that also reports the dropped entries.
func openingHours(h Hours) ([]OpeningHoursSpec, []*HoursError) {
	var (
		specs   []OpeningHoursSpec
		dropped []*HoursError
	)
	for _, day := range sortedDays(h) {
		value := h[day]
		if isClosed(value) {
			continue
		}
		opens, closes, err := parseHoursRange(value)
		if err != nil {
			dropped = append(dropped, &HoursError{Day: day, Value: value, Err: err})
			continue
		}
		specs = append(specs, OpeningHoursSpec{
			DayOfWeek: canonicalDay(day),
			Opens:     opens,
			Closes:    closes,
		})
	}
	return specs, dropped
}

func isClosed(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), ClosedKeyword)
}

func parseHoursRange(value string) (opens, closes string, err error) {
	m := hoursRangeRe.FindStringSubmatch(value)
	if m == nil {
		return "", "", fmt.Errorf("no time range in %q", value)
	}
	opens, err = timetoken.Normalize(m[1])
	if err != nil {
		return "", "", err
	}
	closes, err = timetoken.Normalize(m[2])
	if err != nil {
		return "", "", err
	}
	return opens, closes, nil
}

// canonicalDay returns the capitalised weekday name for day, or day itself.
func canonicalDay(day string) string {
	if i, ok := weekdayIndex[strings.ToLower(day)]; ok {
		return weekdays[i]
	}
	return day
}

func sortedDays(h Hours) []string {
	days := make([]string, 0, len(h))
	for d := range h {
		days = append(days, d)
	}
	rank := func(d string) int {
		if i, ok := weekdayIndex[strings.ToLower(d)]; ok {
			return i
		}
		return len(weekdays)
	}
	sort.Slice(days, func(i, j int) bool {
		ri, rj := rank(days[i]), rank(days[j])
		if ri != rj {
			return ri < rj
		}
		return days[i] < days[j]
	})
	return days
}
