package timetoken

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Time is a wall-clock time of day as used in opening hours.
type Time struct {
	// Hour is in 24-hour form, 0-23.
	Hour int
	// Minute is 0-59.
	Minute int
}

// String returns the time as zero-padded 24-hour "HH:MM".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

var tokenRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`)

// Parse parses "H:MM" or "HH:MM", optionally followed by AM or PM (any case).
// Without a meridiem the hour must be 0-23; with one it must be 1-12.
func Parse(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Time{}, errors.New("time token: empty")
	}
	m := tokenRe.FindStringSubmatch(s)
	if m == nil {
		return Time{}, fmt.Errorf("time token: invalid %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return Time{}, fmt.Errorf("time token: minute out of range in %q", s)
	}

	switch strings.ToUpper(m[3]) {
	case "":
		if hour > 23 {
			return Time{}, fmt.Errorf("time token: hour out of range in %q", s)
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return Time{}, fmt.Errorf("time token: hour out of range in %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return Time{}, fmt.Errorf("time token: hour out of range in %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	}
	return Time{Hour: hour, Minute: minute}, nil
}

// IsTimeToken reports whether s is a valid time token.
func IsTimeToken(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Normalize parses s and returns it as "HH:MM".
func Normalize(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
