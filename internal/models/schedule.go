package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Weekday numbers the days of the week the way the store persists them:
// 1 is Sunday, 7 is Saturday.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DisplayOrder lists the weekdays Monday first, the order pickers show them in.
var DisplayOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// Short returns the three-letter abbreviation, "Mon".
func (w Weekday) Short() string {
	return w.String()[:3]
}

// WeekdayOf returns the calendar weekday number of t.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(int(t.Weekday()) + 1)
}

// ParseWeekday accepts a full name ("monday"), a three-letter abbreviation
// ("mon") or a number 1-7 with 1 meaning Sunday. Matching ignores case.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty weekday")
	}

	if len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
		return Weekday(s[0] - '0'), nil
	}

	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if s == lower || s == lower[:3] {
			return Weekday(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// Schedule is the set of weekdays a tracker is active on, kept sorted and
// without duplicates. An empty schedule is never eligible.
type Schedule []Weekday

// NewSchedule builds a schedule from the given days, dropping duplicates
// and sorting. Any day outside 1-7 is an error.
func NewSchedule(days ...Weekday) (Schedule, error) {
	seen := make(map[Weekday]bool, len(days))
	var s Schedule
	for _, d := range days {
		if !d.Valid() {
			return nil, fmt.Errorf("invalid weekday %d (expected 1-7)", int(d))
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		s = append(s, d)
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s, nil
}

// EveryDay returns a schedule covering all seven days.
func EveryDay() Schedule {
	return Schedule{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

func (s Schedule) Contains(w Weekday) bool {
	for _, d := range s {
		if d == w {
			return true
		}
	}
	return false
}

// EligibleOn reports whether the schedule covers the weekday of t.
func (s Schedule) EligibleOn(t time.Time) bool {
	return s.Contains(WeekdayOf(t))
}

func (s Schedule) String() string {
	switch len(s) {
	case 0:
		return "never"
	case 7:
		return "every day"
	}

	names := make([]string, 0, len(s))
	for _, w := range DisplayOrder {
		if s.Contains(w) {
			names = append(names, w.Short())
		}
	}
	return strings.Join(names, ",")
}

// EncodeSchedule renders the schedule as a canonical JSON integer array,
// sorted ascending with duplicates removed.
func EncodeSchedule(s Schedule) ([]byte, error) {
	canonical, err := NewSchedule(s...)
	if err != nil {
		return nil, err
	}
	days := make([]int, len(canonical))
	for i, w := range canonical {
		days[i] = int(w)
	}
	return json.Marshal(days)
}

// DecodeSchedule parses a stored JSON array. Anything that is not a list of
// numbers 1-7 is rejected rather than silently repaired.
func DecodeSchedule(blob []byte) (Schedule, error) {
	var days []int
	if err := json.Unmarshal(blob, &days); err != nil {
		return nil, fmt.Errorf("malformed schedule %q: %w", blob, err)
	}
	weekdays := make([]Weekday, len(days))
	for i, d := range days {
		weekdays[i] = Weekday(d)
	}
	return NewSchedule(weekdays...)
}
