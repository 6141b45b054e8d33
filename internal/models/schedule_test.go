package models

import (
	"testing"
	"time"
)

func TestScheduleRoundTrip(t *testing.T) {
	// Every subset of {1..7} must survive encode/decode unchanged.
	for mask := 0; mask < 128; mask++ {
		var days []Weekday
		for bit := 0; bit < 7; bit++ {
			if mask&(1<<bit) != 0 {
				days = append(days, Weekday(bit+1))
			}
		}

		original, err := NewSchedule(days...)
		if err != nil {
			t.Fatalf("failed to build schedule %v: %v", days, err)
		}

		blob, err := EncodeSchedule(original)
		if err != nil {
			t.Fatalf("failed to encode %v: %v", original, err)
		}

		decoded, err := DecodeSchedule(blob)
		if err != nil {
			t.Fatalf("failed to decode %s: %v", blob, err)
		}

		if len(decoded) != len(original) {
			t.Fatalf("round trip changed size: %v -> %v", original, decoded)
		}
		for i := range original {
			if decoded[i] != original[i] {
				t.Errorf("round trip mismatch: %v -> %v", original, decoded)
			}
		}
	}
}

func TestEncodeScheduleNormalizes(t *testing.T) {
	blob, err := EncodeSchedule(Schedule{Saturday, Monday, Monday, Sunday})
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if string(blob) != "[1,2,7]" {
		t.Errorf("expected canonical [1,2,7], got %s", blob)
	}
}

func TestDecodeScheduleFailsClosed(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"empty", ""},
		{"not json", "mon,tue"},
		{"wrong type", `{"days":[1]}`},
		{"out of range low", "[0,3]"},
		{"out of range high", "[3,8]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := DecodeSchedule([]byte(tc.blob))
			if err == nil {
				t.Fatalf("expected error for %q", tc.blob)
			}
			if len(s) != 0 {
				t.Errorf("expected empty schedule on error, got %v", s)
			}
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2025-06-02 is a Monday, so the calendar weekday number is 2.
	monday := time.Date(2025, 6, 2, 15, 30, 0, 0, time.Local)
	if got := WeekdayOf(monday); got != Monday {
		t.Errorf("WeekdayOf(2025-06-02) = %d, want %d", got, Monday)
	}

	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	if got := WeekdayOf(sunday); got != Sunday {
		t.Errorf("WeekdayOf(2025-06-01) = %d, want %d", got, Sunday)
	}

	saturday := time.Date(2025, 6, 7, 23, 59, 0, 0, time.Local)
	if got := WeekdayOf(saturday); got != Saturday {
		t.Errorf("WeekdayOf(2025-06-07) = %d, want %d", got, Saturday)
	}
}

func TestScheduleEligibleOn(t *testing.T) {
	schedule, err := NewSchedule(Monday, Wednesday)
	if err != nil {
		t.Fatalf("failed to build schedule: %v", err)
	}

	monday := time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local)
	tuesday := time.Date(2025, 6, 3, 12, 0, 0, 0, time.Local)

	if !schedule.EligibleOn(monday) {
		t.Error("tracker scheduled on Monday should be eligible on a Monday")
	}
	if schedule.EligibleOn(tuesday) {
		t.Error("tracker scheduled on Mon/Wed should not be eligible on a Tuesday")
	}

	var empty Schedule
	for day := 0; day < 7; day++ {
		date := monday.AddDate(0, 0, day)
		if empty.EligibleOn(date) {
			t.Errorf("empty schedule should never be eligible, but was on %s", date.Weekday())
		}
	}
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]Weekday{
		"mon":      Monday,
		"Monday":   Monday,
		"SUN":      Sunday,
		"7":        Saturday,
		"1":        Sunday,
		"saturday": Saturday,
	}
	for input, want := range cases {
		got, err := ParseWeekday(input)
		if err != nil {
			t.Errorf("ParseWeekday(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseWeekday(%q) = %d, want %d", input, got, want)
		}
	}

	for _, bad := range []string{"", "0", "8", "someday"} {
		if _, err := ParseWeekday(bad); err == nil {
			t.Errorf("ParseWeekday(%q) should fail", bad)
		}
	}
}

func TestScheduleString(t *testing.T) {
	if got := EveryDay().String(); got != "every day" {
		t.Errorf("EveryDay().String() = %q", got)
	}

	s, _ := NewSchedule(Friday, Monday)
	if got := s.String(); got != "Mon,Fri" {
		t.Errorf("expected display order Mon,Fri, got %q", got)
	}
}
