package database

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBirthdayInWindow(t *testing.T) {
	t.Parallel()

	today := date(2024, time.June, 10)

	tests := []struct {
		name     string
		birthday time.Time
		today    time.Time
		want     bool
	}{
		{"today inclusive", date(1990, time.June, 10), today, true},
		{"last day inclusive", date(1990, time.June, 17), today, true},
		{"day after window", date(1990, time.June, 18), today, false},
		{"day before window", date(1990, time.June, 9), today, false},
		{"year ignored", date(2030, time.June, 12), today, true},
		{"year wrap", date(1985, time.January, 2), date(2024, time.December, 28), true},
		{"year wrap outside", date(1985, time.January, 5), date(2024, time.December, 28), false},
		{"feb 29 in leap year", date(1996, time.February, 29), date(2024, time.February, 25), true},
		{"feb 29 in non-leap year counts as mar 1", date(1996, time.February, 29), date(2025, time.February, 25), true},
		{"feb 29 outside window", date(1996, time.February, 29), date(2025, time.March, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := birthdayInWindow(tc.birthday, tc.today, 7); got != tc.want {
				t.Fatalf("birthdayInWindow(%v, %v) = %v, want %v",
					tc.birthday.Format("2006-01-02"), tc.today.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestIsLeap(t *testing.T) {
	t.Parallel()

	for year, want := range map[int]bool{2024: true, 2025: false, 2000: true, 1900: false} {
		if got := isLeap(year); got != want {
			t.Fatalf("isLeap(%d) = %v, want %v", year, got, want)
		}
	}
}
