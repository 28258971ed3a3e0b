package moneybook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-08-01", want: NewDate(2026, time.August, 1)},
		{in: "2026-8-1", want: NewDate(2026, time.August, 1)},
		{in: "2026-12-31", want: NewDate(2026, time.December, 31)},
		{in: "not a date", wantErr: true},
		{in: "2026/08/01", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_Relative(t *testing.T) {
	got, err := ParseDate("0d")
	if err != nil || got != Today() {
		t.Errorf("ParseDate(0d) = %v, %v, want today", got, err)
	}
	got, err = ParseDate("-30d")
	if err != nil || got != Today().Add(-30) {
		t.Errorf("ParseDate(-30d) = %v, %v, want 30 days ago", got, err)
	}
	got, err = ParseDate("+7d")
	if err != nil || got != Today().Add(7) {
		t.Errorf("ParseDate(+7d) = %v, %v, want 7 days ahead", got, err)
	}
}

func TestDateAdd_Normalizes(t *testing.T) {
	if got := NewDate(2026, time.August, 31).Add(1); got != NewDate(2026, time.September, 1) {
		t.Errorf("Aug 31 + 1 = %v, want Sep 1", got)
	}
	if got := NewDate(2026, time.January, 1).Add(-1); got != NewDate(2025, time.December, 31) {
		t.Errorf("Jan 1 - 1 = %v, want Dec 31", got)
	}
	// leap year
	if got := NewDate(2024, time.February, 28).Add(1); got != NewDate(2024, time.February, 29) {
		t.Errorf("Feb 28 2024 + 1 = %v, want Feb 29", got)
	}
}

func TestDateJSON_RoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-08-05"` {
		t.Errorf("marshal = %s, want \"2026-08-05\"", data)
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{From: dt("2026-08-01"), To: dt("2026-08-31")}
	for _, d := range []string{"2026-08-01", "2026-08-15", "2026-08-31"} {
		if !r.Contains(dt(d)) {
			t.Errorf("range must contain %s", d)
		}
	}
	for _, d := range []string{"2026-07-31", "2026-09-01"} {
		if r.Contains(dt(d)) {
			t.Errorf("range must not contain %s", d)
		}
	}
}
