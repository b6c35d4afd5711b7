package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	// day 32 of july is august 1st
	d := New(2025, 7, 32)
	if d != New(2025, 8, 1) {
		t.Errorf("New(2025, 7, 32) = %s, want 2025-08-01", d)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{"2025-07-01", New(2025, 7, 1), false},
		{"2025-7-1", New(2025, 7, 1), false},
		{"not-a-date", Date{}, true},
		{"2025-13-01", Date{}, true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("Parse(%q) error = %v, want error=%v", tc.in, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := New(2025, 2, 28)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-02-28"` {
		t.Errorf("MarshalJSON = %s, want %q", b, `"2025-02-28"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestMonthContains(t *testing.T) {
	m := NewMonth(2025, time.July)
	if !m.Contains(New(2025, 7, 15)) {
		t.Errorf("%s should contain 2025-07-15", m)
	}
	if m.Contains(New(2025, 8, 1)) {
		t.Errorf("%s should not contain 2025-08-01", m)
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-07")
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "2025-07" {
		t.Errorf("got %q want %q", m.String(), "2025-07")
	}
	if _, err := ParseMonth("2025-07-01"); err == nil {
		t.Errorf("full dates must not parse as months")
	}
	var zero Month
	if zero.String() != "" {
		t.Errorf("zero month formats as %q, want empty", zero.String())
	}
	if !zero.IsZero() {
		t.Errorf("zero month should report IsZero")
	}
}
