package timeclock

import (
	"fmt"
	"testing"
)

func TestToLinearMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"03:00", 0},
		{"03:01", 1},
		{"07:00", 240},
		{"15:00", 720},
		{"23:00", 1200},
		{"00:00", 1260},
		{"01:30", 1350},
		{"02:59", 1439},
	}
	for _, c := range cases {
		got := ToLinearMinutes(c.input)
		if got != c.want {
			t.Errorf("ToLinearMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestToLinearMinutesAt_CustomResetHour(t *testing.T) {
	if got := ToLinearMinutesAt("00:00", 0); got != 0 {
		t.Errorf("ToLinearMinutesAt(00:00, 0) = %d, want 0", got)
	}
	if got := ToLinearMinutesAt("04:59", 5); got != 1439 {
		t.Errorf("ToLinearMinutesAt(04:59, 5) = %d, want 1439", got)
	}
}

func TestFromLinearMinutes(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "03:00"},
		{240, "07:00"},
		{1260, "00:00"},
		{1439, "02:59"},
		{1440, "03:00"}, // wraps modulo one day
	}
	for _, c := range cases {
		got := FromLinearMinutes(c.input)
		if got != c.want {
			t.Errorf("FromLinearMinutes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestLinearMinutesRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 7 {
			in := fmt.Sprintf("%02d:%02d", h, m)
			out := FromLinearMinutes(ToLinearMinutes(in))
			if out != in {
				t.Errorf("round trip %q -> %q", in, out)
			}
		}
	}
}

func TestLinearAxisStrictlyIncreasing(t *testing.T) {
	// The business day runs 03:00 .. 02:59 next day; the axis must grow
	// monotonically across midnight.
	order := []string{"03:00", "07:10", "15:00", "23:00", "23:59", "00:00", "02:59"}
	prev := -1
	for _, tm := range order {
		cur := ToLinearMinutes(tm)
		if cur <= prev {
			t.Fatalf("axis not increasing at %q: %d <= %d", tm, cur, prev)
		}
		prev = cur
	}
}
