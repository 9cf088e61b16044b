package report

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "us short", in: "8/5/2026", want: "2026-08-05", ok: true},
		{name: "us padded", in: "08/05/2026", want: "2026-08-05", ok: true},
		{name: "iso", in: "2026-08-05", want: "2026-08-05", ok: true},
		{name: "day first when month invalid", in: "13/5/2026", want: "2026-05-13", ok: true},
		{name: "iso datetime", in: "2026-08-05 14:30:00", want: "2026-08-05", ok: true},
		{name: "us datetime", in: "8/5/2026 14:30:00", want: "2026-08-05", ok: true},
		{name: "trailing time fallback", in: "8/5/2026 2:30 PM", want: "2026-08-05", ok: true},
		{name: "surrounding spaces", in: "  2026-08-05  ", want: "2026-08-05", ok: true},
		{name: "empty", in: "", ok: false},
		{name: "garbage", in: "not a date", ok: false},
		{name: "impossible day", in: "2026-02-30", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got.Format("2006-01-02") != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}

func TestParseDateFirstMatchWins(t *testing.T) {
	// 3/4 is ambiguous; the US-style layout comes first in the list, so it
	// must win over day-first.
	got, ok := ParseDate("3/4/2026")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got.Month() != time.March || got.Day() != 4 {
		t.Errorf("got %s, want March 4", got.Format("2006-01-02"))
	}
}

func TestParseQty(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"-7", -7},
		{"1,250", 1250},
		{"12.0", 12},
		{" 8 ", 8},
		{"", 0},
		{"abc", 0},
	}
	for _, tt := range tests {
		if got := ParseQty(tt.in); got != tt.want {
			t.Errorf("ParseQty(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"7:30", 450, true},
		{"07:30:15", 450, true},
		{"0:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"7:60", 0, false},
		{"730", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseClock(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseClock(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0h 0m"},
		{59, "0h 59m"},
		{60, "1h 0m"},
		{135, "2h 15m"},
		{-5, "0h 0m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
