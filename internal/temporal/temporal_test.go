package temporal

import (
	"testing"
	"time"
)

// --- ParseUTC ---------------------------------------------------------------

func TestParseUTC_Valid(t *testing.T) {
	got, err := ParseUTC("2024-11-15T08:30:00Z")
	if err != nil {
		t.Fatalf("ParseUTC: %v", err)
	}
	want := time.Date(2024, 11, 15, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseUTC: got %v, want %v", got, want)
	}
}

func TestParseUTC_ZeroOffsetForm(t *testing.T) {
	if _, err := ParseUTC("2024-11-15T08:30:00+00:00"); err != nil {
		t.Errorf("ParseUTC +00:00: %v", err)
	}
}

func TestParseUTC_Rejections(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"no separator", "2024-11-15 08:30:00Z"},
		{"no UTC marker", "2024-11-15T08:30:00"},
		{"non-UTC offset", "2024-11-15T08:30:00+05:30"},
		{"garbage", "not-a-timeTZ"},
		{"empty", ""},
		{"month out of range", "2024-13-15T08:30:00Z"},
	}
	for _, tc := range cases {
		if _, err := ParseUTC(tc.in); err == nil {
			t.Errorf("%s: ParseUTC(%q) succeeded, want error", tc.name, tc.in)
		}
	}
}

// --- DelayMinutes -----------------------------------------------------------

func TestDelayMinutes_Late(t *testing.T) {
	d, ok := DelayMinutes("2024-11-15T08:30:00Z", "2024-11-15T06:00:00Z")
	if !ok {
		t.Fatal("DelayMinutes: not applicable, want value")
	}
	if d != 150 {
		t.Errorf("DelayMinutes: got %d, want 150", d)
	}
}

func TestDelayMinutes_Early(t *testing.T) {
	d, ok := DelayMinutes("2024-11-15T06:00:00Z", "2024-11-15T08:00:00Z")
	if !ok {
		t.Fatal("DelayMinutes: not applicable, want value")
	}
	if d != -120 {
		t.Errorf("DelayMinutes: got %d, want -120", d)
	}
}

func TestDelayMinutes_RoundsToNearest(t *testing.T) {
	// 90 seconds late rounds to 2 minutes.
	d, ok := DelayMinutes("2024-11-15T06:01:30Z", "2024-11-15T06:00:00Z")
	if !ok {
		t.Fatal("DelayMinutes: not applicable, want value")
	}
	if d != 2 {
		t.Errorf("DelayMinutes: got %d, want 2", d)
	}
}

func TestDelayMinutes_NotApplicable(t *testing.T) {
	if _, ok := DelayMinutes("", "2024-11-15T06:00:00Z"); ok {
		t.Error("empty actual: want not applicable")
	}
	if _, ok := DelayMinutes("2024-11-15T06:00:00Z", ""); ok {
		t.Error("empty expected: want not applicable")
	}
	if _, ok := DelayMinutes("2024-11-15T06:00:00Z", "next tuesday"); ok {
		t.Error("unparseable expected: want not applicable")
	}
}

// --- GapHours ---------------------------------------------------------------

func TestGapHours_Signed(t *testing.T) {
	a := time.Date(2024, 11, 15, 6, 0, 0, 0, time.UTC)
	b := a.Add(30 * time.Hour)

	if got := GapHours(a, b); got != 30 {
		t.Errorf("GapHours forward: got %v, want 30", got)
	}
	if got := GapHours(b, a); got != -30 {
		t.Errorf("GapHours backward: got %v, want -30", got)
	}
}
