// ABOUTME: Tests for typed field access on records.
// ABOUTME: Covers legacy boolean spellings and default fallbacks.
package store

import "testing"

func TestFieldsBoolSpellings(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"True", true},
		{"1", true},
		{"false", false},
		{"False", false},
		{"0", false},
	}
	for _, tc := range cases {
		f := Fields{"flag": tc.raw}
		if got := f.Bool("flag", !tc.want); got != tc.want {
			t.Errorf("Bool(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}

	f := Fields{"flag": "maybe"}
	if !f.Bool("flag", true) {
		t.Error("unparsable bool did not fall back to default")
	}
}

func TestFieldsNumericDefaults(t *testing.T) {
	f := Fields{"hours": "2.5", "mood": "7", "weird": "n/a"}

	if got := f.Float("hours", 0); got != 2.5 {
		t.Errorf("Float = %v, want 2.5", got)
	}
	if got := f.Int("mood", 5); got != 7 {
		t.Errorf("Int = %v, want 7", got)
	}
	if got := f.Float("weird", 1.5); got != 1.5 {
		t.Errorf("unparsable float did not default: %v", got)
	}
	if got := f.Int("missing", 5); got != 5 {
		t.Errorf("missing int did not default: %v", got)
	}
}

func TestFieldsIntAcceptsFloatCell(t *testing.T) {
	f := Fields{"mood": "7.0"}
	if got := f.Int("mood", 5); got != 7 {
		t.Errorf("Int on float cell = %v, want 7", got)
	}
}

func TestFieldsSetters(t *testing.T) {
	f := Fields{}
	f.SetFloat("amount", 12.5)
	f.SetInt("reps", 5)
	f.SetBool("done", true)

	if f.Get("amount") != "12.5" {
		t.Errorf("SetFloat encoding = %q", f.Get("amount"))
	}
	if f.Get("reps") != "5" {
		t.Errorf("SetInt encoding = %q", f.Get("reps"))
	}
	if f.Get("done") != "true" {
		t.Errorf("SetBool encoding = %q", f.Get("done"))
	}
}
