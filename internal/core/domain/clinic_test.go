package domain

import (
	"errors"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Test Hospital!! ":      "test-hospital",
		"Nordside  Family Care": "nordside-family-care",
		"St. Mary's":            "st-marys",
		"ALREADY-SLUGGED":       "already-slugged",
		"  spaced  ":            "spaced",
		"---":                   "",
		"":                      "",
		"Clinic #42":            "clinic-42",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDeniedError(t *testing.T) {
	err := Denied(ReasonCrossTenant)
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("DeniedError must match ErrDenied")
	}
	if DenialReason(err) != ReasonCrossTenant {
		t.Fatalf("reason lost: %v", err)
	}
	if DenialReason(errors.New("other")) != "" {
		t.Fatalf("non-denial errors must yield empty reason")
	}
}
