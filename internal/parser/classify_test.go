package parser

import "testing"

func TestIsSectionHeader(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		// Known keywords always win, whatever the casing.
		{"Desserts", true},
		{"GLAVNA JELA", true},
		{"starters:", true},

		// All-caps run-in headings with no digits.
		{"HOUSE FAVOURITES", true},
		{"SPECIJALITETI ROŠTILJA", true},

		// Keywords starting or ending in non-ASCII letters still match.
		{"čorbe", true},
		{"Supe i čorbe", true},

		// A keyword embedded in a longer word is not a heading.
		{"romains lettuce", false},

		// Any digit disqualifies a line, capitalized or not.
		{"GRILLED SALMON 18.50", false},
		{"COMBO 2", false},

		// Mostly lower-case lines are item candidates, not headings.
		{"grilled salmon with lemon butter", false},

		// Short fragments don't open a section.
		{"OK", false},
		{"DBL X", false},

		{"", false},
	}

	for _, tc := range cases {
		if got := IsSectionHeader(tc.line); got != tc.want {
			t.Errorf("IsSectionHeader(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestIsSectionHeaderHasNoSideEffects(t *testing.T) {
	line := "HOUSE FAVOURITES"
	first := IsSectionHeader(line)
	second := IsSectionHeader(line)

	if first != second {
		t.Fatalf("classifier leaked state between calls: %v then %v", first, second)
	}
}
