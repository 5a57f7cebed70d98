package parser

import (
	"reflect"
	"testing"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  Grilled   salmon \r\n 18.50\t ")
	want := "Grilled salmon \n 18.50"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizePadsCurrencySymbols(t *testing.T) {
	got := Normalize("Pizza12€ Cola 3,5$")
	want := "Pizza12 € Cola 3,5 $"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Normalize(" \t\r\n "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSegmentBreaksAfterPrices(t *testing.T) {
	// One OCR-merged ribbon, two priced items.
	got := Segment("Grilled salmon 18.50 Chicken curry 14 house favourite")
	want := []string{
		"Grilled salmon 18.50",
		"Chicken curry 14",
		"house favourite",
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSegmentIsolatesHeadingKeywords(t *testing.T) {
	got := Segment("DESSERTS chocolate cake 6")
	want := []string{"DESSERTS", "chocolate cake 6"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSegmentIsolatesNonASCIIHeadings(t *testing.T) {
	got := Segment("pasulj 350 čorbe riblja čorba 400")
	want := []string{"pasulj 350", "čorbe", "riblja čorba 400"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSegmentDropsEmptySegments(t *testing.T) {
	got := Segment("\n\n  \nCola 3\n\n")
	want := []string{"Cola 3"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPriceTokenNotFollowedByDigit(t *testing.T) {
	// Five digit runs (phone numbers, postal codes) must not produce a
	// four-digit price token.
	s := "call 06012"
	for _, m := range findPriceTokens(s) {
		if m[1] < len(s) && s[m[1]] >= '0' && s[m[1]] <= '9' {
			t.Fatalf("token %q runs straight into another digit", s[m[0]:m[1]])
		}
	}
}

func TestPriceTokenRejectsDigitRunWhole(t *testing.T) {
	// The rejected four-digit prefix of "12345" must not leave its last
	// digit behind as a fresh one-digit price.
	if tokens := findPriceTokens("Catering info 12345"); len(tokens) != 0 {
		t.Fatalf("expected no price tokens in a five-digit run, got %d", len(tokens))
	}
}
