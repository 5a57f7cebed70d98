package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseSinglePricedLine(t *testing.T) {
	items := Parse("Riblji paprikaš 1150")

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Label != "Riblji paprikaš" {
		t.Fatalf("expected label %q, got %q", "Riblji paprikaš", items[0].Label)
	}
	if items[0].Price == nil || *items[0].Price != 1150 {
		t.Fatalf("expected price 1150, got %v", items[0].Price)
	}
}

func TestParseSectionedMenu(t *testing.T) {
	items := Parse("MAINS\nGrilled salmon 18.50\nChicken curry 14")

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Section != "MAINS" {
			t.Fatalf("expected section MAINS on %q, got %q", it.Label, it.Section)
		}
	}
	if *items[0].Price != 18.5 || *items[1].Price != 14 {
		t.Fatalf("unexpected prices: %v, %v", *items[0].Price, *items[1].Price)
	}
}

func TestParseMergedRibbonPreservesOrder(t *testing.T) {
	// No newlines at all: the segmenter must resynchronize on prices and
	// keep top-to-bottom reading order.
	items := Parse("Bruschetta 6.50 Grilled salmon 18.50 Baklava 4")

	want := []string{"Bruschetta", "Grilled salmon", "Baklava"}
	var got []string
	for _, it := range items {
		got = append(got, it.Label)
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestParseUnparseableBlobFallsBack(t *testing.T) {
	raw := "random unparseable blob with no digits"
	items := Parse(raw)

	if len(items) != 1 {
		t.Fatalf("expected exactly one fallback item, got %d", len(items))
	}
	if items[0].Price != nil {
		t.Fatalf("fallback item must carry a nil price, got %v", *items[0].Price)
	}
	if items[0].Note != raw {
		t.Fatalf("fallback note must preserve the text, got %q", items[0].Note)
	}
	if items[0].Label == "" {
		t.Fatal("fallback item must still have a label")
	}
}

func TestParseDigitRunYieldsNoPrice(t *testing.T) {
	// A five-digit run is a phone number or a code, never a price; the
	// whole line must fall through to the terminal fallback with the
	// digits intact in the label.
	raw := "Catering info 12345"
	items := Parse(raw)

	if len(items) != 1 {
		t.Fatalf("expected exactly one fallback item, got %d", len(items))
	}
	if items[0].Price != nil {
		t.Fatalf("digit run must not yield a price, got %v", *items[0].Price)
	}
	if items[0].Label != raw {
		t.Fatalf("expected label %q, got %q", raw, items[0].Label)
	}
}

func TestParseFallbackLabelIsBounded(t *testing.T) {
	raw := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	items := Parse(raw)

	if len(items) != 1 {
		t.Fatalf("expected one fallback item, got %d", len(items))
	}
	if n := len([]rune(items[0].Label)); n > fallbackPreviewLen {
		t.Fatalf("fallback label is %d runes, limit is %d", n, fallbackPreviewLen)
	}
	if items[0].Note != Normalize(raw) {
		t.Fatal("fallback note must keep the full normalized text")
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t \r\n"} {
		items := Parse(raw)
		if len(items) != 0 {
			t.Fatalf("Parse(%q): expected empty list, got %d items", raw, len(items))
		}
	}
}

func TestParseIsDeterministic(t *testing.T) {
	raw := "PREDJELA\nRiblji paprikaš 1150 Fileti morske ribe sa blitvom i krompirom 1550\nDESSERTS Baklava 4,50"

	first := Parse(raw)
	second := Parse(raw)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two parses of the same input differ:\n%v\n%v", first, second)
	}
}

func TestParseNonEmptyInputNeverYieldsNothing(t *testing.T) {
	inputs := []string{
		"x",
		"???",
		"Cola 3",
		"NO PRICES HERE AT ALL",
	}

	for _, raw := range inputs {
		if items := Parse(raw); len(items) == 0 {
			t.Fatalf("Parse(%q) returned an empty list", raw)
		}
	}
}

func TestParseThenSplitLongLabel(t *testing.T) {
	items := Parse("Fileti morske ribe sa blitvom i krompirom 1550")

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Price == nil || *items[0].Price != 1550 {
		t.Fatalf("expected price 1550, got %v", items[0].Price)
	}

	split := SplitNameAndDescription(items[0].Label)
	if split.Name != "Fileti morske ribe" {
		t.Fatalf("expected name %q, got %q", "Fileti morske ribe", split.Name)
	}
	if split.Description != "sa blitvom i krompirom" {
		t.Fatalf("expected description %q, got %q", "sa blitvom i krompirom", split.Description)
	}
}
