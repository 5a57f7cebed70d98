// Package parser turns the layout-free text an OCR provider recovers from
// a photographed menu into an ordered list of structured items, without
// rewriting, translating or reordering the merchant's own wording. It is
// the deterministic counterpart to the model-based structuring step in
// internal/llm: same input, same output shape, and the guaranteed fallback
// when that step is unavailable or fails.
//
// Every stage is a pure function; the package never panics and, for any
// non-empty input, never returns an empty result.
package parser

import "unicode/utf8"

// fallbackPreviewLen bounds the label of the terminal-fallback item; the
// full normalized text is preserved in Note.
const fallbackPreviewLen = 200

// Parse runs the whole pipeline: normalize → segment → extract. An empty
// or whitespace-only input yields an empty list (there is nothing to echo
// back); any other input yields at least one item, because a pass that
// finds no structure at all falls back to a single item carrying the
// normalized page text itself.
func Parse(raw string) []MenuItem {
	normalized := Normalize(raw)
	if normalized == "" {
		return []MenuItem{}
	}

	items := ExtractItems(Segment(normalized))
	if len(items) == 0 {
		items = append(items, MenuItem{
			Label: truncateRunes(normalized, fallbackPreviewLen),
			Note:  normalized,
		})
	}
	return items
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
