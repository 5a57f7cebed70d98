package parser

import "strings"

// Normalize collapses OCR whitespace noise into a canonical blob:
// carriage returns and every whitespace run without a newline become a
// single space, currency symbols get padded so glued tokens like "12€"
// still match, and the result is trimmed. Always returns a string,
// possibly empty.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\r", " ")
	s = currencySymbol.ReplaceAllString(s, " $0 ")
	s = interiorWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Segment rebuilds pseudo-lines from a layout-free blob. OCR engines
// frequently lose vertical whitespace across a photographed page and hand
// back one long ribbon of text; the only reliable vertical-rhythm anchors
// left are section headings and prices (a real menu line almost always
// ends at its price). Line breaks are inserted around every known heading
// keyword and after every price token, then the text is split, trimmed
// and stripped of empty segments.
func Segment(normalized string) []string {
	var h strings.Builder
	last := 0
	for _, m := range findHeadingSpans(normalized) {
		h.WriteString(normalized[last:m[0]])
		h.WriteByte('\n')
		h.WriteString(normalized[m[0]:m[1]])
		h.WriteByte('\n')
		last = m[1]
	}
	h.WriteString(normalized[last:])
	text := h.String()

	var b strings.Builder
	prev := 0
	for _, m := range findPriceTokens(text) {
		b.WriteString(text[prev:m[1]])
		b.WriteByte('\n')
		prev = m[1]
	}
	b.WriteString(text[prev:])

	var lines []string
	for _, seg := range strings.Split(b.String(), "\n") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			lines = append(lines, seg)
		}
	}
	return lines
}
