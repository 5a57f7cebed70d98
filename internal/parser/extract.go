package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// labelEdgeCutset holds the punctuation, separators and bullet characters
// trimmed from both ends of a candidate label.
const labelEdgeCutset = "-–—•·*:;,.|/\\'\"()[]"

// ExtractItems walks pseudo-lines in reading order and emits one MenuItem
// per (label, price) pair. The only state threaded through the pass is the
// current section, a local accumulator updated whenever a line classifies
// as a heading. Lines without any price token are skipped outright:
// precision over recall, since price-less lines are usually wrapped
// description continuations or OCR noise, not new items.
func ExtractItems(lines []string) []MenuItem {
	var items []MenuItem
	section := ""

	for _, line := range lines {
		if IsSectionHeader(line) {
			section = strings.TrimRight(line, ":. ")
			continue
		}

		// A single OCR row can hold more than one item/price pair, so the
		// price grammar is reapplied per line, left to right.
		prev := 0
		for _, m := range findPriceTokens(line) {
			label := cleanLabel(line[prev:m[0]])
			token := line[m[0]:m[1]]
			prev = m[1]

			if label == "" {
				// A price with no label is unusable even when valid.
				continue
			}

			items = append(items, MenuItem{
				Label:   label,
				Price:   parsePrice(token),
				Section: section,
			})
		}
	}

	return items
}

// cleanLabel strips edge punctuation, bullets and whitespace from a
// candidate label.
func cleanLabel(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(labelEdgeCutset, r)
	})
}

// parsePrice converts a matched price token to a number. The decimal comma
// becomes a decimal point and everything that is neither digit nor
// separator is dropped. A token that still fails conversion yields nil
// rather than aborting the line.
func parsePrice(token string) *float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}
		return -1
	}, token)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}
