package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split thresholds. Tuned judgment calls kept in one place; deliberately
// not runtime-configurable.
const (
	// shortLabelLimit: labels at or below this many runes are assumed to
	// already be just a dish name and are returned unsplit.
	shortLabelLimit = 40
	// minSplitName / minSplitDescription: a candidate split only qualifies
	// when both sides are substantial enough to stand alone.
	minSplitName        = 3
	minSplitDescription = 8
)

// punctuationSeparators are tried before connector words; the separator
// itself is dropped from both sides.
var punctuationSeparators = []string{" - ", " – ", " — ", ": "}

// SplitNameAndDescription splits a long label into a short dish name and a
// descriptive remainder. It is independent of ExtractItems on purpose: the
// same split is applied to labels coming out of the model-based structuring
// step, so both code paths produce the same output shape.
func SplitNameAndDescription(label string) NameSplit {
	if utf8.RuneCountInString(label) <= shortLabelLimit {
		return NameSplit{Name: label}
	}

	for _, sep := range punctuationSeparators {
		idx := strings.Index(label, sep)
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(label[:idx])
		desc := strings.TrimSpace(label[idx+len(sep):])
		if qualifiesSplit(name, desc) {
			return NameSplit{Name: name, Description: desc}
		}
	}

	words := splitWords(label)
	for _, conn := range connectorWords {
		idx := connectorStart(words, conn)
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(label[:idx])
		// The connector word stays with the description, not the name.
		desc := strings.TrimSpace(label[idx:])
		if qualifiesSplit(name, desc) {
			return NameSplit{Name: name, Description: desc}
		}
	}

	return NameSplit{Name: label}
}

// word is one whitespace-separated token with its byte offset in the
// original label, so case-insensitive matching can never desynchronize
// the split position (ToLower changes byte lengths for runes like "İ").
type word struct {
	text  string
	start int
}

func splitWords(s string) []word {
	var words []word
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, word{text: s[start:i], start: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, word{text: s[start:], start: start})
	}
	return words
}

// connectorStart returns the byte offset of the leftmost occurrence of
// conn (one or more words, matched fold-insensitively) that has words on
// both sides, or -1.
func connectorStart(words []word, conn string) int {
	connWords := strings.Fields(conn)
	for i := 1; i+len(connWords) < len(words); i++ {
		match := true
		for j, cw := range connWords {
			if !strings.EqualFold(words[i+j].text, cw) {
				match = false
				break
			}
		}
		if match {
			return words[i].start
		}
	}
	return -1
}

func qualifiesSplit(name, desc string) bool {
	return utf8.RuneCountInString(name) >= minSplitName &&
		utf8.RuneCountInString(desc) >= minSplitDescription
}
