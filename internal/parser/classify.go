package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// headingCapitalRatio is the minimum share of upper-case letters (among
// letters only) for a line to be judged a heading. Tuned on sample menus;
// part of the algorithm's identity, not a feature surface.
const headingCapitalRatio = 0.7

// headingShortWordLen: a one-or-two word line only qualifies as a heading
// when every word is longer than this many runes, so "OK" or "DBL 5" style
// fragments don't open a bogus section.
const headingShortWordLen = 4

// IsSectionHeader reports whether a pseudo-line looks like a menu category
// heading rather than an item line. A known keyword always wins. Otherwise
// the line must carry no digit (prices and quantities mark item lines even
// when shouted in caps), have either more than two words or only long
// words, and be mostly upper-case. False positives and negatives are an
// accepted property of OCR heuristics.
func IsSectionHeader(line string) bool {
	if containsHeadingKeyword(line) {
		return true
	}

	if strings.ContainsFunc(line, unicode.IsDigit) {
		return false
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	if len(words) <= 2 {
		for _, w := range words {
			if utf8.RuneCountInString(w) <= headingShortWordLen {
				return false
			}
		}
	}

	var letters, upper int
	for _, r := range line {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return false
	}

	return float64(upper)/float64(letters) > headingCapitalRatio
}
