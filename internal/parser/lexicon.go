package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Section-heading keywords recognized during segmentation and
// classification. Hand-curated from English and Serbian/Croatian menus
// seen in real uploads. This is replaceable data, not grammar: extend the
// list, don't touch the matching code. Longer phrases must come before
// their prefixes so the alternation prefers them.
var sectionKeywords = []string{
	"starters", "appetizers", "main courses", "mains", "desserts",
	"beverages", "drinks", "salads", "soups", "sides", "specials",
	"breakfast", "pizzas", "burgers", "cocktails", "wines",
	"predjela", "glavna jela", "deserti", "dezerti", "salate",
	"supe", "čorbe", "pića", "roštilj", "riblji specijaliteti",
}

// Connector words that introduce a descriptive tail inside a long label.
// The connector stays on the description side of a split. Mixed-language
// for the same reason as sectionKeywords.
var connectorWords = []string{
	"served with", "with", "topped with", "sa", "uz", "na",
}

// priceToken matches an optional currency symbol, one to four integer
// digits, an optional one-or-two digit fraction after "." or "," and an
// optional trailing currency symbol. RE2 has no lookahead, so the
// "not immediately followed by another digit" rule lives in
// findPriceTokens, not here.
var priceToken = regexp.MustCompile(`[$€£]?[ ]?\d{1,4}(?:[.,]\d{1,2})?[ ]?[$€£]?`)

// currencySymbol is padded with spaces during normalization so a glued
// "Pizza12€" still tokenizes.
var currencySymbol = regexp.MustCompile(`[$€£]`)

// interiorWhitespace collapses every whitespace run that contains no
// newline. Newlines survive normalization: when the OCR engine does return
// real line breaks they are the best segmentation signal we have.
var interiorWhitespace = regexp.MustCompile(`[^\S\n]+`)

var headingKeyword = compileHeadingKeyword()

// compileHeadingKeyword builds the case-insensitive keyword alternation
// WITHOUT \b anchors: RE2's \b only knows ASCII word characters, so a
// keyword starting or ending in "č" would never match at a space. Word
// boundaries are checked per match in findHeadingSpans instead, the same
// post-filter technique findPriceTokens uses.
func compileHeadingKeyword() *regexp.Regexp {
	quoted := make([]string, len(sectionKeywords))
	for i, kw := range sectionKeywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
}

// findHeadingSpans returns the [start, end) byte ranges of every keyword
// occurrence in s that sits on real word boundaries: the runes directly
// before and after the match must not be letters or digits, so "mains"
// inside "romains" never counts.
func findHeadingSpans(s string) [][]int {
	matches := headingKeyword.FindAllStringIndex(s, -1)
	spans := make([][]int, 0, len(matches))
	for _, m := range matches {
		if before, size := utf8.DecodeLastRuneInString(s[:m[0]]); size > 0 && isWordRune(before) {
			continue
		}
		if after, size := utf8.DecodeRuneInString(s[m[1]:]); size > 0 && isWordRune(after) {
			continue
		}
		spans = append(spans, m)
	}
	return spans
}

func containsHeadingKeyword(s string) bool {
	return len(findHeadingSpans(s)) > 0
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// findPriceTokens returns the [start, end) byte ranges of every price
// token in s, skipping matches that touch another digit on either side
// (part of a phone number, a year, a five-digit code). The trailing check
// alone is not enough: the rejected prefix of a long digit run would leave
// a residue that re-matches, so a match whose first byte directly follows
// a digit is rejected too. A fresh slice is produced per call so nested
// scans never share matcher state.
func findPriceTokens(s string) [][]int {
	matches := priceToken.FindAllStringIndex(s, -1)
	tokens := make([][]int, 0, len(matches))
	for _, m := range matches {
		if m[1] < len(s) && s[m[1]] >= '0' && s[m[1]] <= '9' {
			continue
		}
		if m[0] > 0 && s[m[0]-1] >= '0' && s[m[0]-1] <= '9' {
			continue
		}
		tokens = append(tokens, m)
	}
	return tokens
}
