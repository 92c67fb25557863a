package value

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Graphemes splits s into user-perceived characters: a base rune followed
// by any combining marks, a pair of regional-indicator runes (flag
// sequences), or a run of scalars joined by U+200D ZERO WIDTH JOINER, is
// one cluster. s is first run through NFC normalization so that
// precomposed and decomposed forms of the same visible character segment
// identically.
//
// This is not a full UAX #29 grapheme-cluster segmenter: no such library
// is available to this project (see DESIGN.md). It covers the cases the
// guest language's string-subscript contract is tested against (combining
// marks, ZWJ emoji sequences, regional-indicator flags) without claiming
// completeness for every Unicode edge case.
func Graphemes(s string) []string {
	s = norm.NFC.String(s)
	runes := []rune(s)
	var clusters []string
	i := 0
	for i < len(runes) {
		start := i
		i++
		for i < len(runes) {
			r := runes[i]
			if isCombiningMark(r) {
				i++
				continue
			}
			if runes[i-1] == zeroWidthJoinerRune && !isCombiningMark(r) {
				i++
				continue
			}
			if i+1 <= len(runes) && isRegionalIndicator(runes[start]) && i == start+1 && isRegionalIndicator(r) {
				i++
				continue
			}
			break
		}
		clusters = append(clusters, string(runes[start:i]))
	}
	return clusters
}

const zeroWidthJoinerRune = '‍'

func isCombiningMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) || r == zeroWidthJoinerRune
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// GraphemeLen returns the number of grapheme clusters in s, used by len(s).
func GraphemeLen(s string) int {
	return len(Graphemes(s))
}

// GraphemeAt returns the grapheme cluster at the given zero-based index,
// and whether the index was in range.
func GraphemeAt(s string, idx int64) (string, bool) {
	g := Graphemes(s)
	if idx < 0 || idx >= int64(len(g)) {
		return "", false
	}
	return g[idx], true
}
