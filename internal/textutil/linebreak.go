package textutil

import (
	"strings"
	"unicode/utf8"
)

// BreakThreshold is the string length in characters below which no line
// break is attempted. Card cells comfortably fit about this many characters
// of the 5.2px caption font on one line.
const BreakThreshold = 24

// BreakLines splits s into one or two lines for display on a card. Strings
// shorter than BreakThreshold stay on a single line. Longer strings are
// split at the interior word boundary that most evenly balances character
// counts between the two lines; on a tie the earliest boundary wins. Lengths
// are measured in runes so accented names are not penalized for their byte
// encoding. This is a heuristic over character counts, not rendered text
// width, but it is good enough for artist and title lines.
//
// Strings with fewer than three words are returned unsplit even when long:
// there is no interior boundary that leaves at least one word on each side
// worth preferring over the original.
//
// Joining the returned lines with a single space always reproduces the
// original word sequence.
func BreakLines(s string) []string {
	if utf8.RuneCountInString(s) < BreakThreshold {
		return []string{s}
	}

	words := strings.Split(s, " ")

	top, bottom := s, ""
	diff := utf8.RuneCountInString(s)
	for i := 1; i < len(words)-1; i++ {
		t := strings.Join(words[:i], " ")
		b := strings.Join(words[i:], " ")
		d := utf8.RuneCountInString(t) - utf8.RuneCountInString(b)
		if d < 0 {
			d = -d
		}
		if d < diff {
			top, bottom, diff = t, b, d
		}
	}

	if bottom == "" {
		return []string{top}
	}
	return []string{top, bottom}
}
