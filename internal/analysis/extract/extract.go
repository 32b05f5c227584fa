// Package extract holds the best-effort heuristics that pull patient details
// out of free-form messages. Each heuristic reports (value, ok) and never
// fails loudly; a message it cannot read simply yields no value.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var agePattern = regexp.MustCompile(`\d{1,3}`)

// Name treats a message as a patient name when it has at least two
// whitespace-separated tokens and the first two are capitalized, joining
// those two. False negatives are acceptable.
func Name(message string) (string, bool) {
	words := strings.Fields(message)
	if len(words) < 2 {
		return "", false
	}
	for _, w := range words[:2] {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return "", false
		}
	}
	return words[0] + " " + words[1], true
}

// Age scans for the first run of up to three digits and accepts it only
// within the plausible human range, exclusive on both ends.
func Age(message string) (int, bool) {
	m := agePattern.FindString(message)
	if m == "" {
		return 0, false
	}
	val, err := strconv.Atoi(m)
	if err != nil || val <= 0 || val >= 150 {
		return 0, false
	}
	return val, true
}

// Query accepts the trimmed message as the patient's concern only when it is
// long enough to be meaningful.
func Query(message string) (string, bool) {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) <= 10 {
		return "", false
	}
	return trimmed, true
}
