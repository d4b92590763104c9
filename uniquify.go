package server

import (
	"slices"
	"strconv"
	"strings"
)

// stripDigits removes every decimal digit from s.
func stripDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UniqueName returns candidate unchanged when it does not collide with any
// existing name. Otherwise it builds a histogram of the existing names with
// their digits stripped (the first occurrence of a base counts zero) and
// returns candidate with count+1 appended as a decimal suffix.
//
// The computed suffix is not re-checked against existing names that already
// carry a numeric suffix, so "Orc" against {"Orc", "Orc2"} yields "Orc2"
// again. Known limitation, kept as-is.
func UniqueName(candidate string, existing []string) string {
	if !slices.Contains(existing, candidate) {
		return candidate
	}

	counts := make(map[string]int, len(existing))
	for _, name := range existing {
		base := stripDigits(name)
		if _, ok := counts[base]; ok {
			counts[base]++
		} else {
			counts[base] = 0
		}
	}

	return candidate + strconv.Itoa(counts[stripDigits(candidate)]+1)
}
