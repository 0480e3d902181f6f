// Package input turns raw text-field content into the ordered line lists
// the widgets work with.
package input

import "strings"

// Lines splits text on newlines and keeps the non-empty trimmed lines in order
func Lines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Join is the inverse of Lines for persistence and editor prefill
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Duplicates returns every value that appears more than once, in order of
// its second appearance
func Duplicates(items []string) []string {
	seen := make(map[string]int, len(items))
	var dups []string
	for _, item := range items {
		seen[item]++
		if seen[item] == 2 {
			dups = append(dups, item)
		}
	}
	return dups
}
