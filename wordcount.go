package docshelf

import "strings"

// wordsPerMinute is the reading speed assumed by ReadingTime.
const wordsPerMinute = 200

// CountWords returns the number of prose words in a markdown fragment.
// Fenced code blocks are excluded: code listings say nothing about how much
// reading a page takes.
func CountWords(markdown string) int {
	if markdown == "" {
		return 0
	}

	count := 0
	var fence FenceState

	for _, line := range strings.SplitAfter(markdown, "\n") {
		if line == "" {
			continue
		}

		trimmed := strings.TrimRight(line, "\r\n")
		if fence.Open() {
			fence.Observe(trimmed)
			continue
		}
		if fence.Observe(trimmed) {
			continue
		}
		// Heading markers are markup, not words.
		if match := headingRe.FindStringSubmatch(trimmed); match != nil {
			trimmed = match[2]
		}
		count += len(strings.Fields(trimmed))
	}

	return count
}

// ReadingTime estimates reading time in whole minutes for a word count,
// with a minimum of one minute for non-empty content.
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return minutes
}
