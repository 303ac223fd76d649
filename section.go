package docshelf

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Section represents one titled segment of a document: a heading, the
// authored body text, and the code examples embedded in it.
//
// Body is a verbatim slice of the document content, heading line included.
// Concatenating the bodies of all sections reproduces the document exactly;
// nothing is trimmed, rewrapped, or reordered.
type Section struct {
	Level    int           `json:"level"`
	Heading  string        `json:"heading"`
	Anchor   string        `json:"anchor"`
	Body     string        `json:"body"`
	Examples []CodeExample `json:"examples,omitempty"`
}

// headingRe matches ATX headings: # through ###### followed by a title.
var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// SplitSections parses markdown into its ordered sections.
//
// Text before the first heading becomes a level-0 section with an empty
// heading. Headings inside fenced code blocks are ignored. Anchors are
// URL-safe and unique within the document; duplicates get numeric suffixes.
// A document without headings yields a single level-0 section.
func SplitSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	var sections []Section
	var body strings.Builder
	current := Section{Level: 0, Heading: ""}

	flush := func() {
		if body.Len() == 0 && current.Level == 0 && current.Heading == "" && len(sections) == 0 {
			// Empty preamble: the document starts with a heading.
			return
		}
		current.Body = body.String()
		current.Examples = ExtractExamples(current.Body)
		sections = append(sections, current)
		body.Reset()
	}

	anchorCounts := make(map[string]int)
	var fence FenceState

	for _, line := range strings.SplitAfter(markdown, "\n") {
		if line == "" {
			continue
		}

		trimmed := strings.TrimRight(line, "\r\n")
		if fence.Open() {
			fence.Observe(trimmed)
			body.WriteString(line)
			continue
		}
		if fence.Observe(trimmed) {
			body.WriteString(line)
			continue
		}

		if match := headingRe.FindStringSubmatch(trimmed); match != nil {
			flush()
			title := strings.TrimSpace(match[2])
			current = Section{
				Level:   len(match[1]),
				Heading: title,
				Anchor:  uniqueAnchor(title, anchorCounts),
			}
		}
		body.WriteString(line)
	}

	flush()
	return sections
}

// ExtractSections returns the heading outline of a markdown document:
// every H1-H6 section in declaration order, bodies omitted. The level-0
// preamble, having no heading, is excluded.
func ExtractSections(markdown string) []Section {
	full := SplitSections(markdown)
	if len(full) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(full))
	for _, s := range full {
		if s.Level == 0 {
			continue
		}
		sections = append(sections, Section{
			Level:   s.Level,
			Heading: s.Heading,
			Anchor:  s.Anchor,
		})
	}
	if len(sections) == 0 {
		return nil
	}
	return sections
}

// uniqueAnchor generates an anchor for title, appending -1, -2, … when the
// base anchor was already used in this document.
func uniqueAnchor(title string, counts map[string]int) string {
	base := generateAnchor(title)
	anchor := base
	if count, exists := counts[base]; exists {
		anchor = base + "-" + strconv.Itoa(count)
		counts[base]++
	} else {
		counts[base] = 1
	}
	return anchor
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}

// FenceState tracks whether a line scanner is inside a fenced code block.
// Every scanner that walks markdown line by line shares it so they all
// agree on what opens and closes a fence: a closing fence must repeat the
// opening marker, be at least as long, and carry no info text.
type FenceState struct {
	open   bool
	marker byte
	length int
}

// Open reports whether the scanner is currently inside a fence.
func (f *FenceState) Open() bool {
	return f.open
}

// Observe inspects one line (terminators stripped) and updates the fence
// state. It returns true if the line opens or closes a fence.
func (f *FenceState) Observe(line string) bool {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	if indent > 3 || indent == len(line) {
		return false
	}

	marker := line[indent]
	if marker != '`' && marker != '~' {
		return false
	}
	length := 0
	for i := indent; i < len(line) && line[i] == marker; i++ {
		length++
	}
	if length < 3 {
		return false
	}

	if !f.open {
		f.open = true
		f.marker = marker
		f.length = length
		return true
	}

	// A closing fence uses the same marker, at least as long, with nothing
	// but whitespace after it.
	rest := strings.TrimSpace(line[indent+length:])
	if marker == f.marker && length >= f.length && rest == "" {
		f.open = false
		return true
	}
	return false
}
