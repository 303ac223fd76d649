package docshelf

import "strings"

// FormatDocuments formats documents for plain-text display, e.g. the
// `docs --full` listing. Uses the title if available, falls back to the
// slug. Documents are separated by blank lines; bodies stay verbatim.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.Title
		if header == "" {
			header = doc.Slug
		}
		parts = append(parts, "## Document: "+header+"\n"+doc.Content)
	}

	return strings.Join(parts, "\n\n")
}

// FormatOutline formats a section outline as an indented plain-text tree.
// Each entry is indented two spaces per heading level below the shallowest
// one present.
func FormatOutline(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}

	minLevel := sections[0].Level
	for _, s := range sections {
		if s.Level < minLevel {
			minLevel = s.Level
		}
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("  ", s.Level-minLevel))
		b.WriteString(s.Heading)
		if s.Anchor != "" {
			b.WriteString("  #")
			b.WriteString(s.Anchor)
		}
	}
	return b.String()
}
