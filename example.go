package docshelf

import "strings"

// CodeExample represents one fenced code block: a language tag as authored
// (possibly empty) and the literal code text, fence lines excluded.
type CodeExample struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// ExtractExamples returns the fenced code blocks of a markdown fragment in
// declaration order. Both ``` and ~~~ fences are recognized, with fences of
// three or more marker characters. The language tag is the first field of
// the info string. An unclosed fence runs to the end of the input.
func ExtractExamples(markdown string) []CodeExample {
	if markdown == "" {
		return nil
	}

	var examples []CodeExample
	var code strings.Builder
	var language string
	var fence FenceState

	for _, line := range strings.SplitAfter(markdown, "\n") {
		if line == "" {
			continue
		}

		trimmed := strings.TrimRight(line, "\r\n")
		wasOpen := fence.Open()
		toggled := fence.Observe(trimmed)

		switch {
		case toggled && !wasOpen:
			language = fenceLanguage(trimmed)
			code.Reset()
		case toggled && wasOpen:
			examples = append(examples, CodeExample{Language: language, Code: code.String()})
		case wasOpen:
			code.WriteString(line)
		}
	}

	if fence.Open() {
		examples = append(examples, CodeExample{Language: language, Code: code.String()})
	}
	return examples
}

// fenceLanguage extracts the language tag from a fence opening line.
func fenceLanguage(line string) string {
	rest := strings.TrimLeft(strings.TrimLeft(line, " "), "`~")
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
