package logging

import (
	"strings"

	"github.com/jsamuelsen/signin-widget-helpers/internal/ports"
)

// DebugMessage normalizes a multi-line message and sends it to sink as a
// single warning. See FormatDebugMessage for the normalization rules.
func DebugMessage(sink ports.Warner, message string) {
	if sink == nil {
		return
	}

	sink.Warn(FormatDebugMessage(message))
}

// FormatDebugMessage tidies a message written as an indented raw string
// literal. One leading and one trailing blank line are dropped, the
// whitespace prefix shared by every non-blank line is removed, and the result
// is framed by a newline on each side. Whitespace-only lines become empty;
// other lines keep their trailing whitespace.
//
//	`
//	    Multi-line
//	    Message
//	`  →  "\nMulti-line\nMessage\n"
func FormatDebugMessage(message string) string {
	lines := strings.Split(message, "\n")

	if len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	margin := commonIndent(lines)
	for i, line := range lines {
		if isBlank(line) {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimPrefix(line, margin)
	}

	return "\n" + strings.Join(lines, "\n") + "\n"
}

// commonIndent returns the longest whitespace prefix shared by all non-blank
// lines. Tabs and spaces are compared literally.
func commonIndent(lines []string) string {
	var (
		margin string
		found  bool
	)

	for _, line := range lines {
		if isBlank(line) {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			margin, found = indent, true
			continue
		}

		n := 0
		for n < len(margin) && n < len(indent) && margin[n] == indent[n] {
			n++
		}
		margin = margin[:n]
	}

	return margin
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
