package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff between the previous and the new content of path
// in git diff style. Returns an empty string when nothing changed.
func Diff(previous, current []byte, path string) string {
	if bytes.Equal(previous, current) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(previous), string(current))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buffer bytes.Buffer
	buffer.WriteString(fmt.Sprintf("--- a/%s\n", path))
	buffer.WriteString(fmt.Sprintf("+++ b/%s\n", path))

	for _, diff := range diffs {
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch diff.Type {
			case diffmatchpatch.DiffInsert:
				color.New(color.FgGreen).Fprintf(&buffer, "+ %s\n", line)
			case diffmatchpatch.DiffDelete:
				color.New(color.FgRed).Fprintf(&buffer, "- %s\n", line)
			case diffmatchpatch.DiffEqual:
				buffer.WriteString(fmt.Sprintf("  %s\n", line))
			}
		}
	}

	return buffer.String()
}
