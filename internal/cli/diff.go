package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tabula-historica/snapshot"
)

var (
	insertColor = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
)

// WriteDiff writes a line diff from the published snapshot to the fresh one.
// Both documents are pretty-printed first so single-line JSON produces a readable diff.
// It returns the number of changed lines.
func WriteDiff(w io.Writer, published, fresh []byte) (int, error) {
	from := prettyOrRaw(published)
	to := prettyOrRaw(fresh)

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	changed := 0
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, c = "+ ", insertColor
		case diffpatch.DiffDelete:
			prefix, c = "- ", deleteColor
		default:
			continue
		}
		for _, line := range splitLines(d.Text) {
			changed++
			if _, err := c.Fprintln(w, prefix+line); err != nil {
				return changed, fmt.Errorf("failed to write diff: %w", err)
			}
		}
	}
	return changed, nil
}

func prettyOrRaw(data []byte) string {
	if pretty, err := snapshot.Indent(data, "  "); err == nil {
		return string(pretty)
	}
	return string(data)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
