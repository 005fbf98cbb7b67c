package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dtnitsch/chat-word-frequency/pkg/frequency"
)

// PerCategoryReport renders one block per category: a "Category: <name>"
// header, a dashed underline, the ranked words and two blank lines.
func PerCategoryReport(tops []frequency.CategoryTop) []byte {
	var buf bytes.Buffer
	for _, top := range tops {
		fmt.Fprintf(&buf, "Category: %s\n", top.Category)
		buf.WriteString(strings.Repeat("-", 10+len(top.Category)) + "\n")
		for _, wc := range top.Words {
			fmt.Fprintf(&buf, "%s: %d\n", wc.Word, wc.Count)
		}
		buf.WriteString("\n\n")
	}
	return buf.Bytes()
}
