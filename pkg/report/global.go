// Package report formats the shared-word and per-category reports and reads
// the shared-word report back as a stop-word set.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dtnitsch/chat-word-frequency/pkg/frequency"
)

// headerLines is the number of lines before the first word in a global report.
const headerLines = 2

var globalSeparator = strings.Repeat("-", 63)

// GlobalReport renders shared words as
//
//	word: cat1: n1, cat2: n2
//
// below a two-line header.
func GlobalReport(threshold int, words []frequency.WordEntry) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Words shared by at least %d categories (frequency per category):\n", threshold)
	buf.WriteString(globalSeparator + "\n")

	for _, entry := range words {
		parts := make([]string, len(entry.Categories))
		for i, cf := range entry.Categories {
			parts[i] = fmt.Sprintf("%s: %d", cf.Category, cf.Count)
		}
		fmt.Fprintf(&buf, "%s: %s\n", entry.Word, strings.Join(parts, ", "))
	}
	return buf.Bytes()
}
