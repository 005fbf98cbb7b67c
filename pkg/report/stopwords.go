package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dtnitsch/chat-word-frequency/pkg/frequency"
)

// StopWordSet holds the words excluded from per-category reports.
type StopWordSet map[string]struct{}

func (s StopWordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s StopWordSet) Len() int {
	return len(s)
}

// StopWordsFromEntries builds the set straight from analysis results.
func StopWordsFromEntries(entries []frequency.WordEntry) StopWordSet {
	set := make(StopWordSet, len(entries))
	for _, e := range entries {
		set[e.Word] = struct{}{}
	}
	return set
}

// ParseStopWords reads a global report. The header is skipped by position;
// every later line contributes the text before its first colon. Blank lines,
// lines without a colon and lines with nothing before the colon are ignored.
func ParseStopWords(r io.Reader) (StopWordSet, error) {
	set := make(StopWordSet)
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scan.Scan() {
		lineNo++
		if lineNo <= headerLines {
			continue
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		word, _, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if word = strings.TrimSpace(word); word != "" {
			set[word] = struct{}{}
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stop words: %w", err)
	}
	return set, nil
}

// LoadStopWords reads the stop words of a global report file.
// found is false, with an empty set and no error, when the file does not exist.
func LoadStopWords(path string) (set StopWordSet, found bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return StopWordSet{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to open stop word file: %w", err)
	}
	defer f.Close()

	set, err = ParseStopWords(f)
	if err != nil {
		return nil, true, err
	}
	return set, true, nil
}
