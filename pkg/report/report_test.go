package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/chat-word-frequency/pkg/frequency"
	"github.com/dtnitsch/chat-word-frequency/pkg/mapreduce"
)

var sharedEntries = []frequency.WordEntry{
	{Word: "the", Categories: []frequency.CategoryFrequency{{Category: "Coding", Count: 10}, {Category: "MBTI", Count: 4}}},
	{Word: "help", Categories: []frequency.CategoryFrequency{{Category: "MBTI", Count: 2}}},
}

func TestGlobalReport(t *testing.T) {
	got := string(GlobalReport(6, sharedEntries))
	want := "Words shared by at least 6 categories (frequency per category):\n" +
		"---------------------------------------------------------------\n" +
		"the: Coding: 10, MBTI: 4\n" +
		"help: MBTI: 2\n"

	if got != want {
		t.Errorf("GlobalReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestGlobalReport_NoWords(t *testing.T) {
	got := string(GlobalReport(6, nil))
	if lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n"); len(lines) != 2 {
		t.Errorf("GlobalReport(nil) has %d lines, want header only", len(lines))
	}
}

func TestParseStopWords(t *testing.T) {
	input := "Words shared by at least 6 categories (frequency per category):\n" +
		"-----\n" +
		"the: Coding: 10, MBTI: 4\n" +
		"\n" +
		"no colon here\n" +
		"   : empty: 1\n" +
		"  help : MBTI: 2\r\n"

	set, err := ParseStopWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseStopWords() error = %v", err)
	}

	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (%v)", set.Len(), set)
	}
	for _, w := range []string{"the", "help"} {
		if !set.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"no colon here", "", "Words shared by at least 6 categories (frequency per category)"} {
		if set.Contains(w) {
			t.Errorf("Contains(%q) = true, want false", w)
		}
	}
}

func TestParseStopWords_HeaderSkippedByPosition(t *testing.T) {
	set, err := ParseStopWords(strings.NewReader("first: 1\nsecond: 2\nthird: 3\n"))
	if err != nil {
		t.Fatalf("ParseStopWords() error = %v", err)
	}
	if set.Contains("first") || set.Contains("second") || !set.Contains("third") {
		t.Errorf("set = %v, want only third", set)
	}
}

func TestParseStopWords_RoundTrip(t *testing.T) {
	set, err := ParseStopWords(strings.NewReader(string(GlobalReport(6, sharedEntries))))
	if err != nil {
		t.Fatalf("ParseStopWords() error = %v", err)
	}

	want := StopWordsFromEntries(sharedEntries)
	if set.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", set.Len(), want.Len())
	}
	for w := range want {
		if !set.Contains(w) {
			t.Errorf("missing %q", w)
		}
	}
}

func TestLoadStopWords(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		set, found, err := LoadStopWords(filepath.Join(dir, "absent.txt"))
		if err != nil {
			t.Fatalf("LoadStopWords() error = %v", err)
		}
		if found {
			t.Error("found = true, want false")
		}
		if set == nil || set.Len() != 0 {
			t.Errorf("set = %v, want empty non-nil set", set)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(dir, "global.txt")
		if err := os.WriteFile(path, GlobalReport(6, sharedEntries), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		set, found, err := LoadStopWords(path)
		if err != nil {
			t.Fatalf("LoadStopWords() error = %v", err)
		}
		if !found || !set.Contains("the") || !set.Contains("help") {
			t.Errorf("found = %v, set = %v, want both words", found, set)
		}
	})

	t.Run("directory is an error", func(t *testing.T) {
		if _, _, err := LoadStopWords(dir); err == nil {
			t.Error("LoadStopWords(dir) error = nil, want error")
		}
	})
}

func TestPerCategoryReport(t *testing.T) {
	tops := []frequency.CategoryTop{
		{Category: "Coding", Words: []mapreduce.WordCount{{Word: "python", Count: 3}, {Word: "bash", Count: 1}}},
		{Category: "MBTI"},
	}

	got := string(PerCategoryReport(tops))
	want := "Category: Coding\n" +
		"----------------\n" +
		"python: 3\n" +
		"bash: 1\n" +
		"\n\n" +
		"Category: MBTI\n" +
		"--------------\n" +
		"\n\n"

	if got != want {
		t.Errorf("PerCategoryReport() =\n%q\nwant\n%q", got, want)
	}
}
