// Package categorize assigns categories to chats by keyword matching.
//
// Every category in the corpus dictionary carries a list of keywords. A
// keyword wrapped in slashes, such as /foo.*bar/, is a case-insensitive
// regular expression; any other keyword is a lowercase substring. A chat
// receives each category with at least one keyword matching its lowercased
// title and messages.
package categorize

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dtnitsch/chat-word-frequency/models"
)

type keyword struct {
	pattern *regexp.Regexp
	literal string
}

func (k keyword) matches(text string) bool {
	if k.pattern != nil {
		return k.pattern.MatchString(text)
	}
	return strings.Contains(text, k.literal)
}

// parseKeyword turns a raw keyword into a matcher. A regular expression that
// does not compile falls back to a literal match and returns the compile error.
func parseKeyword(raw string) (keyword, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 2 && strings.HasPrefix(trimmed, "/") && strings.HasSuffix(trimmed, "/") {
		pattern, err := regexp.Compile("(?i)" + trimmed[1:len(trimmed)-1])
		if err == nil {
			return keyword{pattern: pattern}, nil
		}
		return keyword{literal: strings.ToLower(raw)}, fmt.Errorf("invalid regex keyword %s: %w", raw, err)
	}
	return keyword{literal: strings.ToLower(raw)}, nil
}

type rule struct {
	category string
	keywords []keyword
}

// Assigner holds the compiled keyword rules of a category dictionary.
type Assigner struct {
	rules []rule
}

// NewAssigner compiles the keywords of every category, in dictionary order.
// Invalid regular expressions are logged and matched literally.
func NewAssigner(categories models.Categories, logger *slog.Logger) *Assigner {
	a := &Assigner{rules: make([]rule, 0, len(categories))}
	for _, cat := range categories {
		r := rule{category: cat.Name}
		for _, raw := range cat.Keywords {
			kw, err := parseKeyword(raw)
			if err != nil && logger != nil {
				logger.Warn("Using plain string for keyword", "category", cat.Name, "keyword", raw, "error", err)
			}
			r.keywords = append(r.keywords, kw)
		}
		a.rules = append(a.rules, r)
	}
	return a
}

// Match returns the categories whose keywords match the text.
func (a *Assigner) Match(text string) []string {
	lowered := strings.ToLower(text)
	matched := []string{}
	for _, r := range a.rules {
		for _, kw := range r.keywords {
			if kw.matches(lowered) {
				matched = append(matched, r.category)
				break
			}
		}
	}
	return matched
}

// Assign replaces the categories of every chat in the corpus and returns
// the number of chats that received at least one category.
func (a *Assigner) Assign(corpus *models.Corpus) int {
	assigned := 0
	for i := range corpus.Chats {
		chat := &corpus.Chats[i]
		chat.Categories = a.Match(chat.FullText())
		if len(chat.Categories) > 0 {
			assigned++
		}
	}
	return assigned
}
