package analytics

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern captures maximal runs of ASCII letters, digits and underscores.
var wordPattern = regexp.MustCompile(`\b\w+\b`)

type Analytics struct{}

// Tokenize lowercases text and splits it into word tokens.
// Tokens made only of digits are dropped.
func (a *Analytics) Tokenize(text string) []string {
	lowered := cases.Lower(language.Und).String(text)
	matches := wordPattern.FindAllString(lowered, -1)

	tokens := make([]string, 0, len(matches))
	for _, word := range matches {
		if isNumeric(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// WordFrequency counts the tokens of text in order of first appearance.
func (a *Analytics) WordFrequency(text string) *Counter {
	counter := NewCounter()
	counter.Add(a.Tokenize(text)...)
	return counter
}

func isNumeric(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return word != ""
}
