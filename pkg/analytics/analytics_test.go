package analytics

import (
	"reflect"
	"regexp"
	"testing"
)

func TestTokenize(t *testing.T) {
	a := &Analytics{}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and drops numbers",
			text: "Hello World 123",
			want: []string{"hello", "world"},
		},
		{
			name: "keeps underscores and mixed digits",
			text: "foo_bar 42abc 007",
			want: []string{"foo_bar", "42abc"},
		},
		{
			name: "splits on punctuation",
			text: "Don't stop! (now)",
			want: []string{"don", "t", "stop", "now"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "only numbers",
			text: "1 22 333",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenize_TokenShape(t *testing.T) {
	a := &Analytics{}
	shape := regexp.MustCompile(`^[a-z0-9_]+$`)
	digits := regexp.MustCompile(`^[0-9]+$`)

	text := "MIXED case, 2024-01-01 snake_case CamelCase x86 ... 99 problems"
	for _, token := range a.Tokenize(text) {
		if !shape.MatchString(token) {
			t.Errorf("token %q is not a lowercase word token", token)
		}
		if digits.MatchString(token) {
			t.Errorf("token %q is numeric", token)
		}
	}
}

func TestWordFrequency(t *testing.T) {
	a := &Analytics{}
	counter := a.WordFrequency("Hello World 123 foo bar foo")

	wantOrder := []string{"hello", "world", "foo", "bar"}
	if got := counter.Words(); !reflect.DeepEqual(got, wantOrder) {
		t.Errorf("Words() = %v, want %v", got, wantOrder)
	}
	if got := counter.Get("foo"); got != 2 {
		t.Errorf("Get(foo) = %d, want 2", got)
	}
	if got := counter.Get("123"); got != 0 {
		t.Errorf("Get(123) = %d, want 0", got)
	}
	if got := counter.Total(); got != 5 {
		t.Errorf("Total() = %d, want 5", got)
	}
}
