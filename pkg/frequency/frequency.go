// Package frequency aggregates word counts per category and finds the words
// shared by many categories.
package frequency

import (
	"errors"

	"github.com/dtnitsch/chat-word-frequency/models"
	"github.com/dtnitsch/chat-word-frequency/pkg/analytics"
	"github.com/dtnitsch/chat-word-frequency/pkg/mapreduce"
)

// ErrNoCategorizedChats is returned when no category has a single chat assigned.
var ErrNoCategorizedChats = errors.New("no categories with assigned chats found")

// CategoryCount is the word counter of one category.
type CategoryCount struct {
	Category string
	Chats    int
	Words    *analytics.Counter
}

// CountByCategory builds a counter for every category in dictionary order.
// Categories without chats get an empty counter.
func CountByCategory(corpus *models.Corpus, a *analytics.Analytics) []CategoryCount {
	counts := make([]CategoryCount, 0, len(corpus.Categories))
	for _, name := range corpus.Categories.Names() {
		chats := corpus.ChatsFor(name)

		intermediate := make([]*analytics.Counter, 0, len(chats))
		for _, chat := range chats {
			intermediate = append(intermediate, mapreduce.Map(chat.FullText(), a))
		}

		counts = append(counts, CategoryCount{
			Category: name,
			Chats:    len(chats),
			Words:    mapreduce.Reduce(intermediate),
		})
	}
	return counts
}

// Populated drops categories that have no chats.
func Populated(counts []CategoryCount) []CategoryCount {
	var out []CategoryCount
	for _, c := range counts {
		if c.Chats > 0 {
			out = append(out, c)
		}
	}
	return out
}

// GlobalResult is the outcome of the shared-word analysis.
type GlobalResult struct {
	Threshold int
	Counts    []CategoryCount
	Index     *Index
	Shared    []WordEntry
}

// Analyze counts words per category and returns the words found in at
// least threshold categories, most frequent first.
func Analyze(corpus *models.Corpus, a *analytics.Analytics, threshold int) (*GlobalResult, error) {
	counts := Populated(CountByCategory(corpus, a))
	if len(counts) == 0 {
		return nil, ErrNoCategorizedChats
	}

	index := BuildIndex(counts)
	return &GlobalResult{
		Threshold: threshold,
		Counts:    counts,
		Index:     index,
		Shared:    index.Shared(threshold),
	}, nil
}
