package frequency

import (
	"github.com/dtnitsch/chat-word-frequency/pkg/mapreduce"
)

// Excluder decides which words are left out of a per-category ranking.
type Excluder interface {
	Contains(word string) bool
}

// CategoryTop is the ranked word list of one category.
type CategoryTop struct {
	Category string
	Chats    int
	Distinct int
	Excluded int
	Words    []mapreduce.WordCount
}

// TopByCategory removes excluded words from every counter and keeps the
// n most frequent of the rest.
func TopByCategory(counts []CategoryCount, exclude Excluder, n int) []CategoryTop {
	tops := make([]CategoryTop, 0, len(counts))
	for _, cc := range counts {
		filtered := cc.Words
		if exclude != nil {
			filtered = cc.Words.Without(exclude.Contains)
		}
		tops = append(tops, CategoryTop{
			Category: cc.Category,
			Chats:    cc.Chats,
			Distinct: cc.Words.Len(),
			Excluded: cc.Words.Len() - filtered.Len(),
			Words:    mapreduce.TopN(filtered, n),
		})
	}
	return tops
}
