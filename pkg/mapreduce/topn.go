package mapreduce

import (
	"sort"

	"github.com/dtnitsch/chat-word-frequency/pkg/analytics"
)

// WordCount is a single ranked word.
type WordCount struct {
	Word  string
	Count int
}

// TopN returns the n most frequent words, highest count first.
// Words with equal counts keep the counter's insertion order.
func TopN(counts *analytics.Counter, n int) []WordCount {
	ss := make([]WordCount, 0, counts.Len())
	counts.Each(func(word string, count int) {
		ss = append(ss, WordCount{word, count})
	})

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Count > ss[j].Count
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	return ss[:limit]
}
