package mapreduce

import "github.com/dtnitsch/chat-word-frequency/pkg/analytics"

// Map generates a word frequency counter for a single chat's text.
func Map(content string, a *analytics.Analytics) *analytics.Counter {
	return a.WordFrequency(content)
}

// Reduce aggregates counters into a single counter. Words keep the order
// in which they first appear across the inputs.
func Reduce(intermediate []*analytics.Counter) *analytics.Counter {
	finalResults := analytics.NewCounter()

	for _, counts := range intermediate {
		finalResults.Merge(counts)
	}

	return finalResults
}
