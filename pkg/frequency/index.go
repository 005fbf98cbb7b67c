package frequency

import "sort"

// CategoryFrequency is the count of a word within one category.
type CategoryFrequency struct {
	Category string
	Count    int
}

// WordEntry lists the categories a word appears in, in category processing order.
type WordEntry struct {
	Word       string
	Categories []CategoryFrequency
}

// Total is the word's count summed over all its categories.
func (e WordEntry) Total() int {
	total := 0
	for _, cf := range e.Categories {
		total += cf.Count
	}
	return total
}

// Index maps each word to its per-category counts.
// Words are kept in the order they were first seen.
type Index struct {
	entries map[string]*WordEntry
	order   []string
}

// BuildIndex records every (category, word, count) triple of counts.
func BuildIndex(counts []CategoryCount) *Index {
	ix := &Index{entries: make(map[string]*WordEntry)}
	for _, cc := range counts {
		cc.Words.Each(func(word string, count int) {
			ix.add(word, cc.Category, count)
		})
	}
	return ix
}

func (ix *Index) add(word, category string, count int) {
	entry, ok := ix.entries[word]
	if !ok {
		entry = &WordEntry{Word: word}
		ix.entries[word] = entry
		ix.order = append(ix.order, word)
	}
	entry.Categories = append(entry.Categories, CategoryFrequency{Category: category, Count: count})
}

func (ix *Index) Len() int {
	return len(ix.order)
}

func (ix *Index) Lookup(word string) (WordEntry, bool) {
	entry, ok := ix.entries[word]
	if !ok {
		return WordEntry{}, false
	}
	return *entry, true
}

// Shared returns the words present in at least threshold categories,
// sorted by total count descending. Ties keep discovery order.
func (ix *Index) Shared(threshold int) []WordEntry {
	var shared []WordEntry
	for _, word := range ix.order {
		entry := ix.entries[word]
		if len(entry.Categories) >= threshold {
			shared = append(shared, *entry)
		}
	}

	sort.SliceStable(shared, func(i, j int) bool {
		return shared[i].Total() > shared[j].Total()
	})
	return shared
}
