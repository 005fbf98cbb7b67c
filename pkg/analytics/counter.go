package analytics

// Counter maps words to occurrence counts and remembers the order in
// which each word was first added. Iteration follows that order.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count of every word by one.
func (c *Counter) Add(words ...string) {
	for _, w := range words {
		c.AddCount(w, 1)
	}
}

// AddCount increments word by n. Non-positive n is ignored.
func (c *Counter) AddCount(word string, n int) {
	if n <= 0 {
		return
	}
	if _, ok := c.counts[word]; !ok {
		c.order = append(c.order, word)
	}
	c.counts[word] += n
}

// Merge adds every count of other, in other's insertion order.
func (c *Counter) Merge(other *Counter) {
	if other == nil {
		return
	}
	for _, w := range other.order {
		c.AddCount(w, other.counts[w])
	}
}

func (c *Counter) Get(word string) int {
	return c.counts[word]
}

func (c *Counter) Len() int {
	return len(c.order)
}

// Total is the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Words returns the words in insertion order.
func (c *Counter) Words() []string {
	return append([]string(nil), c.order...)
}

// Each calls fn for every word in insertion order.
func (c *Counter) Each(fn func(word string, count int)) {
	for _, w := range c.order {
		fn(w, c.counts[w])
	}
}

// Without returns a new counter minus every word for which exclude returns true.
func (c *Counter) Without(exclude func(word string) bool) *Counter {
	out := NewCounter()
	for _, w := range c.order {
		if exclude != nil && exclude(w) {
			continue
		}
		out.AddCount(w, c.counts[w])
	}
	return out
}
