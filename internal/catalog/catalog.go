package catalog

// Catalog is an immutable, ordered collection of words.
// Accessors return copies so callers cannot mutate the catalog.
type Catalog struct {
	words []Word
	byID  map[string]int
}

// New validates words and builds a catalog preserving their order.
func New(words []Word) (*Catalog, error) {
	if err := validateWords(words); err != nil {
		return nil, err
	}

	c := &Catalog{
		words: make([]Word, len(words)),
		byID:  make(map[string]int, len(words)),
	}
	copy(c.words, words)
	for i, w := range c.words {
		c.byID[w.ID] = i
	}
	return c, nil
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.words)
}

// All returns every word in insertion order.
func (c *Catalog) All() []Word {
	out := make([]Word, len(c.words))
	copy(out, c.words)
	return out
}

// ByID looks up a word by its identifier.
func (c *Catalog) ByID(id string) (Word, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Word{}, false
	}
	return c.words[i], true
}

// FindRussian returns the first word whose Russian text equals s.
func (c *Catalog) FindRussian(s string) (Word, bool) {
	for _, w := range c.words {
		if w.Russian == s {
			return w, true
		}
	}
	return Word{}, false
}

// FilterByCategory returns the words tagged cat, or the whole catalog for
// CategoryAll. Insertion order is preserved.
func (c *Catalog) FilterByCategory(cat Category) []Word {
	if cat == CategoryAll {
		return c.All()
	}
	var out []Word
	for _, w := range c.words {
		if w.Category == cat {
			out = append(out, w)
		}
	}
	return out
}

// Count returns how many words FilterByCategory(cat) would return.
func (c *Catalog) Count(cat Category) int {
	if cat == CategoryAll {
		return len(c.words)
	}
	n := 0
	for _, w := range c.words {
		if w.Category == cat {
			n++
		}
	}
	return n
}

// Slice returns up to count words of base starting at start. It returns
// fewer when base is exhausted and an empty slice when start lies outside base.
func Slice(base []Word, start, count int) []Word {
	if start < 0 || count <= 0 || start >= len(base) {
		return []Word{}
	}
	end := start + min(count, len(base)-start)
	out := make([]Word, end-start)
	copy(out, base[start:end])
	return out
}
