package selection

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/slovo/internal/catalog"
)

// PackSize is the number of words in one pack.
const PackSize = 10

// MinPacks is the number of packs always offered for a category, even when
// the category has fewer words. Trailing packs are then empty.
const MinPacks = 5

// Ordering controls whether a derived set keeps catalog order.
type Ordering int

const (
	Sequential Ordering = iota
	Randomized
)

func (o Ordering) String() string {
	if o == Randomized {
		return "randomized"
	}
	return "sequential"
}

// Config scopes a session to one pack of one category.
type Config struct {
	Category  catalog.Category
	PackIndex int
	Ordering  Ordering
}

// DeriveActiveSet filters the catalog by category, slices out the configured
// pack, and shuffles it when ordering is Randomized. The result is empty when
// the pack lies beyond the filtered words. A nil rng uses a time-seeded source.
func DeriveActiveSet(c *catalog.Catalog, cfg Config, rng *rand.Rand) []catalog.Word {
	filtered := c.FilterByCategory(cfg.Category)
	if cfg.PackIndex < 0 || cfg.PackIndex >= (len(filtered)+PackSize-1)/PackSize {
		return []catalog.Word{}
	}
	set := catalog.Slice(filtered, cfg.PackIndex*PackSize, PackSize)

	if cfg.Ordering == Randomized {
		Shuffle(set, rng)
	}
	return set
}

// PackCount returns how many packs to offer for a category.
func PackCount(c *catalog.Catalog, cat catalog.Category) int {
	n := c.Count(cat)
	packs := (n + PackSize - 1) / PackSize
	return max(packs, MinPacks)
}

// PackLabel renders the 1-based word range of a pack, e.g. "11 - 20".
func PackLabel(index int) string {
	start := index*PackSize + 1
	return fmt.Sprintf("%d - %d", start, start+PackSize-1)
}

// Pack describes one selectable pack.
type Pack struct {
	Index int
	Label string
	Size  int
}

// Packs lists every pack offered for a category with its actual size.
func Packs(c *catalog.Catalog, cat catalog.Category) []Pack {
	total := c.Count(cat)
	count := PackCount(c, cat)
	out := make([]Pack, count)
	for i := range out {
		size := min(max(total-i*PackSize, 0), PackSize)
		out[i] = Pack{Index: i, Label: PackLabel(i), Size: size}
	}
	return out
}
