package selection

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/abhisek/slovo/internal/catalog"
)

// testCatalog builds 12 verbs, 25 nouns and 3 numbers.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var words []catalog.Word
	add := func(cat catalog.Category, n int) {
		for i := range n {
			words = append(words, catalog.Word{
				ID:       fmt.Sprintf("%s-%02d", cat, i),
				Russian:  fmt.Sprintf("ru-%s-%d", cat, i),
				French:   fmt.Sprintf("fr-%s-%d", cat, i),
				Category: cat,
			})
		}
	}
	add(catalog.CategoryVerb, 12)
	add(catalog.CategoryNoun, 25)
	add(catalog.CategoryNumber, 3)

	c, err := catalog.New(words)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func ids(words []catalog.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func TestDeriveActiveSetOutOfRangePack(t *testing.T) {
	c := testCatalog(t)

	for _, p := range []int{-1, 3, 1 << 62, math.MaxInt / 5, math.MaxInt/10 + 1, math.MaxInt} {
		got := DeriveActiveSet(c, Config{Category: catalog.CategoryNoun, PackIndex: p}, NewRand(1))
		if got == nil || len(got) != 0 {
			t.Errorf("pack %d: got %v, want empty", p, ids(got))
		}
	}
}

func TestDeriveActiveSetLength(t *testing.T) {
	c := testCatalog(t)

	for _, cat := range []catalog.Category{catalog.CategoryVerb, catalog.CategoryNoun, catalog.CategoryNumber, catalog.CategoryAll} {
		filtered := c.Count(cat)
		for p := range 6 {
			for _, ord := range []Ordering{Sequential, Randomized} {
				got := DeriveActiveSet(c, Config{Category: cat, PackIndex: p, Ordering: ord}, NewRand(7))
				want := min(PackSize, max(0, filtered-p*PackSize))
				if len(got) != want {
					t.Errorf("%s pack %d %s: len = %d, want %d", cat, p, ord, len(got), want)
				}
			}
		}
	}
}

func TestTwelveVerbsSecondPack(t *testing.T) {
	c := testCatalog(t)
	got := DeriveActiveSet(c, Config{Category: catalog.CategoryVerb, PackIndex: 1}, nil)

	want := []string{"verb-10", "verb-11"}
	if !slices.Equal(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
}

func TestSequentialIsDeterministic(t *testing.T) {
	c := testCatalog(t)
	cfg := Config{Category: catalog.CategoryNoun, PackIndex: 1, Ordering: Sequential}

	a := DeriveActiveSet(c, cfg, NewRand(1))
	b := DeriveActiveSet(c, cfg, NewRand(2))
	if !slices.Equal(ids(a), ids(b)) {
		t.Fatalf("sequential derivations differ: %v vs %v", ids(a), ids(b))
	}
	if a[0].ID != "noun-10" {
		t.Errorf("first = %q, want noun-10", a[0].ID)
	}
}

func TestRandomizedIsPermutation(t *testing.T) {
	c := testCatalog(t)
	seq := DeriveActiveSet(c, Config{Category: catalog.CategoryNoun}, nil)
	seqIDs := ids(seq)

	rng := NewRand(42)
	reordered := 0
	const trials = 50
	for range trials {
		got := ids(DeriveActiveSet(c, Config{Category: catalog.CategoryNoun, Ordering: Randomized}, rng))

		sorted := slices.Clone(got)
		slices.Sort(sorted)
		if !slices.Equal(sorted, seqIDs) {
			t.Fatalf("randomized set %v is not a permutation of %v", got, seqIDs)
		}
		if !slices.Equal(got, seqIDs) {
			reordered++
		}
	}
	if reordered < trials-2 {
		t.Errorf("only %d/%d randomized derivations changed order", reordered, trials)
	}
}

func TestShuffleUniformity(t *testing.T) {
	// Each of the 6 permutations of 3 elements should appear roughly 1/6 of the time.
	rng := NewRand(99)
	counts := make(map[string]int)
	const n = 6000
	for range n {
		s := []int{1, 2, 3}
		Shuffle(s, rng)
		counts[fmt.Sprint(s)]++
	}
	if len(counts) != 6 {
		t.Fatalf("saw %d permutations, want 6", len(counts))
	}
	for perm, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("permutation %s seen %d times, expected about 1000", perm, c)
		}
	}
}

func TestPacks(t *testing.T) {
	c := testCatalog(t)

	nouns := Packs(c, catalog.CategoryNoun)
	if len(nouns) != MinPacks {
		t.Fatalf("noun packs = %d, want %d", len(nouns), MinPacks)
	}
	wantSizes := []int{10, 10, 5, 0, 0}
	for i, p := range nouns {
		if p.Size != wantSizes[i] {
			t.Errorf("pack %d size = %d, want %d", i, p.Size, wantSizes[i])
		}
	}
	if nouns[1].Label != "11 - 20" {
		t.Errorf("label = %q", nouns[1].Label)
	}

	if got := PackCount(c, catalog.CategoryAll); got != MinPacks {
		t.Errorf("PackCount(all) = %d, want %d", got, MinPacks)
	}
}
