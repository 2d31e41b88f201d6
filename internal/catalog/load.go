package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/words.yaml
var embeddedWords []byte

// document is the on-disk YAML layout of a word list.
type document struct {
	Words []Word `yaml:"words"`
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	words, err := decode(embeddedWords)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return New(words)
})

// Default returns the catalog built from the embedded word list.
// It panics if the embedded data is invalid, which tests guard against.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a YAML word list and builds a validated catalog.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	words, err := decode(data)
	if err != nil {
		return nil, err
	}
	return New(words)
}

// WriteYAML encodes words in the same layout Load accepts.
func WriteYAML(w io.Writer, words []Word) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Words: words}); err != nil {
		return fmt.Errorf("encode word list: %w", err)
	}
	return enc.Close()
}

func decode(data []byte) ([]Word, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}
	return doc.Words, nil
}
