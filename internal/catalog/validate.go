package catalog

import (
	"fmt"
	"strings"
)

// validateWords performs all structural checks on a word list.
// Returns a combined error describing all problems found, or nil if valid.
func validateWords(words []Word) error {
	var errs []string

	seen := make(map[string]bool, len(words))
	for i, w := range words {
		ref := w.ID
		if ref == "" {
			ref = fmt.Sprintf("#%d", i+1)
			errs = append(errs, fmt.Sprintf("word %s has an empty ID", ref))
		} else if seen[w.ID] {
			errs = append(errs, fmt.Sprintf("duplicate word ID: %q", w.ID))
		}
		seen[w.ID] = true

		if strings.TrimSpace(w.Russian) == "" {
			errs = append(errs, fmt.Sprintf("word %s has no russian text", ref))
		}
		if strings.TrimSpace(w.French) == "" {
			errs = append(errs, fmt.Sprintf("word %s has no french text", ref))
		}
		if !w.Category.Valid() {
			errs = append(errs, fmt.Sprintf("word %s has invalid category %q", ref, w.Category))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
