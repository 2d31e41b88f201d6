package explain

import (
	"fmt"

	"github.com/abhisek/slovo/internal/catalog"
)

// Topic builds the context sent along with a word: its French
// translation and part of speech.
func Topic(w catalog.Word) string {
	var kind string
	switch w.Category {
	case catalog.CategoryVerb:
		kind = "verbe"
	case catalog.CategoryNoun:
		kind = "nom"
	case catalog.CategoryNumber:
		kind = "nombre"
	default:
		return fmt.Sprintf("traduction : %s", w.French)
	}
	return fmt.Sprintf("traduction : %s ; %s", w.French, kind)
}
