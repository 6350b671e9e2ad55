package tutor

import (
	"fmt"
	"math/rand/v2"

	"github.com/xaenox/tutor-bot/internal/models"
)

// Selector picks the answer text for a category.
type Selector struct {
	catalog *Catalog
	// intn must be safe for concurrent use.
	intn func(n int) int
}

func NewSelector(catalog *Catalog) *Selector {
	return &Selector{
		catalog: catalog,
		intn:    rand.IntN,
	}
}

// Respond returns the category's template. Categories with several templates
// get a fresh uniform draw on every call; the rest always return the same text.
// It panics for a category the catalog does not know.
func (s *Selector) Respond(category models.Category) string {
	texts := s.catalog.templates[category]
	switch len(texts) {
	case 0:
		panic(fmt.Sprintf("tutor: no templates for category %q", category))
	case 1:
		return texts[0]
	}
	return texts[s.intn(len(texts))]
}
