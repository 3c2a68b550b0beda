package taxonomy

import (
	"fmt"
	"strings"
)

// Category is a named taxonomy entry with its ordered keyword list.
// Keyword order is the tie-break priority when categories score equally.
type Category struct {
	Name     string
	Keywords []string // stored lowercase
}

// Taxonomy is an insertion-ordered set of categories mapping names to
// keyword lists. It is immutable after load: build it with Add calls,
// then share it freely across goroutines.
type Taxonomy struct {
	categories []Category
	position   map[string]int
}

// New creates an empty taxonomy.
func New() *Taxonomy {
	return &Taxonomy{
		position: make(map[string]int),
	}
}

// Add appends a category with its keywords. Keywords are normalized to
// lowercase. Returns ErrDuplicateCategory if the name was already added
// and ErrNoKeywords if the keyword list is empty.
func (t *Taxonomy) Add(name string, keywords []string) error {
	if name == "" {
		return ErrEmptyCategoryName
	}
	if _, ok := t.position[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}
	if len(keywords) == 0 {
		return fmt.Errorf("%w: %s", ErrNoKeywords, name)
	}

	normalized := make([]string, len(keywords))
	for i, kw := range keywords {
		normalized[i] = strings.ToLower(kw)
	}

	t.position[name] = len(t.categories)
	t.categories = append(t.categories, Category{Name: name, Keywords: normalized})
	return nil
}

// Categories returns the categories in insertion order.
// Callers must not modify the returned slice.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// Position returns the insertion index of a category, used as the
// tie-break when two categories score equally.
func (t *Taxonomy) Position(name string) (int, bool) {
	pos, ok := t.position[name]
	return pos, ok
}

// Keywords returns the keyword list for a category.
func (t *Taxonomy) Keywords(name string) ([]string, bool) {
	pos, ok := t.position[name]
	if !ok {
		return nil, false
	}
	return t.categories[pos].Keywords, true
}
