package taxonomy

import "errors"

var (
	// ErrEmptyCategoryName indicates a category with no name.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrDuplicateCategory indicates a category name added twice.
	ErrDuplicateCategory = errors.New("duplicate category")

	// ErrNoKeywords indicates a category with an empty keyword list.
	ErrNoKeywords = errors.New("category has no keywords")

	// ErrEmptyTaxonomy indicates a loaded taxonomy file with no categories.
	ErrEmptyTaxonomy = errors.New("taxonomy has no categories")
)
