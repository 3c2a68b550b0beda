// Package taxonomy provides insertion-ordered keyword taxonomies used by
// the classifier and the sector detector, with YAML loading and built-in
// French occupational health and safety defaults.
package taxonomy
