// Package config loads the YAML run configuration and fills in
// defaults so veilleur starts with no file at all.
package config
