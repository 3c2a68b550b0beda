package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML shape of a taxonomy file. Categories are a
// list, not a map, so insertion order survives the round trip.
type fileFormat struct {
	Categories []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"categories"`
}

// LoadFile reads a taxonomy from a YAML file.
//
// Expected format:
//
//	categories:
//	  - name: Prévention
//	    keywords: [prévention, préventif, protection]
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}

	var file fileFormat
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse taxonomy file %s: %w", path, err)
	}

	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTaxonomy, path)
	}

	t := New()
	for _, cat := range file.Categories {
		if err := t.Add(cat.Name, cat.Keywords); err != nil {
			return nil, fmt.Errorf("taxonomy file %s: %w", path, err)
		}
	}
	return t, nil
}
