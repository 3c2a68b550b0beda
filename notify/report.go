package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poiesic/veilleur/core"
)

// Render builds the plain-text notification body for a batch of newly
// discovered documents. Items are grouped by source in order of first
// appearance; within a source they keep their arrival order.
func Render(now time.Time, docs []*core.EnrichedDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nouveaux contenus SST découverts le %s\n\n",
		now.Format("02/01/2006 à 15:04"))

	var order []string
	bySource := make(map[string][]*core.EnrichedDocument)
	for _, doc := range docs {
		source := doc.Source
		if source == "" {
			source = "Inconnu"
		}
		if _, seen := bySource[source]; !seen {
			order = append(order, source)
		}
		bySource[source] = append(bySource[source], doc)
	}

	for _, source := range order {
		items := bySource[source]
		fmt.Fprintf(&b, "=== %s (%d nouveaux contenus) ===\n", source, len(items))
		for _, item := range items {
			title := item.Title
			if title == "" {
				title = "Sans titre"
			}
			fmt.Fprintf(&b, "- %s\n", title)
			fmt.Fprintf(&b, "  URL: %s\n", item.URL)
			if len(item.Categories) > 0 {
				fmt.Fprintf(&b, "  Catégories: %s\n", strings.Join(item.Categories, ", "))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// WriteArtifact saves the notification body to a timestamp-named file in
// dir and returns its path. The file is created exclusively so a run
// never overwrites an earlier notification.
func WriteArtifact(dir string, now time.Time, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir,
		fmt.Sprintf("notification_%s.txt", now.Format("20060102_150405")))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
