// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package notify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/poiesic/veilleur/core"
)

// ledgerFile is the persisted ledger format.
type ledgerFile struct {
	LastRun      *time.Time `json:"last_run"`
	NotifiedURLs []string   `json:"notified_urls"`
}

// Ledger tracks which document URLs have already been notified, so each
// run only reports content it has never seen. The ledger only grows:
// URLs are never removed. A mutex makes the single-writer rule explicit;
// FilterNew and Commit may be called from any goroutine.
type Ledger struct {
	path   string
	logger *slog.Logger

	mu       sync.Mutex
	notified map[string]struct{}
	lastRun  *time.Time
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithLedgerLogger sets a custom logger. Default is slog.Default().
func WithLedgerLogger(logger *slog.Logger) LedgerOption {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// LoadLedger reads the ledger file at path. A missing or corrupt file is
// not an error: the ledger starts empty and every document counts as new,
// which at worst repeats a notification.
func LoadLedger(path string, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		path:     path,
		logger:   slog.Default(),
		notified: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("component", "ledger")

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.Warn("ledger unreadable, starting empty", "path", path, "err", err)
		}
		return l
	}

	var file ledgerFile
	if err := json.Unmarshal(data, &file); err != nil {
		l.logger.Warn("ledger corrupt, starting empty", "path", path, "err", err)
		return l
	}

	l.lastRun = file.LastRun
	for _, url := range file.NotifiedURLs {
		l.notified[url] = struct{}{}
	}
	return l
}

// FilterNew returns the documents whose URLs the ledger has not seen,
// preserving input order. It never mutates the ledger: calling it twice
// with the same input yields the same result.
func (l *Ledger) FilterNew(docs []*core.EnrichedDocument) []*core.EnrichedDocument {
	l.mu.Lock()
	defer l.mu.Unlock()

	var fresh []*core.EnrichedDocument
	for _, doc := range docs {
		if _, seen := l.notified[doc.URL]; !seen {
			fresh = append(fresh, doc)
		}
	}
	return fresh
}

// Commit records the documents as notified and persists the ledger.
// An empty batch is a no-op: LastRun only moves when something was
// actually reported. A persist failure leaves the in-memory state
// updated so the current process does not re-notify.
func (l *Ledger) Commit(docs []*core.EnrichedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, doc := range docs {
		l.notified[doc.URL] = struct{}{}
	}
	now := time.Now().UTC()
	l.lastRun = &now

	if err := l.persist(); err != nil {
		l.logger.Warn("ledger persist failed, in-memory state retained", "path", l.path, "err", err)
		return err
	}
	return nil
}

// persist writes the ledger atomically: full write to a temp file in the
// same directory, then rename over the target. Callers hold l.mu.
func (l *Ledger) persist() error {
	urls := make([]string, 0, len(l.notified))
	for url := range l.notified {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	data, err := json.MarshalIndent(ledgerFile{
		LastRun:      l.lastRun,
		NotifiedURLs: urls,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(l.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// LastRun returns the time of the last committed notification, or nil
// when nothing has ever been committed.
func (l *Ledger) LastRun() *time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastRun
}

// NotifiedCount returns the number of URLs the ledger has recorded.
func (l *Ledger) NotifiedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.notified)
}
