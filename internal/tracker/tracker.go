// Package tracker counts how often each item appears in a line-per-item
// list and renders the counts.
package tracker

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Item is one distinct item and the number of lines that named it.
type Item struct {
	Name  string `json:"item" yaml:"item"`
	Count int    `json:"count" yaml:"count"`
}

// Tracker accumulates item frequencies. The zero value is ready to use.
type Tracker struct {
	counts map[string]int
}

// Import counts every non-blank line of r, trimmed of surrounding
// whitespace. Counts add to those already held. Items are case sensitive.
func (t *Tracker) Import(r io.Reader) error {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if item := strings.TrimSpace(sc.Text()); item != "" {
			t.counts[item]++
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("import items: %w", err)
	}
	return nil
}

// LoadFile imports the items listed in the file at path.
func (t *Tracker) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	defer f.Close()
	return t.Import(f)
}

// Frequency returns how many times item was seen.
func (t *Tracker) Frequency(item string) int { return t.counts[item] }

// Len returns the number of distinct items.
func (t *Tracker) Len() int { return len(t.counts) }

// Items returns every item with its count, sorted by name.
func (t *Tracker) Items() []Item {
	items := make([]Item, 0, len(t.counts))
	for name, count := range t.counts {
		items = append(items, Item{Name: name, Count: count})
	}
	slices.SortFunc(items, func(a, b Item) int { return cmp.Compare(a.Name, b.Name) })
	return items
}

// Export writes one "item count" line per item.
func (t *Tracker) Export(w io.Writer) error {
	return writePlain(w, t.Items())
}

// ExportFile writes the backup file at path in the [Tracker.Export] format.
func (t *Tracker) ExportFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export items: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export items: %w", cerr)
		}
	}()
	return t.Export(f)
}
