package tracker

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bjaus/minifmt"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat reports an unknown listing format name.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names a rendering of an item listing.
type Format string

const (
	Plain     Format = "plain"
	Histogram Format = "histogram"
	Table     Format = "table"
	JSON      Format = "json"
	YAML      Format = "yaml"
	CSV       Format = "csv"
	TSV       Format = "tsv"
	JSONL     Format = "jsonl"
	Markdown  Format = "markdown"
)

var formats = []Format{Plain, Histogram, Table, JSON, YAML, CSV, TSV, JSONL, Markdown}

// Width of the frequency column in [Table] listings.
const countColumn = 12

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders items to w in format f. Table listings are fitted to width
// columns.
func Write(w io.Writer, f Format, items []Item, width int) error {
	switch f {
	case Plain:
		return writePlain(w, items)
	case Histogram:
		return writeHistogram(w, items)
	case Table:
		return writeTable(w, items, width)
	case JSON:
		return writeJSON(w, items)
	case YAML:
		return writeYAML(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case Markdown:
		return writeMarkdown(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writePlain(w io.Writer, items []Item) error {
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%s %d\n", item.Name, item.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeHistogram(w io.Writer, items []Item) error {
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%s %s\n", item.Name, strings.Repeat("#", item.Count)); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, items []Item, width int) error {
	t, err := minifmt.NewTableFormatter(width)
	if err != nil {
		return err
	}
	// Item column takes what the frequency column leaves of the line.
	if err := t.SetColumnWidths(width-countColumn-1, countColumn); err != nil {
		return err
	}
	t.SetHeaders("Item", "Frequency")
	for _, item := range items {
		t.AddRow(item.Name, strconv.Itoa(item.Count))
	}
	_, err = t.WriteTo(w)
	return err
}

func writeJSON(w io.Writer, items []Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if items == nil {
		items = []Item{}
	}
	return enc.Encode(items)
}

func writeYAML(w io.Writer, items []Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if items == nil {
		items = []Item{}
	}
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"item", "count"}); err != nil {
		return err
	}
	for _, item := range items {
		if err := cw.Write([]string{item.Name, strconv.Itoa(item.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTSV(w io.Writer, items []Item) error {
	if _, err := fmt.Fprintln(w, "item\tcount"); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", item.Name, item.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONL(w io.Writer, items []Item) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// writeMarkdown renders a GitHub table with the counts right-aligned.
func writeMarkdown(w io.Writer, items []Item) error {
	nameWidth := runewidth.StringWidth("Item")
	countWidth := runewidth.StringWidth("Frequency")
	counts := make([]string, len(items))
	for i, item := range items {
		counts[i] = strconv.Itoa(item.Count)
		nameWidth = max(nameWidth, runewidth.StringWidth(item.Name))
		countWidth = max(countWidth, len(counts[i]))
	}

	row := func(name, count string) error {
		_, err := fmt.Fprintf(w, "| %s | %s |\n",
			runewidth.FillRight(name, nameWidth), runewidth.FillLeft(count, countWidth))
		return err
	}
	if err := row("Item", "Frequency"); err != nil {
		return err
	}
	if err := row(strings.Repeat("-", nameWidth), strings.Repeat("-", countWidth-1)+":"); err != nil {
		return err
	}
	for i, item := range items {
		if err := row(item.Name, counts[i]); err != nil {
			return err
		}
	}
	return nil
}
