package minifmt

import (
	"fmt"
	"io"
	"strings"
)

// TableFormatter renders a bordered grid of text cells:
//
//	+--------+------------+
//	| Year   | Balance    |
//	+--------+------------+
//	| 1      | $100.00    |
//	+--------+------------+
//
// Rows accumulate across [TableFormatter.AddRow] calls until
// [TableFormatter.ClearRows]; headers and column widths persist.
type TableFormatter struct {
	Formatter
	widths  []int
	headers []string
	rows    [][]string
}

// NewTableFormatter returns a TableFormatter bound to width columns.
func NewTableFormatter(width int) (*TableFormatter, error) {
	f, err := NewFormatter(width)
	if err != nil {
		return nil, err
	}
	return &TableFormatter{Formatter: f}, nil
}

// SetColumnWidths sets the column widths. The first column needs at least 2
// columns and the rest at least 4 to hold their padding and separators, and
// the rendered line (sum of widths minus the column count plus 3) must fit
// the render width. The previous widths are kept on error.
func (t *TableFormatter) SetColumnWidths(widths ...int) error {
	for i, w := range widths {
		if w < columnOverhead(i) {
			return fmt.Errorf("%w: column %d width %d is below the minimum of %d", ErrColumnWidths, i, w, columnOverhead(i))
		}
	}
	if lw := lineWidth(widths); lw > t.width {
		return fmt.Errorf("%w: table needs %d columns, width is %d", ErrColumnWidths, lw, t.width)
	}
	t.widths = append([]int(nil), widths...)
	return nil
}

// SetHeaders sets the header row. It renders like a data row followed by a
// border line. Call with no arguments to remove it.
func (t *TableFormatter) SetHeaders(headers ...string) {
	t.headers = append([]string(nil), headers...)
}

// AddRow appends a data row. Missing cells render blank and cells beyond
// the column count are dropped.
func (t *TableFormatter) AddRow(cells ...string) {
	t.rows = append(t.rows, append([]string(nil), cells...))
}

// ClearRows discards all data rows.
func (t *TableFormatter) ClearRows() { t.rows = nil }

// Rows returns the number of accumulated data rows.
func (t *TableFormatter) Rows() int { return len(t.rows) }

// Render returns the table as newline-terminated lines.
func (t *TableFormatter) Render() string {
	var sb strings.Builder
	border := t.border()

	sb.WriteString(border)
	if len(t.headers) > 0 {
		sb.WriteString(t.formatRow(t.headers))
		sb.WriteString(border)
	}
	for _, row := range t.rows {
		sb.WriteString(t.formatRow(row))
	}
	sb.WriteString(border)
	return sb.String()
}

// WriteTo writes the rendered table to w.
func (t *TableFormatter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

func (t *TableFormatter) border() string {
	var sb strings.Builder
	sb.WriteString("+")
	for i, w := range t.widths {
		sb.WriteString(strings.Repeat("-", borderWidth(i, w)))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t *TableFormatter) formatRow(cells []string) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, w := range t.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cw := contentWidth(i, w)
		sb.WriteString(" ")
		sb.WriteString(padRight(Truncate(cell, cw), cw))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	return sb.String()
}

// The first column owns the leading border; every later column shares the
// "+" to its left, so its dashes and content are two columns narrower.

func columnOverhead(col int) int {
	if col == 0 {
		return 2
	}
	return 4
}

func borderWidth(col, width int) int {
	if col == 0 {
		return width
	}
	return width - 2
}

func contentWidth(col, width int) int {
	return width - columnOverhead(col)
}

func lineWidth(widths []int) int {
	n := 1
	for i, w := range widths {
		n += borderWidth(i, w) + 1
	}
	return n
}
