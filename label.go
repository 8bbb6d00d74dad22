package minifmt

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultPrecision is the number of fraction digits used for money values.
const DefaultPrecision = 2

// Style selects how [LabelFormatter.Format] decorates a label.
type Style int

const (
	StylePadded     Style = iota // *    TEXT    *
	StyleFullBorder              // **** TEXT ****
	StyleSideBorder              // * TEXT       *
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleFullBorder:
		return "full-border"
	case StyleSideBorder:
		return "side-border"
	default:
		return "padded"
	}
}

// LabelFormatter renders single bordered lines of exactly Width columns.
type LabelFormatter struct {
	Formatter
}

// NewLabelFormatter returns a LabelFormatter bound to width columns.
func NewLabelFormatter(width int) (*LabelFormatter, error) {
	f, err := NewFormatter(width)
	if err != nil {
		return nil, err
	}
	return &LabelFormatter{Formatter: f}, nil
}

// HorizontalSeparator returns border repeated across the full width.
func (f *LabelFormatter) HorizontalSeparator(border rune) string {
	return strings.Repeat(string(border), f.width)
}

// HorizontalSeparatorWithSides returns a full-width line with side as the
// first and last character and sep in between.
func (f *LabelFormatter) HorizontalSeparatorWithSides(sep, side rune) string {
	return string(side) + strings.Repeat(string(sep), f.width-2) + string(side)
}

// FormatCentered centers label between two border characters.
func (f *LabelFormatter) FormatCentered(label string, border rune) string {
	return f.Format(label, border, StylePadded)
}

// FormatFullBorder surrounds label with one space on each side and fills
// the rest of the line with border.
func (f *LabelFormatter) FormatFullBorder(label string, border rune) string {
	return f.Format(label, border, StyleFullBorder)
}

// FormatSideBorder left-aligns label after one space, closing the line with
// a flush right border.
func (f *LabelFormatter) FormatSideBorder(label string, border rune) string {
	return f.Format(label, border, StyleSideBorder)
}

// Format renders label in the given style. Labels wider than the interior
// are truncated with "...", so the result always spans exactly Width columns.
func (f *LabelFormatter) Format(label string, border rune, style Style) string {
	b := string(border)
	interior := f.width - 2

	if style == StyleSideBorder {
		if interior < 1 {
			return b + strings.Repeat(" ", max(0, interior)) + b
		}
		label = Truncate(label, interior-1)
		return b + " " + padRight(label, interior-1) + b
	}

	label = Truncate(label, interior)
	pad := max(0, interior-runewidth.StringWidth(label))
	left := pad / 2
	right := pad - left

	switch style {
	case StyleFullBorder:
		// Padding spaces take the place of the outer border characters.
		return strings.Repeat(b, left) + " " + label + " " + strings.Repeat(b, right)
	default:
		return b + strings.Repeat(" ", left) + label + strings.Repeat(" ", right) + b
	}
}

// FormatDecimal renders value in fixed-point notation with precision
// fraction digits. Negative precision is treated as zero.
func FormatDecimal(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', max(0, precision), 64)
}
