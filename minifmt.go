package minifmt

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidWidth = errors.New("invalid render width")
	ErrColumnWidths = errors.New("column widths do not fit")
	ErrInputClosed  = errors.New("input closed")
	ErrParse        = errors.New("parse failed")
	ErrLineTooLong  = errors.New("input line too long")
)

// MinWidth is the smallest render width a formatter accepts: one border
// character on each side.
const MinWidth = 2

const ellipsis = "..."

// Formatter holds the render width shared by [LabelFormatter] and
// [TableFormatter]. The zero value is unusable; construct with
// [NewFormatter].
type Formatter struct {
	width int
}

// NewFormatter returns a Formatter bound to width columns.
func NewFormatter(width int) (Formatter, error) {
	if err := checkWidth(width); err != nil {
		return Formatter{}, err
	}
	return Formatter{width: width}, nil
}

// Width returns the render width.
func (f *Formatter) Width() int { return f.width }

// SetWidth changes the render width. The width is left unchanged on error.
func (f *Formatter) SetWidth(width int) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	f.width = width
	return nil
}

func checkWidth(width int) error {
	if width < MinWidth {
		return fmt.Errorf("%w: %d is below the minimum of %d", ErrInvalidWidth, width, MinWidth)
	}
	return nil
}

// Truncate shortens s to at most width display columns. A truncated string
// ends in "..." and fills width exactly. Widths of 3 or less cut without the
// marker, and non-positive widths yield an empty string.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// padRight fills s with trailing spaces up to width display columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
