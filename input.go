package minifmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxLineLength caps a single input line read by a [Reader].
const DefaultMaxLineLength = 4096

const defaultCriteria = "value"

// Reader reads validated values from a line-oriented input, writing prompts
// and guidance to an output. A Reader owns its input; wrap each stream once
// and reuse the Reader for the whole session.
type Reader struct {
	in      *bufio.Reader
	out     io.Writer
	maxLine int
	partial bool // the last line was cut short and its tail is still buffered
}

// ReaderOption configures a [Reader].
type ReaderOption func(*Reader)

// WithMaxLineLength sets the longest accepted line in bytes. Longer lines
// are rejected as invalid input. Non-positive values are ignored.
func WithMaxLineLength(n int) ReaderOption {
	return func(r *Reader) {
		if n > 0 {
			r.maxLine = n
		}
	}
}

// NewReader returns a Reader that reads lines from in and writes prompts to
// out.
func NewReader(in io.Reader, out io.Writer, opts ...ReaderOption) *Reader {
	r := &Reader{
		in:      bufio.NewReader(in),
		out:     out,
		maxLine: DefaultMaxLineLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Writer returns the prompt output.
func (r *Reader) Writer() io.Writer { return r.out }

// ReadLine returns the next line without its line terminator. At end of
// input with nothing left to return it fails with [ErrInputClosed]. A line
// longer than the configured maximum fails with [ErrLineTooLong]; its
// remainder is left for [Reader.Reset].
func (r *Reader) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		chunk, isPrefix, err := r.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() > 0 {
					return sb.String(), nil
				}
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("read line: %w", err)
		}
		sb.Write(chunk)
		if sb.Len() > r.maxLine {
			r.partial = isPrefix
			return "", fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, r.maxLine)
		}
		if !isPrefix {
			return sb.String(), nil
		}
	}
}

// Reset discards the unread remainder of a line that [Reader.ReadLine]
// rejected, so the next read starts on a fresh line. It is a no-op when the
// previous line was consumed whole.
func (r *Reader) Reset() error {
	for r.partial {
		_, isPrefix, err := r.in.ReadLine()
		if err != nil {
			r.partial = false
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("discard line: %w", err)
		}
		r.partial = isPrefix
	}
	return nil
}

// Validation describes how [Prompt] turns a line of text into a T.
type Validation[T any] struct {
	// Parse converts text into a value, returning the unconsumed remainder.
	Parse Parser[T]
	// Valid accepts or rejects a parsed value. Nil accepts everything.
	Valid func(T) bool
	// Criteria describes an acceptable value in guidance messages.
	// Default: "value".
	Criteria string
	// Strict rejects input with anything but whitespace after the value.
	Strict bool
	// Preprocess rewrites the raw line before parsing. Default: [Trim].
	Preprocess func(string) string
}

// Prompt writes prompt and reads lines from r until one yields a value that
// parses, passes v.Valid and, in strict mode, has no trailing characters.
// Every rejected line is answered with guidance naming v.Criteria. Prompt
// only returns an error when the input itself fails, such as
// [ErrInputClosed] at end of input.
func Prompt[T any](r *Reader, prompt string, v Validation[T]) (T, error) {
	var zero T
	if v.Parse == nil {
		return zero, fmt.Errorf("%w: no parser for %T", ErrParse, zero)
	}
	criteria := v.Criteria
	if criteria == "" {
		criteria = defaultCriteria
	}
	preprocess := v.Preprocess
	if preprocess == nil {
		preprocess = Trim
	}

	for {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return zero, err
		}
		line, err := r.ReadLine()
		if err != nil && !errors.Is(err, ErrLineTooLong) {
			return zero, err
		}

		var msg string
		value, rest, perr := v.Parse(preprocess(line))
		switch {
		case err != nil, perr != nil:
			msg = "Invalid input. Please enter a valid %s.\n"
		case v.Valid != nil && !v.Valid(value):
			msg = "Input is out of the accepted range or format. Please enter a valid %s.\n"
		case v.Strict && strings.TrimSpace(rest) != "":
			msg = "Unexpected characters found. Please enter a valid %s.\n"
		default:
			return value, nil
		}

		if _, err := fmt.Fprintf(r.out, msg, criteria); err != nil {
			return zero, err
		}
		if err := r.Reset(); err != nil {
			return zero, err
		}
	}
}
