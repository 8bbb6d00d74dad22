package minifmt_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/bjaus/minifmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func scripted(input string) (*minifmt.Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return minifmt.NewReader(strings.NewReader(input), &out), &out
}

func intInRange(lo, hi int, criteria string) minifmt.Validation[int] {
	return minifmt.Validation[int]{
		Parse:    minifmt.ParseInt,
		Valid:    minifmt.InRange(lo, hi),
		Criteria: criteria,
	}
}

// ============================================================
// Tests
// ============================================================

func TestPromptRetriesAfterParseFailure(t *testing.T) {
	t.Parallel()
	r, out := scripted("abc\n5\n")
	got, err := minifmt.Prompt(r, "Number: ", intInRange(1, 10, "integer between 1 and 10"))
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Equal(t, ""+
		"Number: Invalid input. Please enter a valid integer between 1 and 10.\n"+
		"Number: ", out.String())
}

func TestPromptRetriesAfterPredicateFailure(t *testing.T) {
	t.Parallel()
	r, out := scripted("11\n0\n7\n")
	got, err := minifmt.Prompt(r, "> ", intInRange(1, 10, "integer between 1 and 10"))
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 2, strings.Count(out.String(),
		"Input is out of the accepted range or format. Please enter a valid integer between 1 and 10.\n"))
	assert.Equal(t, 3, strings.Count(out.String(), "> "))
}

func TestPromptStrictRejectsTrailingCharacters(t *testing.T) {
	t.Parallel()
	r, out := scripted("5 6\n5\n")
	v := intInRange(1, 10, "number")
	v.Strict = true
	got, err := minifmt.Prompt(r, "> ", v)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Contains(t, out.String(), "Unexpected characters found. Please enter a valid number.\n")
}

func TestPromptLenientAcceptsLeadingValue(t *testing.T) {
	t.Parallel()
	r, out := scripted("5 garbage\n")
	got, err := minifmt.Prompt(r, "> ", intInRange(1, 10, "number"))
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.Equal(t, "> ", out.String())
}

func TestPromptPredicateCheckedBeforeStrict(t *testing.T) {
	t.Parallel()
	r, out := scripted("50 x\n3\n")
	v := intInRange(1, 10, "number")
	v.Strict = true
	_, err := minifmt.Prompt(r, "> ", v)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "out of the accepted range")
	assert.NotContains(t, out.String(), "Unexpected characters")
}

func TestPromptDefaultCriteria(t *testing.T) {
	t.Parallel()
	r, out := scripted("x\n1\n")
	_, err := minifmt.Prompt(r, "", minifmt.Validation[int]{Parse: minifmt.ParseInt})
	require.NoError(t, err)
	assert.Equal(t, "Invalid input. Please enter a valid value.\n", out.String())
}

func TestPromptDefaultPreprocessTrims(t *testing.T) {
	t.Parallel()
	r, _ := scripted("   42   \n")
	v := minifmt.Validation[int]{Parse: minifmt.ParseInt, Strict: true}
	got, err := minifmt.Prompt(r, "", v)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestPromptStripDecorations(t *testing.T) {
	t.Parallel()
	r, out := scripted("$$$\n$1500.50\n")
	got, err := minifmt.Prompt(r, "Amount (in $): ", minifmt.Validation[float64]{
		Parse:      minifmt.ParseFloat,
		Valid:      minifmt.IsPositiveReal,
		Criteria:   "positive real number",
		Preprocess: minifmt.StripDecorations,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1500.50, got, 1e-9)
	assert.Contains(t, out.String(), "Invalid input. Please enter a valid positive real number.\n")
}

func TestPromptRejectsHexadecimal(t *testing.T) {
	t.Parallel()
	r, out := scripted("0x1A\n26\n")
	v := intInRange(1, 100, "number")
	v.Strict = true
	got, err := minifmt.Prompt(r, "> ", v)
	require.NoError(t, err)
	assert.Equal(t, 26, got)
	assert.Contains(t, out.String(), "out of the accepted range")
}

func TestPromptCharStrict(t *testing.T) {
	t.Parallel()
	r, out := scripted("y n\nq\nn\n")
	got, err := minifmt.Prompt(r, "Continue? (Y/N): ", minifmt.Validation[rune]{
		Parse:    minifmt.ParseChar,
		Valid:    minifmt.OneOf('Y', 'y', 'N', 'n'),
		Criteria: "Y or N character",
		Strict:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 'n', got)
	assert.Contains(t, out.String(), "Unexpected characters found. Please enter a valid Y or N character.\n")
	assert.Contains(t, out.String(), "Input is out of the accepted range or format. Please enter a valid Y or N character.\n")
}

func TestPromptInputClosed(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"empty":            "",
		"after rejections": "abc\nxyz\n",
	}
	for name, input := range tests {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r, _ := scripted(input)
			_, err := minifmt.Prompt(r, "> ", intInRange(1, 10, "number"))
			require.ErrorIs(t, err, minifmt.ErrInputClosed)
		})
	}
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	t.Parallel()
	r, _ := scripted("x\n8")
	got, err := minifmt.Prompt(r, "> ", intInRange(1, 10, "number"))
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestPromptReadError(t *testing.T) {
	t.Parallel()
	errBoom := errors.New("boom")
	r := minifmt.NewReader(iotest.ErrReader(errBoom), &bytes.Buffer{})
	_, err := minifmt.Prompt(r, "> ", intInRange(1, 10, "number"))
	require.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, minifmt.ErrInputClosed)
}

func TestPromptWriteError(t *testing.T) {
	t.Parallel()
	r := minifmt.NewReader(strings.NewReader("1\n"), &errWriter{})
	_, err := minifmt.Prompt(r, "> ", intInRange(1, 10, "number"))
	require.ErrorIs(t, err, errWriteFailed)
}

func TestPromptNoParser(t *testing.T) {
	t.Parallel()
	r, _ := scripted("1\n")
	_, err := minifmt.Prompt(r, "> ", minifmt.Validation[int]{})
	require.ErrorIs(t, err, minifmt.ErrParse)
}

func TestPromptOverlongLineDiscarded(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	input := strings.Repeat("9", 64) + "\n3\n"
	r := minifmt.NewReader(strings.NewReader(input), &out, minifmt.WithMaxLineLength(16))
	got, err := minifmt.Prompt(r, "> ", intInRange(1, 10, "number"))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, "> Invalid input. Please enter a valid number.\n> ", out.String())
}

func TestReadLine(t *testing.T) {
	t.Parallel()
	r, _ := scripted("one\r\ntwo\n\nthree")
	for _, want := range []string{"one", "two", "", "three"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadLine()
	require.ErrorIs(t, err, minifmt.ErrInputClosed)
}

func TestReadLineTooLong(t *testing.T) {
	t.Parallel()
	input := strings.Repeat("a", 10) + "\nnext\n"
	r := minifmt.NewReader(strings.NewReader(input), &bytes.Buffer{}, minifmt.WithMaxLineLength(4))
	_, err := r.ReadLine()
	require.ErrorIs(t, err, minifmt.ErrLineTooLong)
	require.NoError(t, r.Reset())
	got, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestResetDiscardsBufferedTail(t *testing.T) {
	t.Parallel()
	input := strings.Repeat("a", 10000) + "\nnext\n"
	r := minifmt.NewReader(strings.NewReader(input), &bytes.Buffer{}, minifmt.WithMaxLineLength(100))
	_, err := r.ReadLine()
	require.ErrorIs(t, err, minifmt.ErrLineTooLong)
	require.NoError(t, r.Reset())
	got, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestResetWithoutPartialLineKeepsInput(t *testing.T) {
	t.Parallel()
	r, _ := scripted("a\nb\n")
	_, err := r.ReadLine()
	require.NoError(t, err)
	require.NoError(t, r.Reset())
	got, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}
