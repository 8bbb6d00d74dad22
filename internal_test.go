package minifmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, lineWidth(nil))
	assert.Equal(t, 12, lineWidth([]int{10}))
	assert.Equal(t, 80, lineWidth([]int{10, 35, 35}))
}

func TestColumnWidthsFirstColumnAsymmetry(t *testing.T) {
	t.Parallel()
	// First column: 10 dashes, 8 content. Later columns: 8 dashes, 6 content.
	assert.Equal(t, 10, borderWidth(0, 10))
	assert.Equal(t, 8, contentWidth(0, 10))
	assert.Equal(t, 8, borderWidth(1, 10))
	assert.Equal(t, 6, contentWidth(1, 10))
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcd", padRight("abcd", 2))
}
