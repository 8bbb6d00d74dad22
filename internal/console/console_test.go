package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/minifmt"
	"github.com/bjaus/minifmt/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPause(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tty  bool
		want string
	}{
		"pipe":     {tty: false, want: "Press enter to continue...\n"},
		"terminal": {tty: true, want: "Press enter to continue...\n\x1b[1A\x1b[1A\x1b[2K"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			r := minifmt.NewReader(strings.NewReader("\nnext\n"), &out)
			require.NoError(t, console.Pause(r, tt.tty))
			assert.Equal(t, tt.want, out.String())

			line, err := r.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, "next", line)
		})
	}
}

func TestPauseInputClosed(t *testing.T) {
	t.Parallel()
	r := minifmt.NewReader(strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, console.Pause(r, false), minifmt.ErrInputClosed)
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, console.IsTerminal(&bytes.Buffer{}))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := console.NewLogger("test", &buf, false)
	logger.Infof("loaded %d items", 3)
	logger.Debugf("hidden %d", 1)
	assert.Contains(t, buf.String(), "loaded 3 items")
	assert.NotContains(t, buf.String(), "hidden")
}
