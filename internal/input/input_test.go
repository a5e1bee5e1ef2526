package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testStream returns a stream preloaded with the given bytes, without the
// reader goroutine, so ReadInput drains deterministically.
func testStream(bytes ...byte) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
	for _, b := range bytes {
		s.ch <- b
	}
	return s
}

func TestReadInput(t *testing.T) {
	t.Run("letter keys", func(t *testing.T) {
		inp := ReadInput(testStream('a', 'w', ' '))
		require.True(t, inp.Left)
		require.True(t, inp.Up)
		require.True(t, inp.Space)
		require.False(t, inp.Right)
		require.False(t, inp.Quit)
	})

	t.Run("vim keys map to directions", func(t *testing.T) {
		inp := ReadInput(testStream('h', 'j'))
		require.True(t, inp.Left)
		require.True(t, inp.Down)
	})

	t.Run("arrow key escape sequences", func(t *testing.T) {
		inp := ReadInput(testStream('\x1b', '[', 'C'))
		require.True(t, inp.Right)
		// A consumed CSI sequence must not register as a bare escape
		require.False(t, inp.Escape)
	})

	t.Run("pause reset and quit", func(t *testing.T) {
		inp := ReadInput(testStream('p', 'r', 'q'))
		require.True(t, inp.Pause)
		require.True(t, inp.Reset)
		require.True(t, inp.Quit)
	})

	t.Run("digits", func(t *testing.T) {
		inp := ReadInput(testStream('7'))
		require.Equal(t, 7, inp.Number)

		inp = ReadInput(testStream('x'))
		require.Equal(t, -1, inp.Number)
	})

	t.Run("closed stream reports quit", func(t *testing.T) {
		s := testStream()
		close(s.ch)
		require.True(t, ReadInput(s).Quit)
	})

	t.Run("no input", func(t *testing.T) {
		inp := ReadInput(testStream())
		require.False(t, inp.Left)
		require.False(t, inp.Space)
		require.Equal(t, -1, inp.Number)
		require.Empty(t, inp.Pressed)
	})
}

func TestReset(t *testing.T) {
	s := testStream('a', ' ')
	inp := ReadInput(s)
	require.True(t, inp.Left)
	require.True(t, inp.Space)

	Reset(s)
	inp = ReadInput(s)
	require.False(t, inp.Left)
	require.False(t, inp.Space)
}
