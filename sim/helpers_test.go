package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws, wrapping around when exhausted.
type scriptedSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

func newTestEngine(t *testing.T, src Source) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultParams(), src, nil)
	require.NoError(t, err)
	return e
}
