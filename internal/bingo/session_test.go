package bingo

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := NewSession(NewSeededGenerator(8), opts)
	require.NoError(t, err)
	return s
}

func TestSessionWin(t *testing.T) {
	s := newTestSession(t, ClassicOptions(true))
	require.NotEmpty(t, s.ID)
	require.Equal(t, 5, s.Card().Size())
	assert.True(t, s.FreeSpace())
	assert.True(t, s.Covered(Coord{2, 2}))
	assert.False(t, s.IsMarked(Coord{2, 2}))

	for _, col := range []int{0, 1, 3} {
		marked, err := s.Toggle(Coord{2, col})
		require.NoError(t, err)
		assert.True(t, marked)
		assert.False(t, s.CheckWin())
	}
	marked, err := s.Toggle(Coord{2, 4})
	require.NoError(t, err)
	assert.True(t, marked)
	assert.True(t, s.CheckWin())
	assert.True(t, s.Won())
	require.Len(t, s.WinningLines(), 1)
	assert.Equal(t, Row, s.WinningLines()[0].Kind)

	// Once won, the game is over.
	_, err = s.Toggle(Coord{2, 4})
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = s.CallNumber()
	assert.ErrorIs(t, err, ErrGameOver)
	assert.True(t, s.CheckWin())

	// A new game resets everything.
	require.NoError(t, s.NewGame(ClassicOptions(false)))
	assert.False(t, s.Won())
	assert.False(t, s.FreeSpace())
	assert.Zero(t, s.MarkCount())
	assert.Empty(t, s.Called())
	assert.Zero(t, s.LastCalled())
}

func TestSessionWinIsMonotonic(t *testing.T) {
	s := newTestSession(t, Options{Size: 3, MaxNumber: 30})
	for col := range 3 {
		_, err := s.Toggle(Coord{0, col})
		require.NoError(t, err)
	}
	require.True(t, s.CheckWin())

	// Marks can't be removed anymore, but even when reset underneath the
	// flag stays until a new game.
	s.marked = NewMarkSet()
	assert.True(t, s.CheckWin())
	assert.Empty(t, s.WinningLines())

	s.Reset()
	assert.False(t, s.CheckWin())
}

func TestSessionToggle(t *testing.T) {
	s := newTestSession(t, ClassicOptions(true))

	marked, err := s.Toggle(Coord{0, 0})
	require.NoError(t, err)
	assert.True(t, marked)
	assert.Equal(t, 1, s.MarkCount())

	marked, err = s.Toggle(Coord{0, 0})
	require.NoError(t, err)
	assert.False(t, marked)
	assert.Zero(t, s.MarkCount())

	// The free center is always covered, toggling it does nothing.
	marked, err = s.Toggle(Coord{2, 2})
	require.NoError(t, err)
	assert.False(t, marked)
	assert.Zero(t, s.MarkCount())
	assert.True(t, s.Covered(Coord{2, 2}))

	for _, pos := range []Coord{{5, 0}, {0, 5}, {-1, 2}} {
		_, err = s.Toggle(pos)
		assert.ErrorIs(t, err, ErrOutOfBounds, "pos=%s", pos)
	}
}

func TestSessionCallNumber(t *testing.T) {
	s := newTestSession(t, ClassicOptions(true))
	seen := make(map[int]bool)
	for i := range MaxCall {
		n, err := s.CallNumber()
		require.NoError(t, err)
		require.False(t, seen[n])
		seen[n] = true
		assert.Equal(t, n, s.LastCalled())
		assert.Len(t, s.Called(), i+1)
	}
	assert.Equal(t, numberPool(1, MaxCall), s.CalledSorted())

	_, err := s.CallNumber()
	assert.ErrorIs(t, err, ErrPoolExhausted)
	assert.Len(t, s.Called(), MaxCall)
}

func TestSessionFailedNewGameKeepsState(t *testing.T) {
	s := newTestSession(t, ClassicOptions(true))
	_, err := s.Toggle(Coord{1, 1})
	require.NoError(t, err)
	n, err := s.CallNumber()
	require.NoError(t, err)
	card := s.Card()
	opts := s.Options()

	err = s.NewGame(Options{Size: 6, MaxNumber: 20})
	require.ErrorIs(t, err, ErrInsufficientPool)
	err = s.NewGame(Options{Size: 0, MaxNumber: 20})
	require.ErrorIs(t, err, ErrInvalidDimension)

	assert.Equal(t, card, s.Card())
	assert.Equal(t, opts, s.Options())
	assert.True(t, s.IsMarked(Coord{1, 1}))
	assert.Equal(t, []int{n}, s.Called())
}

func TestCalledIsACopy(t *testing.T) {
	s, err := NewSession(NewSeededGenerator(8), ClassicOptions(true))
	require.NoError(t, err)
	for range 3 {
		_, err := s.CallNumber()
		require.NoError(t, err)
	}
	want := s.Called()

	got := s.Called()
	got[0] = -1
	slices.Reverse(got)
	assert.Equal(t, want, s.Called())
}

func TestNewSessionInvalid(t *testing.T) {
	_, err := NewSession(nil, Options{Size: 5, MaxNumber: 10})
	assert.ErrorIs(t, err, ErrInsufficientPool)

	s, err := NewSession(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 5, s.Card().Size())
}
