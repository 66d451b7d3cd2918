package frontend

import (
	"testing"

	"github.com/janpfeifer/GoBingo/internal/bingo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetState gives each test a fresh, deterministic client state.
func resetState(t *testing.T) (notified *int) {
	t.Helper()
	State = nil
	InitState()
	State.Generator = bingo.NewSeededGenerator(17)
	count := 0
	State.Listeners["test"] = func() { count++ }
	t.Cleanup(func() { State = nil })
	return &count
}

func TestStartGameAndWin(t *testing.T) {
	notified := resetState(t)
	assert.False(t, State.GameActive())

	// Nothing happens before the first game.
	State.CallNumber()
	State.ToggleGameCell(bingo.Coord{Row: 0, Col: 0})
	assert.Zero(t, *notified)

	State.StartGame()
	require.NotNil(t, State.Game)
	assert.True(t, State.GameActive())
	assert.Equal(t, 1, *notified)
	assert.True(t, State.Game.FreeSpace())

	State.CallNumber()
	assert.Len(t, State.Game.Called(), 1)
	assert.Empty(t, State.Error)

	for _, row := range []int{0, 1, 3, 4} {
		State.ToggleGameCell(bingo.Coord{Row: row, Col: 2})
	}
	assert.True(t, State.Game.Won())
	assert.False(t, State.GameActive())

	// The game is over: calls and marks are ignored.
	State.CallNumber()
	assert.Len(t, State.Game.Called(), 1)
	State.ToggleGameCell(bingo.Coord{Row: 0, Col: 0})
	assert.False(t, State.Game.IsMarked(bingo.Coord{Row: 0, Col: 0}))

	// A new game, this time without free space, resets the win.
	State.GameFreeSpace = false
	State.StartGame()
	assert.True(t, State.GameActive())
	assert.False(t, State.Game.FreeSpace())
	assert.Empty(t, State.Game.Called())
}

func TestCallNumberExhausted(t *testing.T) {
	resetState(t)
	State.StartGame()
	for range bingo.MaxCall {
		State.CallNumber()
	}
	assert.Empty(t, State.Error)
	State.CallNumber()
	assert.Equal(t, "All numbers have been called!", State.Error)
	assert.Len(t, State.Game.Called(), bingo.MaxCall)

	State.StartGame()
	assert.Empty(t, State.Error)
}

func TestNewPlayCardKeepsCardOnError(t *testing.T) {
	resetState(t)
	State.NewPlayCard(bingo.DefaultOptions())
	require.NotNil(t, State.Play)
	card := State.Play.Card()

	State.TogglePlayCell(bingo.Coord{Row: 1, Col: 1})
	assert.True(t, State.Play.IsMarked(bingo.Coord{Row: 1, Col: 1}))

	// A 6x6 card needs 36 numbers.
	bad := bingo.Options{Size: 6, MaxNumber: 25}
	State.NewPlayCard(bad)
	assert.Contains(t, State.Error, "insufficient number pool")
	assert.Equal(t, card, State.Play.Card())
	assert.Equal(t, bingo.DefaultOptions(), State.PlayOptions)
	assert.True(t, State.Play.IsMarked(bingo.Coord{Row: 1, Col: 1}))

	State.NewPlayCard(bingo.Options{Size: 3, MaxNumber: 25, FreeSpace: true})
	assert.Empty(t, State.Error)
	assert.Equal(t, 3, State.Play.Card().Size())
	assert.Zero(t, State.Play.MarkCount())
}

func TestNewPlayCardFirstCardInvalid(t *testing.T) {
	resetState(t)
	State.NewPlayCard(bingo.Options{Size: 6, MaxNumber: 25})
	assert.Nil(t, State.Play)
	assert.NotEmpty(t, State.Error)

	// Toggling without a card is ignored.
	State.TogglePlayCell(bingo.Coord{})
}

func TestGeneratePrintCards(t *testing.T) {
	resetState(t)
	State.GeneratePrintCards(4, bingo.Options{Size: 4, MaxNumber: 50})
	require.Len(t, State.PrintCards, 4)
	previous := State.PrintCards
	assert.Equal(t, 4, State.PrintCount)

	State.GeneratePrintCards(10, bingo.Options{Size: 5, MaxNumber: 20, FreeSpace: true})
	assert.NotEmpty(t, State.Error)
	assert.Equal(t, previous, State.PrintCards)
	assert.Equal(t, 4, State.PrintCount)
}

func TestHeaders(t *testing.T) {
	resetState(t)
	assert.Equal(t, []string{"B", "I", "N", "G", "O"}, State.Headers())

	State.Title = "fun"
	assert.Equal(t, []string{"F", "U", "N", "", ""}, State.Headers())

	State.Title = "TOOLONG"
	assert.Equal(t, []string{"T", "O", "O", "L", "O"}, State.Headers())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, MinMaxNumber, clamp(3, MinMaxNumber, MaxMaxNumber))
	assert.Equal(t, MaxMaxNumber, clamp(5000, MinMaxNumber, MaxMaxNumber))
	assert.Equal(t, 100, clamp(100, MinMaxNumber, MaxMaxNumber))
}

func TestWinningCells(t *testing.T) {
	lines := bingo.Lines(3)
	cells := winningCells(lines[:2])
	assert.Len(t, cells, 6)
	assert.True(t, cells[bingo.Coord{Row: 1, Col: 2}])
	assert.False(t, cells[bingo.Coord{Row: 2, Col: 0}])
}
