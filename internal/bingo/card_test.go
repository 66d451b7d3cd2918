package bingo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellJSON(t *testing.T) {
	card := Card{
		{{Value: 1}, {Value: 2}, {Value: 3}},
		{{Value: 4}, {Free: true}, {Value: 6}},
		{{Value: 7}, {Value: 8}, {Value: 9}},
	}
	data, err := json.Marshal(card)
	require.NoError(t, err)
	assert.Equal(t, `[[1,2,3],[4,"FREE",6],[7,8,9]]`, string(data))

	var decoded Card
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, card, decoded)

	var cell Cell
	assert.Error(t, json.Unmarshal([]byte(`"BUSY"`), &cell))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &cell))
}

func TestCardString(t *testing.T) {
	card := Card{
		{{Value: 10}, {Value: 2}},
		{{Value: 3}, {Value: 44}},
	}
	assert.Equal(t, "10 2 / 3 44", card.String())
	assert.Equal(t, "FREE", Cell{Free: true}.String())
	assert.Equal(t, "1-3", Coord{1, 3}.String())

	_, hasFree := card.FreeCell()
	assert.False(t, hasFree)
	assert.True(t, card.Contains(Coord{1, 1}))
	assert.False(t, card.Contains(Coord{2, 0}))
}

func TestMarkSet(t *testing.T) {
	m := NewMarkSet(Coord{0, 0})
	assert.True(t, m.Has(Coord{0, 0}))
	assert.True(t, m.Toggle(Coord{1, 1}))
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Toggle(Coord{0, 0}))
	assert.False(t, m.Has(Coord{0, 0}))
	assert.Equal(t, 1, m.Len())
}
