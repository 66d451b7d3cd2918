package bingo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FreeLabel is how a free cell is displayed and serialized.
const FreeLabel = "FREE"

// Cell is one square of a card: either a number or the free space.
type Cell struct {
	Value int
	Free  bool
}

func (c Cell) String() string {
	if c.Free {
		return FreeLabel
	}
	return strconv.Itoa(c.Value)
}

// MarshalJSON encodes a cell as its bare number, or as the string "FREE".
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Free {
		return []byte(`"` + FreeLabel + `"`), nil
	}
	return strconv.AppendInt(nil, int64(c.Value), 10), nil
}

// UnmarshalJSON is the reverse of MarshalJSON.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != FreeLabel {
			return fmt.Errorf("invalid cell %q", s)
		}
		*c = Cell{Free: true}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid cell %s: %w", data, err)
	}
	*c = Cell{Value: v}
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (c Cell) MarshalYAML() (any, error) {
	if c.Free {
		return FreeLabel, nil
	}
	return c.Value, nil
}

// Card is a square grid of cells, indexed as card[row][col].
type Card [][]Cell

// Size returns the number of rows (and columns) of the card.
func (c Card) Size() int {
	return len(c)
}

// At returns the cell at the given coordinate. It panics if out of bounds,
// like slice indexing.
func (c Card) At(pos Coord) Cell {
	return c[pos.Row][pos.Col]
}

// Contains reports whether pos lies within the card.
func (c Card) Contains(pos Coord) bool {
	n := c.Size()
	return pos.Row >= 0 && pos.Row < n && pos.Col >= 0 && pos.Col < n
}

// FreeCell returns the coordinate of the free cell, if the card has one.
func (c Card) FreeCell() (Coord, bool) {
	for row := range c {
		for col := range c[row] {
			if c[row][col].Free {
				return Coord{Row: row, Col: col}, true
			}
		}
	}
	return Coord{}, false
}

// Numbers returns the non-free values in row-major order.
func (c Card) Numbers() []int {
	numbers := make([]int, 0, c.Size()*c.Size())
	for _, row := range c {
		for _, cell := range row {
			if !cell.Free {
				numbers = append(numbers, cell.Value)
			}
		}
	}
	return numbers
}

// Column returns the cells of column col, top to bottom.
func (c Card) Column(col int) []Cell {
	cells := make([]Cell, 0, c.Size())
	for _, row := range c {
		cells = append(cells, row[col])
	}
	return cells
}

func (c Card) String() string {
	var sb strings.Builder
	for i, row := range c {
		if i > 0 {
			sb.WriteString(" / ")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// Coord addresses a cell of a card.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Coord) String() string {
	return fmt.Sprintf("%d-%d", p.Row, p.Col)
}

// MarkSet is the set of cells marked by the player. The zero value is not
// usable, create one with NewMarkSet.
type MarkSet map[Coord]struct{}

// NewMarkSet returns a set with the given coordinates marked.
func NewMarkSet(marks ...Coord) MarkSet {
	m := make(MarkSet, len(marks))
	for _, pos := range marks {
		m[pos] = struct{}{}
	}
	return m
}

// Has reports whether pos is marked.
func (m MarkSet) Has(pos Coord) bool {
	_, found := m[pos]
	return found
}

// Toggle marks pos if it is not marked, and unmarks it otherwise.
// It returns whether pos is marked after the call.
func (m MarkSet) Toggle(pos Coord) bool {
	if m.Has(pos) {
		delete(m, pos)
		return false
	}
	m[pos] = struct{}{}
	return true
}

// Len returns the number of marked cells.
func (m MarkSet) Len() int {
	return len(m)
}
