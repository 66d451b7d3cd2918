package bingo

// LineKind identifies the direction of a winning line.
type LineKind int

const (
	Row LineKind = iota
	Column
	Diagonal     // Top-left to bottom-right.
	AntiDiagonal // Top-right to bottom-left.
)

func (k LineKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	}
	return "unknown"
}

// Line is a row, column or diagonal of a card.
type Line struct {
	Kind  LineKind
	Index int // Row or column number, 0 for diagonals.
	Cells []Coord
}

// Lines enumerates all lines of a size x size card: rows, then columns, then
// both diagonals.
func Lines(size int) []Line {
	if size < 1 {
		return nil
	}
	lines := make([]Line, 0, 2*size+2)
	for row := range size {
		line := Line{Kind: Row, Index: row}
		for col := range size {
			line.Cells = append(line.Cells, Coord{row, col})
		}
		lines = append(lines, line)
	}
	for col := range size {
		line := Line{Kind: Column, Index: col}
		for row := range size {
			line.Cells = append(line.Cells, Coord{row, col})
		}
		lines = append(lines, line)
	}
	diagonal := Line{Kind: Diagonal}
	antiDiagonal := Line{Kind: AntiDiagonal}
	for i := range size {
		diagonal.Cells = append(diagonal.Cells, Coord{i, i})
		antiDiagonal.Cells = append(antiDiagonal.Cells, Coord{i, size - 1 - i})
	}
	return append(lines, diagonal, antiDiagonal)
}

// isCovered tells whether a cell counts as marked: either the player marked
// it, or it is the free center.
func isCovered(marked MarkSet, pos Coord, size int, freeSpace bool) bool {
	if hasFreeCenter(size, freeSpace) && pos.Row == size/2 && pos.Col == size/2 {
		return true
	}
	return marked.Has(pos)
}

func isComplete(line Line, marked MarkSet, size int, freeSpace bool) bool {
	for _, pos := range line.Cells {
		if !isCovered(marked, pos, size, freeSpace) {
			return false
		}
	}
	return true
}

// HasWon reports whether at least one row, column or diagonal of a
// size x size card is completely covered by marked, counting the free center
// as covered when freeSpace is set and size is odd.
//
// It is pure and cheap (O(size²)), so it is meant to be re-evaluated from
// scratch after every change to marked.
func HasWon(marked MarkSet, size int, freeSpace bool) bool {
	for _, line := range Lines(size) {
		if isComplete(line, marked, size, freeSpace) {
			return true
		}
	}
	return false
}

// WinningLines returns every complete line, in the order given by Lines.
func WinningLines(marked MarkSet, size int, freeSpace bool) []Line {
	var won []Line
	for _, line := range Lines(size) {
		if isComplete(line, marked, size, freeSpace) {
			won = append(won, line)
		}
	}
	return won
}
