package bingo

// ClassicSize is the size of a B-I-N-G-O card.
const ClassicSize = 5

// Letters are the column headers of a classic card.
var Letters = [ClassicSize]string{"B", "I", "N", "G", "O"}

// ColumnRange is the inclusive range of numbers associated with a letter.
type ColumnRange struct {
	Letter string
	Min    int
	Max    int
}

// Contains reports whether n is within the range.
func (r ColumnRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// ClassicColumns are the ranges numbers are placed from, per column, on a
// classic card.
//
// Notice these are not the same as CallColumns, used to announce called
// numbers: a card holds numbers up to 100, while only 1 to 75 are ever called.
var ClassicColumns = [ClassicSize]ColumnRange{
	{"B", 1, 20},
	{"I", 21, 40},
	{"N", 41, 60},
	{"G", 61, 80},
	{"O", 81, 100},
}

// GenerateClassic creates a 5x5 card where each column draws 5 distinct
// numbers from its ClassicColumns range.
//
// With freeSpace the center cell is free and the N column only draws 4
// numbers, so no number is drawn and then thrown away.
func (g *Generator) GenerateClassic(freeSpace bool) Card {
	const center = ClassicSize / 2
	card := make(Card, ClassicSize)
	for row := range card {
		card[row] = make([]Cell, ClassicSize)
	}
	for col, columnRange := range ClassicColumns {
		pool := numberPool(columnRange.Min, columnRange.Max)
		g.shuffle(pool)
		for row := range ClassicSize {
			if freeSpace && row == center && col == center {
				card[row][col] = Cell{Free: true}
				continue
			}
			card[row][col] = Cell{Value: pop(&pool)}
		}
	}
	return card
}

// GenerateClassic creates a classic card using the default generator.
func GenerateClassic(freeSpace bool) Card {
	return defaultGenerator.GenerateClassic(freeSpace)
}
