package bingo

import (
	"fmt"
	"math/rand/v2"
)

// Generator creates cards and draws numbers from a random source.
//
// A Generator is not safe for concurrent use when created with a seed, since
// the underlying *rand.Rand isn't. The default generator uses the global
// math/rand/v2 source and can be shared.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator backed by rng. If rng is nil, the global
// source of math/rand/v2 is used.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a generator whose output is fully determined by seed.
// Useful for tests and to reproduce a printed batch of cards.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// defaultGenerator backs the package level functions.
var defaultGenerator = NewGenerator(nil)

// intN returns a uniform number in [0, n).
func (g *Generator) intN(n int) int {
	if g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}

// shuffle applies Fisher-Yates in place: for each index from the tail down,
// swap it with a uniformly chosen index in [0, i].
func (g *Generator) shuffle(pool []int) {
	for i := len(pool) - 1; i > 0; i-- {
		j := g.intN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}

// numberPool returns the integers in [lo, hi].
func numberPool(lo, hi int) []int {
	pool := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		pool = append(pool, n)
	}
	return pool
}

// pop removes and returns the last element of the pool.
func pop(pool *[]int) int {
	last := len(*pool) - 1
	n := (*pool)[last]
	*pool = (*pool)[:last]
	return n
}

// hasFreeCenter tells whether a card of the given size gets a free space.
// Even sizes have no unambiguous center, so freeSpace is ignored for them.
func hasFreeCenter(size int, freeSpace bool) bool {
	return freeSpace && size%2 == 1
}

// CellsNeeded returns how many distinct numbers a card of the given size needs.
func CellsNeeded(size int, freeSpace bool) int {
	needed := size * size
	if hasFreeCenter(size, freeSpace) {
		needed--
	}
	return needed
}

func validate(size, maxNumber int, freeSpace bool) error {
	if size < 1 {
		return fmt.Errorf("%w: card size must be at least 1, got %d", ErrInvalidDimension, size)
	}
	if needed := CellsNeeded(size, freeSpace); maxNumber < needed {
		return fmt.Errorf("%w: a %dx%d card needs %d distinct numbers, but the maximum number is %d",
			ErrInsufficientPool, size, size, needed, maxNumber)
	}
	return nil
}

// Generate creates a size x size card with distinct numbers in [1, maxNumber].
//
// If freeSpace is set and size is odd, the center cell is free. Numbers are
// taken from the tail of a shuffled pool in row-major order, so generation is
// O(maxNumber) and every arrangement is equally likely.
func (g *Generator) Generate(size, maxNumber int, freeSpace bool) (Card, error) {
	if err := validate(size, maxNumber, freeSpace); err != nil {
		return nil, err
	}

	pool := numberPool(1, maxNumber)
	g.shuffle(pool)

	free := hasFreeCenter(size, freeSpace)
	center := size / 2
	card := make(Card, size)
	for row := range size {
		card[row] = make([]Cell, size)
		for col := range size {
			if free && row == center && col == center {
				card[row][col] = Cell{Free: true}
				continue
			}
			card[row][col] = Cell{Value: pop(&pool)}
		}
	}
	return card, nil
}

// GenerateMultiple creates count independent cards. Different cards may share
// numbers, as in a real set of bingo cards.
//
// It either returns all cards or none.
func (g *Generator) GenerateMultiple(count, size, maxNumber int, freeSpace bool) ([]Card, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: number of cards must not be negative, got %d", ErrInvalidDimension, count)
	}
	if err := validate(size, maxNumber, freeSpace); err != nil {
		return nil, err
	}
	cards := make([]Card, 0, count)
	for range count {
		card, err := g.Generate(size, maxNumber, freeSpace)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Generate creates a card using the default generator. See Generator.Generate.
func Generate(size, maxNumber int, freeSpace bool) (Card, error) {
	return defaultGenerator.Generate(size, maxNumber, freeSpace)
}

// GenerateMultiple creates cards using the default generator. See Generator.GenerateMultiple.
func GenerateMultiple(count, size, maxNumber int, freeSpace bool) ([]Card, error) {
	return defaultGenerator.GenerateMultiple(count, size, maxNumber, freeSpace)
}
