package bingo

import "fmt"

// Default card settings.
const (
	DefaultSize      = 5
	DefaultMaxNumber = 100
)

// Options describe how to build a card.
type Options struct {
	// Classic selects the B-I-N-G-O layout, with fixed per-column ranges.
	// Size and MaxNumber are ignored in that case.
	Classic bool `json:"classic" yaml:"classic"`

	Size      int  `json:"size" yaml:"size"`
	MaxNumber int  `json:"max_number" yaml:"max_number"`
	FreeSpace bool `json:"free_space" yaml:"free_space"`
}

// ClassicOptions returns the options of a classic B-I-N-G-O card.
func ClassicOptions(freeSpace bool) Options {
	return Options{
		Classic:   true,
		Size:      ClassicSize,
		MaxNumber: ClassicColumns[ClassicSize-1].Max,
		FreeSpace: freeSpace,
	}
}

// DefaultOptions returns the options of a free-form 5x5 card with numbers up to 100.
func DefaultOptions() Options {
	return Options{
		Size:      DefaultSize,
		MaxNumber: DefaultMaxNumber,
		FreeSpace: true,
	}
}

// CardSize returns the size of the cards built with these options.
func (o Options) CardSize() int {
	if o.Classic {
		return ClassicSize
	}
	return o.Size
}

// HasFreeCenter reports whether cards built with these options have a free center.
func (o Options) HasFreeCenter() bool {
	return hasFreeCenter(o.CardSize(), o.FreeSpace)
}

// Validate checks the options can produce a card.
func (o Options) Validate() error {
	if o.Classic {
		return nil
	}
	return validate(o.Size, o.MaxNumber, o.FreeSpace)
}

// NewCard builds one card according to opts.
func (g *Generator) NewCard(opts Options) (Card, error) {
	if opts.Classic {
		return g.GenerateClassic(opts.FreeSpace), nil
	}
	return g.Generate(opts.Size, opts.MaxNumber, opts.FreeSpace)
}

// NewCards builds count cards according to opts, or none on error.
func (g *Generator) NewCards(count int, opts Options) ([]Card, error) {
	if !opts.Classic {
		return g.GenerateMultiple(count, opts.Size, opts.MaxNumber, opts.FreeSpace)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: number of cards must not be negative, got %d", ErrInvalidDimension, count)
	}
	cards := make([]Card, 0, count)
	for range count {
		cards = append(cards, g.GenerateClassic(opts.FreeSpace))
	}
	return cards, nil
}
