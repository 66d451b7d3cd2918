// bingo-cards generates bingo cards and calls from the command line, for
// printing or for use by other tools.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/janpfeifer/GoBingo/internal/bingo"
	"github.com/janpfeifer/GoBingo/internal/export"
)

type CLI struct {
	Seed *int64 `help:"Random seed for reproducible results"`

	Cards   CardsCmd   `cmd:"" help:"Generate a batch of printable cards of any size."`
	Classic ClassicCmd `cmd:"" help:"Generate classic B-I-N-G-O cards, with fixed ranges per column."`
	Call    CallCmd    `cmd:"" help:"Simulate a caller drawing numbers from 1 to 75."`
}

// runContext is bound to the Run method of every command.
type runContext struct {
	out io.Writer
	gen *bingo.Generator
}

func newRunContext(out io.Writer, seed *int64) *runContext {
	gen := bingo.NewGenerator(nil)
	if seed != nil {
		gen = bingo.NewSeededGenerator(uint64(*seed))
	}
	return &runContext{out: out, gen: gen}
}

// Limits on a single run, so that a typo in a flag gets an error instead of
// an attempt to allocate gigabytes.
const (
	maxCards     = 1000
	maxCardSize  = 100
	maxMaxNumber = maxCardSize * maxCardSize
)

func validateCount(count int) error {
	if count < 0 || count > maxCards {
		return fmt.Errorf("--count must be between 0 and %d, got %d", maxCards, count)
	}
	return nil
}

type CardsCmd struct {
	Count     int    `short:"n" default:"20" help:"Number of cards to generate"`
	Size      int    `short:"s" default:"5" help:"Size of the cards (rows and columns)"`
	MaxNumber int    `short:"m" default:"100" help:"Highest number that can appear on a card"`
	FreeSpace bool   `default:"true" negatable:"" help:"Free space at the center of odd sized cards"`
	Title     string `short:"t" default:"Bingo" help:"Title of the sheet"`
	Format    string `short:"f" enum:"text,json,yaml" default:"text" help:"Output format: text, json or yaml"`
}

// Validate is called by kong after parsing.
func (c *CardsCmd) Validate() error {
	if err := validateCount(c.Count); err != nil {
		return err
	}
	if c.Size < 1 || c.Size > maxCardSize {
		return fmt.Errorf("--size must be between 1 and %d, got %d", maxCardSize, c.Size)
	}
	if c.MaxNumber < 1 || c.MaxNumber > maxMaxNumber {
		return fmt.Errorf("--max-number must be between 1 and %d, got %d", maxMaxNumber, c.MaxNumber)
	}
	return nil
}

func (c *CardsCmd) Run(rc *runContext) error {
	opts := bingo.Options{Size: c.Size, MaxNumber: c.MaxNumber, FreeSpace: c.FreeSpace}
	return writeSheet(rc, c.Title, c.Count, opts, c.Format)
}

type ClassicCmd struct {
	Count     int    `short:"n" default:"1" help:"Number of cards to generate"`
	FreeSpace bool   `default:"true" negatable:"" help:"Free space at the center"`
	Title     string `short:"t" default:"Bingo" help:"Title of the sheet"`
	Format    string `short:"f" enum:"text,json,yaml" default:"text" help:"Output format: text, json or yaml"`
}

func (c *ClassicCmd) Validate() error { return validateCount(c.Count) }

func (c *ClassicCmd) Run(rc *runContext) error {
	return writeSheet(rc, c.Title, c.Count, bingo.ClassicOptions(c.FreeSpace), c.Format)
}

func writeSheet(rc *runContext, title string, count int, opts bingo.Options, formatName string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	cards, err := rc.gen.NewCards(count, opts)
	if err != nil {
		return err
	}
	return export.Write(rc.out, export.NewSheet(title, opts, cards), format)
}

type CallCmd struct {
	Count int `short:"n" default:"75" help:"How many numbers to call (at most 75)"`
}

func (c *CallCmd) Run(rc *runContext) error {
	var called []int
	for i := range c.Count {
		n, err := rc.gen.Draw(called)
		if err != nil {
			return fmt.Errorf("call #%d: %w", i+1, err)
		}
		called = append(called, n)
		if _, err := fmt.Fprintf(rc.out, "%2d. %s\n", i+1, bingo.Announce(n)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bingo-cards"),
		kong.Description("Generates bingo cards and calls."),
		kong.UsageOnError(),
	)
	err := ctx.Run(newRunContext(os.Stdout, cli.Seed))
	ctx.FatalIfErrorf(err)
}
