// Package export renders batches of already generated cards for printing or
// for consumption by other tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/janpfeifer/GoBingo/internal/bingo"
	"gopkg.in/yaml.v3"
)

// Sheet is a printable set of cards.
type Sheet struct {
	Title   string        `json:"title" yaml:"title"`
	Options bingo.Options `json:"options" yaml:"options"`
	Cards   []SheetCard   `json:"cards" yaml:"cards"`
}

// SheetCard is one card of a sheet, with its position and a serial to tell
// printed cards apart.
type SheetCard struct {
	Number int        `json:"number" yaml:"number"`
	Serial string     `json:"serial" yaml:"serial"`
	Grid   bingo.Card `json:"grid" yaml:"grid"`
}

// NewSheet numbers the cards from 1 and assigns each a random serial.
// The cards are referenced, not copied, and must not be modified afterwards.
func NewSheet(title string, opts bingo.Options, cards []bingo.Card) Sheet {
	sheet := Sheet{
		Title:   title,
		Options: opts,
		Cards:   make([]SheetCard, 0, len(cards)),
	}
	for i, card := range cards {
		sheet.Cards = append(sheet.Cards, SheetCard{
			Number: i + 1,
			Serial: uuid.NewString(),
			Grid:   card,
		})
	}
	return sheet
}

// Format of the exported sheet.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat converts a format name, case-insensitive, to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, valid formats are %v", name, Formats)
}

// Write renders the sheet to w in the given format.
func Write(w io.Writer, sheet Sheet, format Format) error {
	switch format {
	case FormatText:
		return WriteText(w, sheet)
	case FormatJSON:
		return WriteJSON(w, sheet)
	case FormatYAML:
		return WriteYAML(w, sheet)
	}
	return fmt.Errorf("unknown format %q", format)
}

// WriteJSON writes the sheet as indented JSON.
func WriteJSON(w io.Writer, sheet Sheet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sheet); err != nil {
		return fmt.Errorf("failed to encode sheet as JSON: %w", err)
	}
	return nil
}

// WriteYAML writes the sheet as a YAML document.
func WriteYAML(w io.Writer, sheet Sheet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sheet); err != nil {
		return fmt.Errorf("failed to encode sheet as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode sheet as YAML: %w", err)
	}
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	freeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	cellStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// WriteText writes every card as a table, one after the other, for a terminal
// or a plain text printout. Classic sheets get the B-I-N-G-O headers.
func WriteText(w io.Writer, sheet Sheet) error {
	if sheet.Title != "" {
		if _, err := fmt.Fprintln(w, titleStyle.Render(sheet.Title)); err != nil {
			return err
		}
	}
	for _, sc := range sheet.Cards {
		header := fmt.Sprintf("%s CARD #%d", cardTitle(sheet), sc.Number)
		if _, err := fmt.Fprintf(w, "\n%s  %s\n%s\n", titleStyle.Render(header), sc.Serial, RenderCard(sc.Grid, sheet.Options.Classic)); err != nil {
			return err
		}
	}
	return nil
}

func cardTitle(sheet Sheet) string {
	if sheet.Title != "" {
		return strings.ToUpper(sheet.Title)
	}
	return "BINGO"
}

// RenderCard renders a single card as a bordered table.
func RenderCard(card bingo.Card, classic bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row >= 0 && row < len(card) && col < len(card[row]) && card[row][col].Free {
				return cellStyle.Inherit(freeStyle)
			}
			return cellStyle
		})
	if classic {
		t = t.Headers(bingo.Letters[:]...)
	}
	for _, row := range card {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell.String())
		}
		t = t.Row(cells...)
	}
	return t.Render()
}
