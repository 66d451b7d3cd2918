package frontend

import (
	"errors"
	"strings"

	"github.com/janpfeifer/GoBingo/internal/bingo"
	"k8s.io/klog/v2"
)

// Limits of the settings forms.
const (
	MinMaxNumber = 25
	MaxMaxNumber = 1000
	MinCardSize  = 3
	MaxCardSize  = 6
	MinPrintRun  = 1
	MaxPrintRun  = 100

	DefaultPrintRun = 20
	DefaultTitle    = "BINGO"
)

// GlobalClientState holds everything the pages show. It lives only in the
// browser tab: a reload starts from scratch.
type GlobalClientState struct {
	Generator *bingo.Generator
	Error     string

	// Classic live game (/game). Game is nil until the first "New Game".
	Game          *bingo.Session
	GameFreeSpace bool
	Title         string

	// Free-form card (/play).
	Play        *bingo.Session
	PlayOptions bingo.Options

	// Batch of printable cards (/print).
	PrintOptions bingo.Options
	PrintCount   int
	PrintCards   []bingo.Card

	// Listeners for state updates
	Listeners map[string]func()
}

var State *GlobalClientState

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		State = &GlobalClientState{
			Generator:     bingo.NewGenerator(nil),
			GameFreeSpace: true,
			Title:         DefaultTitle,
			PlayOptions:   bingo.DefaultOptions(),
			PrintOptions:  bingo.DefaultOptions(),
			PrintCount:    DefaultPrintRun,
			Listeners:     make(map[string]func()),
		}
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

func (s *GlobalClientState) Notify() {
	klog.V(1).Infof("GlobalClientState: Notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

// setError records err for display, or clears the error if err is nil.
func (s *GlobalClientState) setError(err error) {
	if err == nil {
		s.Error = ""
		return
	}
	klog.Errorf("GlobalClientState: %v", err)
	s.Error = err.Error()
}

// Headers returns the column headers of the live game, taken from the title
// letters.
func (s *GlobalClientState) Headers() []string {
	headers := make([]string, bingo.ClassicSize)
	for i, r := range []rune(strings.ToUpper(s.Title)) {
		if i >= len(headers) {
			break
		}
		headers[i] = string(r)
	}
	return headers
}

// StartGame deals a new classic card and clears the called numbers.
func (s *GlobalClientState) StartGame() {
	opts := bingo.ClassicOptions(s.GameFreeSpace)
	if s.Game == nil {
		game, err := bingo.NewSession(s.Generator, opts)
		if err != nil {
			s.setError(err)
			return
		}
		s.Game = game
	} else if err := s.Game.NewGame(opts); err != nil {
		s.setError(err)
		return
	}
	klog.Infof("StartGame: session %s, free space=%v", s.Game.ID, s.GameFreeSpace)
	s.setError(nil)
	s.Notify()
}

// GameActive reports whether numbers can be called and cells marked.
func (s *GlobalClientState) GameActive() bool {
	return s.Game != nil && !s.Game.Won()
}

// CallNumber draws the next number of the live game.
func (s *GlobalClientState) CallNumber() {
	if !s.GameActive() {
		return
	}
	n, err := s.Game.CallNumber()
	if errors.Is(err, bingo.ErrPoolExhausted) {
		s.Error = "All numbers have been called!"
	} else {
		s.setError(err)
	}
	if err == nil {
		klog.Infof("CallNumber: %s", bingo.Announce(n))
	}
	s.Notify()
}

// ToggleGameCell marks or unmarks a cell of the live game and re-checks the win.
func (s *GlobalClientState) ToggleGameCell(pos bingo.Coord) {
	if !s.GameActive() {
		return
	}
	toggleAndCheck(s.Game, pos)
	s.Notify()
}

// NewPlayCard deals a free-form card with opts. On error the previous card is kept.
func (s *GlobalClientState) NewPlayCard(opts bingo.Options) {
	if s.Play == nil {
		play, err := bingo.NewSession(s.Generator, opts)
		if err != nil {
			s.setError(err)
			s.Notify()
			return
		}
		s.Play = play
	} else if err := s.Play.NewGame(opts); err != nil {
		s.setError(err)
		s.Notify()
		return
	}
	s.PlayOptions = opts
	s.setError(nil)
	s.Notify()
}

// TogglePlayCell marks or unmarks a cell of the free-form card.
func (s *GlobalClientState) TogglePlayCell(pos bingo.Coord) {
	if s.Play == nil || s.Play.Won() {
		return
	}
	toggleAndCheck(s.Play, pos)
	s.Notify()
}

func toggleAndCheck(session *bingo.Session, pos bingo.Coord) {
	marked, err := session.Toggle(pos)
	if err != nil {
		klog.Errorf("Toggle %s: %v", pos, err)
		return
	}
	klog.V(1).Infof("Toggle %s: marked=%v", pos, marked)
	if session.CheckWin() {
		klog.Infof("BINGO! session %s", session.ID)
	}
}

// GeneratePrintCards replaces the printable batch. On error the previous batch is kept.
func (s *GlobalClientState) GeneratePrintCards(count int, opts bingo.Options) {
	cards, err := s.Generator.NewCards(count, opts)
	if err != nil {
		s.setError(err)
		s.Notify()
		return
	}
	s.PrintCount = count
	s.PrintOptions = opts
	s.PrintCards = cards
	s.setError(nil)
	klog.Infof("GeneratePrintCards: %d cards of %dx%d", count, opts.CardSize(), opts.CardSize())
	s.Notify()
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
