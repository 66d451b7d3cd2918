package bingo

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// Session is one player's live game: a card, the cells the player marked,
// the numbers called so far and whether the player has won.
//
// The card is never modified: marks are kept apart, by coordinate.
// Win detection is not automatic: call CheckWin after changing the marks.
//
// A Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	ID string

	gen        *Generator
	opts       Options
	card       Card
	marked     MarkSet
	called     []int
	lastCalled int
	won        bool
}

// NewSession creates a session and deals its first card. If gen is nil the
// default generator is used.
func NewSession(gen *Generator, opts Options) (*Session, error) {
	if gen == nil {
		gen = defaultGenerator
	}
	s := &Session{
		ID:  uuid.NewString(),
		gen: gen,
	}
	if err := s.NewGame(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame deals a new card built with opts and resets marks, called numbers
// and the win flag.
//
// If the card can't be built, the session is left untouched and the error returned.
func (s *Session) NewGame(opts Options) error {
	card, err := s.gen.NewCard(opts)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	s.opts = opts
	s.card = card
	s.Reset()
	klog.V(1).Infof("Session %s: new game, options=%+v, card=%s", s.ID, opts, card)
	return nil
}

// Reset clears marks, called numbers and the win flag, keeping the card.
func (s *Session) Reset() {
	s.marked = NewMarkSet()
	s.called = nil
	s.lastCalled = 0
	s.won = false
}

// Options used to build the current card.
func (s *Session) Options() Options { return s.opts }

// Card currently in play. It must not be modified.
func (s *Session) Card() Card { return s.card }

// FreeSpace reports whether the current card has a free center.
func (s *Session) FreeSpace() bool { return s.opts.HasFreeCenter() }

// IsMarked reports whether the player marked pos. The free center is not
// reported as marked, use Covered for that.
func (s *Session) IsMarked(pos Coord) bool { return s.marked.Has(pos) }

// Covered reports whether pos is marked or is the free center.
func (s *Session) Covered(pos Coord) bool {
	return isCovered(s.marked, pos, s.card.Size(), s.opts.FreeSpace)
}

// MarkCount returns the number of cells marked by the player.
func (s *Session) MarkCount() int { return s.marked.Len() }

// Toggle marks or unmarks the cell at pos and returns whether it is marked
// afterwards. Toggling the free center does nothing, it is always covered.
//
// It fails with ErrGameOver once the session is won, and with ErrOutOfBounds
// if pos is not on the card.
func (s *Session) Toggle(pos Coord) (bool, error) {
	if s.won {
		return false, ErrGameOver
	}
	if !s.card.Contains(pos) {
		return false, fmt.Errorf("%w: %s on a %dx%d card", ErrOutOfBounds, pos, s.card.Size(), s.card.Size())
	}
	if s.card.At(pos).Free {
		return false, nil
	}
	return s.marked.Toggle(pos), nil
}

// CallNumber draws the next number, appends it to the called numbers and returns it.
//
// It fails with ErrGameOver once the session is won, and with
// ErrPoolExhausted when all numbers were called.
func (s *Session) CallNumber() (int, error) {
	if s.won {
		return 0, ErrGameOver
	}
	n, err := s.gen.Draw(s.called)
	if err != nil {
		return 0, err
	}
	s.called = append(s.called, n)
	s.lastCalled = n
	klog.V(1).Infof("Session %s: called %s (%d called)", s.ID, Announce(n), len(s.called))
	return n, nil
}

// Called returns the called numbers, in the order they were drawn.
func (s *Session) Called() []int { return slices.Clone(s.called) }

// CalledSorted returns the called numbers in increasing order.
func (s *Session) CalledSorted() []int { return SortedCopy(s.called) }

// LastCalled returns the most recently called number, or 0 if none was called yet.
func (s *Session) LastCalled() int { return s.lastCalled }

// CheckWin evaluates the current marks and returns whether the session is won.
//
// Once won, a session stays won until the next NewGame or Reset, even if
// marks are removed.
func (s *Session) CheckWin() bool {
	if s.won {
		return true
	}
	if HasWon(s.marked, s.card.Size(), s.opts.FreeSpace) {
		s.won = true
		klog.Infof("Session %s: BINGO after %d calls and %d marks", s.ID, len(s.called), s.marked.Len())
	}
	return s.won
}

// Won returns the result of the last CheckWin.
func (s *Session) Won() bool { return s.won }

// WinningLines returns the lines currently complete on the card.
func (s *Session) WinningLines() []Line {
	return WinningLines(s.marked, s.card.Size(), s.opts.FreeSpace)
}
