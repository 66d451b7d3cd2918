package bingo

import (
	"fmt"
	"slices"
)

// MaxCall is the highest number that can be called.
const MaxCall = 75

// CallColumns are the ranges used to announce a called number with its letter.
// See ClassicColumns for how they differ from card placement.
var CallColumns = [ClassicSize]ColumnRange{
	{"B", 1, 15},
	{"I", 16, 30},
	{"N", 31, 45},
	{"G", 46, 60},
	{"O", 61, 75},
}

// Draw returns a number in [1, MaxCall] that is not in called, chosen
// uniformly among the remaining ones. Values of called outside the range are
// ignored.
//
// It returns ErrPoolExhausted once all MaxCall numbers were called.
func (g *Generator) Draw(called []int) (int, error) {
	var seen [MaxCall + 1]bool
	for _, n := range called {
		if n >= 1 && n <= MaxCall {
			seen[n] = true
		}
	}
	available := make([]int, 0, MaxCall)
	for n := 1; n <= MaxCall; n++ {
		if !seen[n] {
			available = append(available, n)
		}
	}
	if len(available) == 0 {
		return 0, ErrPoolExhausted
	}
	return available[g.intN(len(available))], nil
}

// Draw picks the next number using the default generator. See Generator.Draw.
func Draw(called []int) (int, error) {
	return defaultGenerator.Draw(called)
}

// LetterFor returns the letter a called number is announced with, or "" if n
// can't be called.
func LetterFor(n int) string {
	for _, r := range CallColumns {
		if r.Contains(n) {
			return r.Letter
		}
	}
	return ""
}

// Announce formats a called number the way a caller says it, e.g. "B-12".
func Announce(n int) string {
	letter := LetterFor(n)
	if letter == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s-%d", letter, n)
}

// SortedCopy returns the called numbers in increasing order, leaving called untouched.
func SortedCopy(called []int) []int {
	sorted := slices.Clone(called)
	slices.Sort(sorted)
	return sorted
}
