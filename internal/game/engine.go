// apps/wordle-utils/internal/game/engine.go
//
// Scoring engine for a single Wordle guess.
// Responsibilities:
//   - Replace one character of a word by position.
//   - Mark exact-position matches (greens).
//   - Mark present-but-misplaced letters (yellows), honouring multiplicity.
//   - Combine both into a per-position Color classification.
//   - Fold a guess into the included/excluded/possible letter sets.
//
// Notes:
//   - Words are compared rune by rune and case-sensitively; callers
//     normalize case before scoring.
//   - Every function validates its inputs and returns a wrapped sentinel
//     error instead of producing partial results.
package game

import (
	"errors"
	"fmt"
)

// consumed overwrites answer letters that were already credited.
// It never matches a guess letter since guesses are alphabetic.
const consumed = '*'

var (
	// ErrOutOfBounds is returned by Replace for an index outside the word.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidArgument is returned when guess and answer lengths differ.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Replace returns a copy of s with the rune at index replaced by c.
// An index outside [0, len) fails with ErrOutOfBounds.
func Replace(s string, index int, c rune) (string, error) {
	rs := []rune(s)
	if index < 0 || index >= len(rs) {
		return "", fmt.Errorf("replace %q at %d: %w", s, index, ErrOutOfBounds)
	}
	rs[index] = c
	return string(rs), nil
}

// Greens reports, per position, whether guess and answer hold the same letter.
func Greens(guess, answer string) ([]bool, error) {
	g, a, err := split(guess, answer)
	if err != nil {
		return nil, err
	}
	return greens(g, a), nil
}

// Yellows reports, per position, whether the guess letter is present
// elsewhere in the answer.
//
// Answer letters matched as green are consumed first. The remaining guess
// positions are then scanned left to right; each hit consumes the first
// unconsumed occurrence
// in the answer, so a repeated guess letter is only credited as many times
// as the answer can pay for it.
func Yellows(guess, answer string) ([]bool, error) {
	g, a, err := split(guess, answer)
	if err != nil {
		return nil, err
	}
	return yellows(g, a, greens(g, a))
}

// Colors classifies every position of guess: green wins over yellow,
// anything else is gray.
func Colors(guess, answer string) ([]Color, error) {
	g, a, err := split(guess, answer)
	if err != nil {
		return nil, err
	}
	return colors(g, a)
}

// UpdateLetters moves every guess letter still in possible into included
// (green or yellow) or excluded (gray). Letters already outside possible
// are left alone: the first classification of a letter is final.
func UpdateLetters(guess, answer string, included, excluded, possible *LetterSet) error {
	if included == nil || excluded == nil || possible == nil {
		return fmt.Errorf("update letters: nil letter set: %w", ErrInvalidArgument)
	}
	g, a, err := split(guess, answer)
	if err != nil {
		return err
	}
	cs, err := colors(g, a)
	if err != nil {
		return err
	}
	for i, c := range cs {
		letter := g[i]
		if !possible.Contains(letter) {
			continue
		}
		possible.Remove(letter)
		if c == ColorGreen || c == ColorYellow {
			included.Add(letter)
		} else {
			excluded.Add(letter)
		}
	}
	return nil
}

// Solved reports whether every position is green.
func Solved(cs []Color) bool {
	for _, c := range cs {
		if c != ColorGreen {
			return false
		}
	}
	return len(cs) > 0
}

// split converts both words to runes and checks their lengths match.
func split(guess, answer string) ([]rune, []rune, error) {
	g, a := []rune(guess), []rune(answer)
	if len(g) != len(a) {
		return nil, nil, fmt.Errorf("guess %q (%d) and answer %q (%d) have different lengths: %w",
			guess, len(g), answer, len(a), ErrInvalidArgument)
	}
	return g, a, nil
}

func greens(g, a []rune) []bool {
	out := make([]bool, len(g))
	for i := range g {
		out[i] = g[i] == a[i]
	}
	return out
}

// yellows runs the consume-by-overwrite pass on a working copy of the
// answer; the caller's answer is never touched.
func yellows(g, a []rune, green []bool) ([]bool, error) {
	work := string(a)
	var err error
	for i, hit := range green {
		if !hit {
			continue
		}
		if work, err = Replace(work, i, consumed); err != nil {
			return nil, err
		}
	}

	out := make([]bool, len(g))
	for i, r := range g {
		if green[i] {
			continue
		}
		at := indexRune([]rune(work), r)
		if at < 0 {
			continue
		}
		out[i] = true
		if work, err = Replace(work, at, consumed); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// colors computes greens once and shares them with the yellow pass.
func colors(g, a []rune) ([]Color, error) {
	green := greens(g, a)
	yellow, err := yellows(g, a, green)
	if err != nil {
		return nil, err
	}
	out := make([]Color, len(g))
	for i := range g {
		switch {
		case green[i]:
			out[i] = ColorGreen
		case yellow[i]:
			out[i] = ColorYellow
		default:
			out[i] = ColorGray
		}
	}
	return out, nil
}

// indexRune returns the rune position of the first r in rs, or -1.
func indexRune(rs []rune, r rune) int {
	for i, x := range rs {
		if x == r {
			return i
		}
	}
	return -1
}
