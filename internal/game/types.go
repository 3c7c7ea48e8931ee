// apps/wordle-utils/internal/game/types.go
//
// Core type definitions for Wordle scoring.
// Defines:
//   - Color: per-letter classification of a guess (green/yellow/gray).
//   - Tracker: the three running letter sets of a single game.

package game

import "strings"

// Color represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "green":  letter is correct and in the correct position.
//   - "yellow": letter exists in the answer but in a different position,
//     limited by the occurrences left after greens are credited.
//   - "gray":   letter cannot be credited as green or yellow.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorGray   Color = "gray"
)

// String renders the color in upper case (GREEN, YELLOW, GRAY).
func (c Color) String() string { return strings.ToUpper(string(c)) }

// Tracker holds the letter sets for one game.
// Included and Excluded start empty; Possible starts as the full alphabet.
type Tracker struct {
	Included *LetterSet // letters proven to be in the answer
	Excluded *LetterSet // letters proven absent
	Possible *LetterSet // letters not classified yet
}

// NewTracker returns a tracker seeded for the first guess of a game.
func NewTracker() *Tracker {
	return &Tracker{
		Included: NewLetterSet(),
		Excluded: NewLetterSet(),
		Possible: Alphabet(),
	}
}

// Apply folds one guess into the tracker's sets.
func (t *Tracker) Apply(guess, answer string) error {
	return UpdateLetters(guess, answer, t.Included, t.Excluded, t.Possible)
}
