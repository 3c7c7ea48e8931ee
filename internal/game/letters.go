// apps/wordle-utils/internal/game/letters.go
//
// LetterSet is the set type behind the included/excluded/possible letter
// partition of a game. Iteration is always in ascending letter order.

package game

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// LetterSet is a set of letters. The zero value is an empty, ready to use set.
// It is not safe for concurrent use.
type LetterSet struct {
	m map[rune]struct{}
}

// NewLetterSet returns a set holding the given letters.
func NewLetterSet(letters ...rune) *LetterSet {
	s := &LetterSet{m: make(map[rune]struct{}, len(letters))}
	for _, r := range letters {
		s.Add(r)
	}
	return s
}

// Alphabet returns a set holding 'A' through 'Z', the starting value of
// possible for a new game.
func Alphabet() *LetterSet {
	s := &LetterSet{m: make(map[rune]struct{}, 26)}
	for r := 'A'; r <= 'Z'; r++ {
		s.m[r] = struct{}{}
	}
	return s
}

func (s *LetterSet) Add(r rune) {
	if s.m == nil {
		s.m = make(map[rune]struct{})
	}
	s.m[r] = struct{}{}
}

func (s *LetterSet) Remove(r rune) { delete(s.m, r) }

func (s *LetterSet) Contains(r rune) bool {
	_, ok := s.m[r]
	return ok
}

func (s *LetterSet) Len() int { return len(s.m) }

// Letters returns the members in ascending order.
func (s *LetterSet) Letters() []rune {
	out := make([]rune, 0, len(s.m))
	for r := range s.m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the set as "[A, B, C]".
func (s *LetterSet) String() string {
	letters := s.Letters()
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalJSON encodes the set as a sorted array of one-letter strings.
func (s *LetterSet) MarshalJSON() ([]byte, error) {
	letters := s.Letters()
	out := make([]string, len(letters))
	for i, r := range letters {
		out[i] = string(r)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts an array of one-letter strings.
func (s *LetterSet) UnmarshalJSON(b []byte) error {
	var in []string
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	s.m = make(map[rune]struct{}, len(in))
	for _, v := range in {
		if utf8.RuneCountInString(v) != 1 {
			return fmt.Errorf("letter set: %q is not a single letter", v)
		}
		r, _ := utf8.DecodeRuneInString(v)
		s.m[r] = struct{}{}
	}
	return nil
}
