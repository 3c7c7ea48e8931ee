// apps/wordle-utils/assets/embed.go
//
// Embedded demo games for the simulate command.
// games.txt holds one game per line in the form
//
//	ANSWER: GUESS GUESS GUESS
//
// Blank lines and lines starting with '#' are ignored. Words are
// upper-cased on load.

package assets

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed games.txt
var FS embed.FS

// Game is one scripted game: a hidden answer and the guesses played against it.
type Game struct {
	Answer  string
	Guesses []string
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// Games returns every embedded game in file order.
func Games() ([]Game, error) {
	lines, err := readLines("games.txt")
	if err != nil {
		return nil, err
	}
	out := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("games.txt entry %d: %w", i+1, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func parseGame(line string) (Game, error) {
	answer, rest, ok := strings.Cut(line, ":")
	answer = strings.TrimSpace(answer)
	if !ok || answer == "" {
		return Game{}, fmt.Errorf("missing answer in %q", line)
	}
	guesses := strings.Fields(rest)
	if len(guesses) == 0 {
		return Game{}, fmt.Errorf("no guesses for %s", answer)
	}
	return Game{Answer: answer, Guesses: guesses}, nil
}
