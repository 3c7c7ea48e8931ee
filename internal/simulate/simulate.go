// apps/wordle-utils/internal/simulate/simulate.go
//
// Console driver that plays one scripted game and prints, after every guess,
// the green/yellow marks, the colors and the three letter sets.
// Output is illustrative; nothing parses it.

package simulate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-utils/internal/game"
)

// Run plays guesses against answer and writes one report block per guess.
// Words are upper-cased first so they line up with the A-Z alphabet.
// The first scoring error stops the run.
func Run(w io.Writer, answer string, guesses []string) error {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	tr := game.NewTracker()

	for n, g := range guesses {
		g = strings.ToUpper(strings.TrimSpace(g))
		greens, err := game.Greens(g, answer)
		if err != nil {
			return fmt.Errorf("guess %d: %w", n+1, err)
		}
		yellows, err := game.Yellows(g, answer)
		if err != nil {
			return fmt.Errorf("guess %d: %w", n+1, err)
		}
		colors, err := game.Colors(g, answer)
		if err != nil {
			return fmt.Errorf("guess %d: %w", n+1, err)
		}
		if err := tr.Apply(g, answer); err != nil {
			return fmt.Errorf("guess %d: %w", n+1, err)
		}
		log.Debug().Int("n", n+1).Str("guess", g).Bool("solved", game.Solved(colors)).Msg("simulated guess")

		fmt.Fprintf(w, "answer  : %s\n", answer)
		fmt.Fprintf(w, "guess %d : %s\n", n+1, g)
		fmt.Fprintf(w, "isGreen : %s\n", bools(greens))
		fmt.Fprintf(w, "isYellow: %s\n", bools(yellows))
		fmt.Fprintf(w, "colors  : %s\n", colorList(colors))
		fmt.Fprintf(w, "in      : %s\n", tr.Included)
		fmt.Fprintf(w, "not in  : %s\n", tr.Excluded)
		fmt.Fprintf(w, "maybe?  : %s\n", tr.Possible)
		fmt.Fprintln(w)
	}
	return nil
}

func bools(bs []bool) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = strconv.FormatBool(b)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func colorList(cs []game.Color) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
