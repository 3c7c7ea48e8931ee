// apps/wordle-utils/internal/httpserver/routes_score.go
//
// Scoring routes.
//   - POST /score   → greens, yellows and colors for one guess
//   - POST /letters → fold one guess into caller-supplied letter sets
//
// Both are pure functions of the request body.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-utils/internal/game"
)

// scoreReq/Res payloads for POST /score.
type scoreReq struct {
	Guess  string `json:"guess"`
	Answer string `json:"answer"`
}
type scoreRes struct {
	Greens  []bool       `json:"greens"`
	Yellows []bool       `json:"yellows"`
	Colors  []game.Color `json:"colors"`
	Solved  bool         `json:"solved"`
}

// handleScore classifies a single guess against an answer.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	guess, answer := normalize(req.Guess), normalize(req.Answer)

	greens, err := game.Greens(guess, answer)
	if err != nil {
		s.scoringError(w, r, err)
		return
	}
	yellows, err := game.Yellows(guess, answer)
	if err != nil {
		s.scoringError(w, r, err)
		return
	}
	colors, err := game.Colors(guess, answer)
	if err != nil {
		s.scoringError(w, r, err)
		return
	}

	_ = json.NewEncoder(w).Encode(scoreRes{
		Greens:  greens,
		Yellows: yellows,
		Colors:  colors,
		Solved:  game.Solved(colors),
	})
}

// lettersReq/Res payloads for POST /letters.
// A missing possible set on a request with empty included/excluded is
// treated as the first guess of a game and seeded with A-Z.
type lettersReq struct {
	Guess    string          `json:"guess"`
	Answer   string          `json:"answer"`
	Included *game.LetterSet `json:"included"`
	Excluded *game.LetterSet `json:"excluded"`
	Possible *game.LetterSet `json:"possible"`
}
type lettersRes struct {
	Colors   []game.Color    `json:"colors"`
	Included *game.LetterSet `json:"included"`
	Excluded *game.LetterSet `json:"excluded"`
	Possible *game.LetterSet `json:"possible"`
}

// handleLetters applies one guess to the letter sets carried in the request.
func (s *Server) handleLetters(w http.ResponseWriter, r *http.Request) {
	var req lettersReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	guess, answer := normalize(req.Guess), normalize(req.Answer)

	tr := &game.Tracker{Included: req.Included, Excluded: req.Excluded, Possible: req.Possible}
	if tr.Included == nil {
		tr.Included = game.NewLetterSet()
	}
	if tr.Excluded == nil {
		tr.Excluded = game.NewLetterSet()
	}
	if tr.Possible == nil {
		if tr.Included.Len() > 0 || tr.Excluded.Len() > 0 {
			writeError(w, http.StatusBadRequest, "invalid_argument", "possible is required once letters are classified")
			return
		}
		tr.Possible = game.Alphabet()
	}
	if err := overlap(tr); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}

	colors, err := game.Colors(guess, answer)
	if err != nil {
		s.scoringError(w, r, err)
		return
	}
	if err := tr.Apply(guess, answer); err != nil {
		s.scoringError(w, r, err)
		return
	}

	_ = json.NewEncoder(w).Encode(lettersRes{
		Colors:   colors,
		Included: tr.Included,
		Excluded: tr.Excluded,
		Possible: tr.Possible,
	})
}

// overlap rejects letter sets that already break the partition.
func overlap(tr *game.Tracker) error {
	for _, r := range tr.Possible.Letters() {
		if tr.Included.Contains(r) || tr.Excluded.Contains(r) {
			return errors.New("letter " + string(r) + " is both possible and classified")
		}
	}
	for _, r := range tr.Included.Letters() {
		if tr.Excluded.Contains(r) {
			return errors.New("letter " + string(r) + " is both included and excluded")
		}
	}
	return nil
}

// scoringError maps core validation errors to 400 and anything else to 500.
func (s *Server) scoringError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, game.ErrInvalidArgument) {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("rejected guess")
		writeError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("scoring failed")
	writeError(w, http.StatusInternalServerError, "internal", "scoring failed")
}

// writeError writes {"error": code, "detail": detail} with the given status.
func writeError(w http.ResponseWriter, status int, code, detail string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "detail": detail})
}

func normalize(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
