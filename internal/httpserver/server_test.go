package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-utils/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-utils/internal/game"
)

func newTestServer() *Server {
	return New(config.Config{ClientOrigin: "http://localhost:5173", RequestTimeout: time.Second})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflight(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodOptions, "/score", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNotFound(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)
}

func TestScore(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/score", `{"guess":" kayak ","answer":"WHACK"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res scoreRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []bool{false, false, false, false, true}, res.Greens)
	assert.Equal(t, []bool{false, true, false, false, false}, res.Yellows)
	assert.Equal(t, []game.Color{game.ColorGray, game.ColorYellow, game.ColorGray, game.ColorGray, game.ColorGreen}, res.Colors)
	assert.False(t, res.Solved)
}

func TestScore_Solved(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/score", `{"guess":"sizes","answer":"sizes"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"solved":true`)
}

func TestScore_Errors(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/score", `{"guess":"COLOR","answer":"LIKE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"invalid_argument"`)

	rec = do(t, s, http.MethodPost, "/score", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bad_json"`)
}

func TestLetters_FirstGuessSeedsAlphabet(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/letters", `{"guess":"THOSE","answer":"GRASS"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res lettersRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []rune{'S'}, res.Included.Letters())
	assert.Equal(t, []rune{'E', 'H', 'O', 'T'}, res.Excluded.Letters())
	assert.Equal(t, 21, res.Possible.Len())
	assert.Len(t, res.Colors, 5)
}

func TestLetters_CarriesState(t *testing.T) {
	body := `{"guess":"HULAS","answer":"GRASS",
		"included":["S"],"excluded":["E","H","O","T"],
		"possible":["A","B","C","D","F","G","I","J","K","L","M","N","P","Q","R","U","V","W","X","Y","Z"]}`
	rec := do(t, newTestServer(), http.MethodPost, "/letters", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res lettersRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []rune{'A', 'S'}, res.Included.Letters())
	assert.Equal(t, []rune{'E', 'H', 'L', 'O', 'T', 'U'}, res.Excluded.Letters())
	assert.Equal(t, 18, res.Possible.Len())
}

func TestLetters_Rejects(t *testing.T) {
	s := newTestServer()
	tests := []struct {
		name string
		body string
	}{
		{"length mismatch", `{"guess":"COLOR","answer":"LIKE"}`},
		{"missing possible", `{"guess":"THOSE","answer":"GRASS","included":["S"]}`},
		{"overlap", `{"guess":"THOSE","answer":"GRASS","included":["S"],"possible":["S","A"]}`},
		{"included and excluded", `{"guess":"THOSE","answer":"GRASS","included":["S"],"excluded":["S"],"possible":["A"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/letters", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"invalid_argument"`)
		})
	}
}
