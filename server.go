// server.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements a compact HTTP server that receives
// JSON encoded requests and returns JSON encoded responses.

package engine

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// ValidationError marks a request that was rejected because it did not
// describe a legal board or rack, as opposed to an internal failure; the
// HTTP handler maps it to 400 Bad Request.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Engine bundles the dictionary and cross-check cache a running server
// needs to answer best-move requests, plus an optional bearer token
// required of every caller.
type Engine struct {
	Dictionary *Dictionary
	cache      *crossSetCache
	AccessKey  string
}

// NewEngine returns an Engine ready to serve requests against dict. An
// empty accessKey disables bearer-token authorization.
func NewEngine(dict *Dictionary, accessKey string) *Engine {
	return &Engine{
		Dictionary: dict,
		cache:      newCrossSetCache(dict),
		AccessKey:  accessKey,
	}
}

// bestMoveRequest is the JSON body of a POST /bestGameMove request: a
// 15x15 grid of single-character cells (an empty string or " " for an
// empty square) and the player's rack, as individual letter strings
// ("?" for a blank tile).
type bestMoveRequest struct {
	Board [][]string `json:"board"`
	Rack  []string   `json:"rack"`
}

// bestMoveResponse is the JSON body returned for a POST /bestGameMove
// request.
type bestMoveResponse struct {
	Word        string   `json:"word"`
	Start       [2]int   `json:"start"`
	End         [2]int   `json:"end"`
	Orientation string   `json:"orientation"`
	Placed      [][2]int `json:"placed"`
	Score       int      `json:"score"`
}

// parseBoard converts the request's row-major grid of single-character
// cells into a Board, rejecting anything that doesn't describe a legal
// standard board.
func parseBoard(rows [][]string) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, validationErrorf("board must have %d rows, got %d", BoardSize, len(rows))
	}
	board := NewBoard()
	for r, row := range rows {
		if len(row) != BoardSize {
			return nil, validationErrorf("board row %d must have %d cells, got %d", r, BoardSize, len(row))
		}
		for c, cell := range row {
			if cell == "" || cell == " " {
				continue
			}
			if len(cell) != 1 {
				return nil, validationErrorf("cell (%d,%d) must be a single character, got %q", r, c, cell)
			}
			letter := strings.ToUpper(cell)[0]
			if letter < 'A' || letter > 'Z' {
				return nil, validationErrorf("cell (%d,%d) has invalid letter %q", r, c, cell)
			}
			if !board.PlaceLetter(r, c, letter) {
				return nil, validationErrorf("cell (%d,%d) could not be placed", r, c)
			}
		}
	}
	return board, nil
}

// parseRack converts the request's list of single-letter strings into a
// Rack.
func parseRack(letters []string) (Rack, error) {
	if len(letters) > RackSize {
		return Rack{}, validationErrorf("rack has %d tiles, maximum is %d", len(letters), RackSize)
	}
	var sb strings.Builder
	for _, l := range letters {
		if l == "" || len(l) != 1 {
			return Rack{}, validationErrorf("rack tile %q is not a single letter", l)
		}
		sb.WriteString(strings.ToUpper(l))
	}
	rack, err := NewRack(sb.String())
	if err != nil {
		return Rack{}, &ValidationError{msg: err.Error()}
	}
	return rack, nil
}

// HandleBestGameMove answers a POST /bestGameMove request by finding the
// single highest-scoring legal placement for the given board and rack.
func (e *Engine) HandleBestGameMove(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if e.AccessKey != "" {
		authHeader := r.Header.Get("Authorization")
		if authHeader != "Bearer "+e.AccessKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}
	if r.Method != http.MethodPost {
		http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
		return
	}

	var req bestMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	board, err := parseBoard(req.Board)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rack, err := parseRack(req.Rack)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	move, candidateCount := BestMoveWithStats(board, rack, e.Dictionary, e.cache)
	log.Printf(
		"[%s] best move: word=%q score=%d candidates=%s",
		requestID, move.Word, move.Score, humanize.Comma(int64(candidateCount)),
	)

	resp := bestMoveResponse{
		Word:        move.Word,
		Start:       [2]int{move.Start.Row, move.Start.Col},
		End:         [2]int{move.End.Row, move.End.Col},
		Orientation: string(move.Orientation),
		Placed:      make([][2]int, len(move.Placed)),
		Score:       move.Score,
	}
	for i, p := range move.Placed {
		resp.Placed[i] = [2]int{p.Row, p.Col}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleIndex serves the static demo page at GET /.
func (e *Engine) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/index.html")
}
