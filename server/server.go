package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"othello/agent"
	"othello/engine"
	"othello/game"
	"othello/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// MaxDepth bounds the search depth a request may ask for.
const MaxDepth = 8

// MaxBoardSize bounds the side length of a requested board.
const MaxBoardSize = 16

// MaxBodyBytes bounds the size of a request body.
const MaxBodyBytes = 1 << 16

var errBadRequest = errors.New("bad request")

type PlaceRequest struct {
	Board []string     `json:"board,omitempty"` // standard opening when empty
	Stone string       `json:"stone"`
	Agent agent.Config `json:"agent"`
}

type PlaceResponse struct {
	Move   game.Move               `json:"move"`
	Pass   bool                    `json:"pass"`
	Flips  []game.Move             `json:"flips"`
	Board  []string                `json:"board"`
	Face   string                  `json:"face"`
	Think  time.Duration           `json:"think"`
	Search *searcher.SearchMetrics `json:"search,omitempty"`
}

type MatchRequest struct {
	Board []string     `json:"board,omitempty"`
	Black agent.Config `json:"black"`
	White agent.Config `json:"white"`
}

type MatchResponse struct {
	Winner  string      `json:"winner"`
	Black   int         `json:"black"`
	White   int         `json:"white"`
	Forfeit bool        `json:"forfeit"`
	Moves   []game.Move `json:"moves"`
	Board   []string    `json:"board"`
}

// NewRouter serves move suggestions and agent-vs-agent matches. Every
// request builds its own agents and board, nothing is shared between requests.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Post("/place", handlePlace)
	r.Post("/match", handleMatch)
	return r
}

// Start serves the router on addr until the listener fails.
func Start(addr string) error {
	log.Info().Msgf("starting move service on %s ...", addr)
	return http.ListenAndServe(addr, NewRouter())
}

func handlePlace(w http.ResponseWriter, r *http.Request) {
	var req PlaceRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	board, err := parseBoard(req.Board)
	if err != nil {
		writeError(w, err)
		return
	}
	stone, err := game.ParseStone(req.Stone)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	player, err := newAgent(req.Agent)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	move := player.Place(board.Copy(), stone)
	resp := PlaceResponse{Move: move, Face: player.Face(), Think: time.Since(start)}
	if measured, ok := player.(agent.Measured); ok {
		metrics := measured.LastMetrics()
		resp.Search = &metrics
	}

	if move.IsNone() {
		resp.Pass = true
	} else if !game.CanPlaceXY(board, stone, move.X, move.Y) {
		writeError(w, fmt.Errorf("%s: %w", player.Face(), engine.ErrIllegalMove))
		return
	} else {
		resp.Flips = game.Flips(board, stone, move.X, move.Y)
		game.MoveStone(board, stone, move.X, move.Y)
	}
	resp.Board = board.Rows()

	writeJSON(w, http.StatusOK, resp)
}

func handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	board, err := parseBoard(req.Board)
	if err != nil {
		writeError(w, err)
		return
	}
	black, err := newAgent(req.Black)
	if err != nil {
		writeError(w, err)
		return
	}
	white, err := newAgent(req.White)
	if err != nil {
		writeError(w, err)
		return
	}

	eng := engine.LocalEngine(black, white, engine.WithBoard(board))
	result, err := eng.Run()
	if err != nil && !errors.Is(err, engine.ErrIllegalMove) {
		writeError(w, err)
		return
	}

	resp := MatchResponse{
		Winner:  result.Winner.String(),
		Black:   result.Black,
		White:   result.White,
		Forfeit: result.Forfeit,
		Moves:   make([]game.Move, len(result.Steps)),
		Board:   eng.State.Board.Rows(),
	}
	if result.Winner == game.Empty {
		resp.Winner = "draw"
	}
	for i, step := range result.Steps {
		resp.Moves[i] = step.Move
	}
	writeJSON(w, http.StatusOK, resp)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return nil
}

func parseBoard(rows []string) (game.Board, error) {
	if len(rows) == 0 {
		return game.NewBoard(), nil
	}
	if len(rows) > MaxBoardSize {
		return nil, fmt.Errorf("%w: board has %d rows, at most %d allowed", errBadRequest, len(rows), MaxBoardSize)
	}
	board, err := game.ParseBoard(rows...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return board, nil
}

func newAgent(c agent.Config) (agent.Agent, error) {
	if c.Depth > MaxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", errBadRequest, c.Depth, MaxDepth)
	}
	a, err := agent.New(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return a, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrIllegalMove):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("request", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("handled request")
	})
}
