package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"othello/agent"
	"othello/engine"
	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	srv := httptest.NewServer(NewRouter())
	defer srv.Close()

	t.Run("remote heuristic plays like a local one", func(t *testing.T) {
		remote := NewClient(srv.URL, agent.Config{Kind: agent.KindHeuristic})
		local := agent.NewHeuristic()
		b := game.NewBoard()

		require.Equal(t, local.Place(b, game.Black), remote.Place(b, game.Black))
		require.Equal(t, local.Place(b, game.White), remote.Place(b, game.White))
	})

	t.Run("plays a full game against a local agent", func(t *testing.T) {
		remote := NewClient(srv.URL, agent.Config{Kind: agent.KindSearch, Depth: 1})
		result, err := engine.LocalEngine(remote, agent.NewHeuristic()).Run()
		require.NoError(t, err)
		require.False(t, result.Forfeit)
		require.Equal(t, 4+result.Turns, result.Black+result.White)
	})

	t.Run("rejected request surfaces as an error", func(t *testing.T) {
		remote := NewClient(srv.URL, agent.Config{Kind: "oracle"})
		_, err := remote.Suggest(game.NewBoard(), game.Black)
		require.ErrorContains(t, err, "400")
		require.Equal(t, game.NoMove, remote.Place(game.NewBoard(), game.Black))
	})

	t.Run("unreadable error body is reported", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream gone", http.StatusBadGateway)
		}))
		defer broken.Close()

		_, err := NewClient(broken.URL, agent.Config{}).Suggest(game.NewBoard(), game.Black)
		require.ErrorContains(t, err, "502")
		require.ErrorContains(t, err, "invalid character")
	})

	t.Run("unreachable service answers no move", func(t *testing.T) {
		remote := NewClient("http://127.0.0.1:1", agent.Config{})
		require.Equal(t, game.NoMove, remote.Place(game.NewBoard(), game.Black))
	})
}
