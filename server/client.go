package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"othello/agent"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// Client is an agent whose moves come from a move service.
type Client struct {
	serverURL string
	config    agent.Config
	client    *http.Client
}

func NewClient(serverURL string, config agent.Config) *Client {
	return &Client{
		serverURL: serverURL,
		config:    config,
		client:    &http.Client{Timeout: time.Minute},
	}
}

func (c *Client) Face() string {
	return "📡"
}

// Place asks the service for a move. Any failure answers NoMove, which the
// engine treats like any other agent giving up while it still has a move.
func (c *Client) Place(b game.Board, stone game.Stone) game.Move {
	resp, err := c.Suggest(b, stone)
	if err != nil {
		log.Error().Err(err).Str("server", c.serverURL).Msg("remote agent failed")
		return game.NoMove
	}
	return resp.Move
}

// Suggest posts the position to /place and returns the full response.
func (c *Client) Suggest(b game.Board, stone game.Stone) (PlaceResponse, error) {
	data, err := json.Marshal(PlaceRequest{Board: b.Rows(), Stone: stone.String(), Agent: c.config})
	if err != nil {
		return PlaceResponse{}, err
	}
	resp, err := c.client.Post(c.serverURL+"/place", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return PlaceResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body map[string]string
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return PlaceResponse{}, fmt.Errorf("move service answered %s: %w", resp.Status, err)
		}
		return PlaceResponse{}, fmt.Errorf("move service answered %s: %s", resp.Status, body["error"])
	}
	var place PlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return PlaceResponse{}, fmt.Errorf("failed to decode move: %w", err)
	}
	return place, nil
}
