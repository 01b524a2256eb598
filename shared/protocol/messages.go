package protocol

import (
	"encoding/json"
	"fmt"
)

// Wire records are flat JSON objects discriminated by an "action" field.

// ================= C -> S =================

const (
	ActionJoinGame = "join_game"
	ActionMove     = "move"
	ActionStop     = "stop"
)

type JoinGame struct {
	Action   string `json:"action"`
	Username string `json:"username"`
}

func NewJoinGame(username string) JoinGame {
	return JoinGame{Action: ActionJoinGame, Username: username}
}

type Move struct {
	Action    string    `json:"action"`
	Direction Direction `json:"direction"`
}

func NewMove(d Direction) Move {
	return Move{Action: ActionMove, Direction: d}
}

type Stop struct {
	Action string `json:"action"`
}

func NewStop() Stop {
	return Stop{Action: ActionStop}
}

// ================= S -> C =================

const (
	ActionPlayerJoined = "player_joined"
	ActionPlayersMoved = "players_moved"
	ActionPlayerLeft   = "player_left"
)

type JoinGameResult struct {
	Success  bool              `json:"success"`
	PlayerID string            `json:"playerId"`
	Players  map[string]Player `json:"players"`
	Avatars  map[string]Avatar `json:"avatars"`
}

type PlayerJoined struct {
	Player Player `json:"player"`
	Avatar Avatar `json:"avatar"`
}

type PlayersMoved struct {
	Players map[string]Player `json:"players"`
}

type PlayerLeft struct {
	PlayerID string `json:"playerId"`
}

// DecodeAction extracts the discriminator from a raw frame. The caller
// unmarshals the same bytes into the typed record for that action.
func DecodeAction(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("decode: empty frame")
	}
	var head struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return head.Action, nil
}
