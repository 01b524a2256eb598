package game

import (
	"testing"

	"go.uber.org/zap"

	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

func testClient() *Client {
	return &Client{
		log:   zap.NewNop().Sugar(),
		world: NewWorld(protocol.ScreenW, protocol.ScreenH),
	}
}

func TestHandleJoinGame(t *testing.T) {
	c := testClient()
	c.handle([]byte(`{
		"action":"join_game","success":true,"playerId":"p1",
		"players":{
			"p1":{"id":"p1","x":1900,"y":50,"facing":"right","animationFrame":0,"avatar":"fox","username":"Tim"},
			"p2":{"id":"p2","x":10,"y":10,"facing":"down","animationFrame":2,"avatar":"cat","username":"Ana"}
		},
		"avatars":{"fox":{"name":"fox","frames":{"right":["r0.png"]}},"cat":{"name":"cat","frames":{"down":["d0.png"]}}}
	}`))

	if len(c.world.Players) != 2 || c.world.MyID != "p1" {
		t.Fatalf("join not applied: %d players, me=%q", len(c.world.Players), c.world.MyID)
	}
	if c.world.View.X != 1248 || c.world.View.Y != 0 {
		t.Fatalf("viewport not recomputed on join: (%v,%v)", c.world.View.X, c.world.View.Y)
	}
}

func TestHandleJoinGameRejected(t *testing.T) {
	c := testClient()
	c.handle([]byte(`{"action":"join_game","success":false}`))
	if len(c.world.Players) != 0 || c.world.MyID != "" {
		t.Fatalf("rejected join mutated state")
	}
}

func TestHandlePlayerJoinedAndLeft(t *testing.T) {
	c := testClient()
	c.handle([]byte(`{"action":"player_joined",
		"player":{"id":"p9","x":5,"y":6,"facing":"up","avatar":"owl","username":"Kim"},
		"avatar":{"name":"owl","frames":{"up":["u0.png","u1.png"]}}}`))

	if p, ok := c.world.Players["p9"]; !ok || p.Username != "Kim" {
		t.Fatalf("player_joined not applied")
	}
	if _, ok := c.world.Avatars["owl"]; !ok {
		t.Fatalf("avatar descriptor not stored")
	}

	c.handle([]byte(`{"action":"player_left","playerId":"p9"}`))
	if _, ok := c.world.Players["p9"]; ok {
		t.Fatalf("player_left not applied")
	}
}

func TestHandlePlayersMovedMergesSubset(t *testing.T) {
	c := testClient()
	c.world.AddPlayer(protocol.Player{ID: "a", X: 1, Y: 1}, protocol.Avatar{Name: "cat"})
	c.world.AddPlayer(protocol.Player{ID: "b", X: 2, Y: 2}, protocol.Avatar{Name: "owl"})

	c.handle([]byte(`{"action":"players_moved","players":{"a":{"id":"a","x":99,"y":98}}}`))

	if a := c.world.Players["a"]; a.X != 99 || a.Y != 98 {
		t.Fatalf("merge missed a: %+v", a)
	}
	if b := c.world.Players["b"]; b.X != 2 || b.Y != 2 {
		t.Fatalf("merge touched b: %+v", b)
	}
}

func TestHandleIgnoresUnknownAndMalformed(t *testing.T) {
	c := testClient()
	c.handle([]byte(`{"action":"chat","text":"hi"}`))
	c.handle([]byte(`{"action":`))
	c.handle(nil)
	if len(c.world.Players) != 0 {
		t.Fatalf("garbage frames mutated state")
	}
}
