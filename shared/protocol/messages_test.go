package protocol

import (
	"encoding/json"
	"testing"
)

func TestDecodeAction(t *testing.T) {
	a, err := DecodeAction([]byte(`{"action":"players_moved","players":{}}`))
	if err != nil || a != ActionPlayersMoved {
		t.Fatalf("want players_moved, got %q err=%v", a, err)
	}
	if _, err := DecodeAction(nil); err == nil {
		t.Fatalf("empty frame must error")
	}
	if _, err := DecodeAction([]byte(`{`)); err == nil {
		t.Fatalf("malformed frame must error")
	}
}

func TestJoinGameResultDecode(t *testing.T) {
	raw := []byte(`{
		"action":"join_game","success":true,"playerId":"p1",
		"players":{"p1":{"id":"p1","x":100,"y":200,"facing":"down","animationFrame":1,"avatar":"fox","username":"Tim"}},
		"avatars":{"fox":{"name":"fox","frames":{"down":["d0.png","d1.png"],"up":["u0.png"]}}}
	}`)
	var res JoinGameResult
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !res.Success || res.PlayerID != "p1" {
		t.Fatalf("bad header: %+v", res)
	}
	p := res.Players["p1"]
	if p.X != 100 || p.Y != 200 || p.Facing != DirDown || p.Frame != 1 {
		t.Fatalf("bad player: %+v", p)
	}
	if got := res.Avatars["fox"].FrameRef(DirDown, 3); got != "d1.png" {
		t.Fatalf("FrameRef should wrap, got %q", got)
	}
	if got := res.Avatars["fox"].FrameRef(DirLeft, 0); got != "" {
		t.Fatalf("missing facing should resolve empty, got %q", got)
	}
}

func TestOutboundShapes(t *testing.T) {
	cases := []struct {
		v    interface{}
		want string
	}{
		{NewJoinGame("Tim"), `{"action":"join_game","username":"Tim"}`},
		{NewMove(DirLeft), `{"action":"move","direction":"left"}`},
		{NewStop(), `{"action":"stop"}`},
	}
	for _, c := range cases {
		b, err := json.Marshal(c.v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != c.want {
			t.Fatalf("want %s, got %s", c.want, b)
		}
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range Directions {
		if !d.Valid() {
			t.Fatalf("%q should be valid", d)
		}
	}
	if Direction("north").Valid() {
		t.Fatalf("north is not a wire direction")
	}
}
