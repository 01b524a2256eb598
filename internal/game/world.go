package game

import (
	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

// Viewport is the visible sub-rectangle of the world. Its size tracks
// the drawing surface; its origin is clamped inside the world whenever
// a local player exists.
type Viewport struct {
	X, Y float64
	W, H int
}

// World is the local mirror of the server's entity set. It is owned by
// the session and touched only from the ebiten update loop.
type World struct {
	Players map[string]*protocol.Player
	Avatars map[string]protocol.Avatar

	MyID string
	Me   *protocol.Player

	View Viewport
}

func NewWorld(viewW, viewH int) *World {
	return &World{
		Players: make(map[string]*protocol.Player),
		Avatars: make(map[string]protocol.Avatar),
		View:    Viewport{W: viewW, H: viewH},
	}
}

// ApplyJoin replaces the player and avatar sets wholesale and records
// which player is ours.
func (w *World) ApplyJoin(res protocol.JoinGameResult) {
	w.Players = make(map[string]*protocol.Player, len(res.Players))
	for id := range res.Players {
		p := res.Players[id]
		w.Players[id] = &p
	}
	w.Avatars = make(map[string]protocol.Avatar, len(res.Avatars))
	for name, a := range res.Avatars {
		w.Avatars[name] = a
	}
	w.MyID = res.PlayerID
	w.Me = w.Players[w.MyID]
	w.RecomputeViewport()
}

func (w *World) AddPlayer(p protocol.Player, a protocol.Avatar) {
	cp := p
	w.Players[p.ID] = &cp
	w.Avatars[a.Name] = a
}

// MergeMoved overwrites the records named in the batch and leaves every
// other player untouched. The cached local pointer is refreshed when we
// are part of the batch.
func (w *World) MergeMoved(batch map[string]protocol.Player) {
	for id := range batch {
		p := batch[id]
		w.Players[id] = &p
		if id == w.MyID {
			w.Me = w.Players[id]
		}
	}
	w.RecomputeViewport()
}

func (w *World) RemovePlayer(id string) {
	delete(w.Players, id)
	if id == w.MyID {
		w.Me = nil
		w.MyID = ""
	}
}

// Resize tracks the drawing surface and re-clamps the camera.
func (w *World) Resize(viewW, viewH int) {
	if viewW == w.View.W && viewH == w.View.H {
		return
	}
	w.View.W, w.View.H = viewW, viewH
	w.RecomputeViewport()
}

// RecomputeViewport centers the camera on the local player and clamps
// each axis independently to [0, world-view]. Without a local player
// the viewport is left where it was.
func (w *World) RecomputeViewport() {
	if w.Me == nil {
		return
	}
	w.View.X = clamp(w.Me.X-float64(w.View.W)/2, 0, float64(protocol.WorldW-w.View.W))
	w.View.Y = clamp(w.Me.Y-float64(w.View.H)/2, 0, float64(protocol.WorldH-w.View.H))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
