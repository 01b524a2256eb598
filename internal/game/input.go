package game

import (
	"math"
	"time"

	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

// Controls turns key edges and time into outbound commands. It holds no
// platform state, so the update loop feeds it edges from ebiten and the
// tests feed it edges directly.
type Controls struct {
	held       []protocol.Direction // press order; the oldest held key wins ties
	moveActive bool
	lastMove   time.Time

	jumping   bool
	jumpStart time.Time
}

func (c *Controls) heldIndex(d protocol.Direction) int {
	for i, h := range c.held {
		if h == d {
			return i
		}
	}
	return -1
}

// KeyDown records a directional press. Repeats of an already-held key
// are ignored so OS key repeat cannot start a second move cadence.
func (c *Controls) KeyDown(d protocol.Direction, now time.Time) {
	if !d.Valid() || c.heldIndex(d) >= 0 {
		return
	}
	c.held = append(c.held, d)
	if !c.moveActive {
		c.moveActive = true
		c.lastMove = now // first move fires one interval from now
	}
}

// KeyUp releases a directional key. It reports true exactly when the
// held set became empty, which is the one moment a stop is sent.
func (c *Controls) KeyUp(d protocol.Direction) (stop bool) {
	i := c.heldIndex(d)
	if i < 0 {
		return false
	}
	c.held = append(c.held[:i], c.held[i+1:]...)
	if len(c.held) == 0 && c.moveActive {
		c.moveActive = false
		return true
	}
	return false
}

// Tick emits at most one move per MoveInterval while any key is held.
func (c *Controls) Tick(now time.Time) (protocol.Direction, bool) {
	if !c.moveActive || len(c.held) == 0 {
		return "", false
	}
	if now.Sub(c.lastMove) < protocol.MoveInterval {
		return "", false
	}
	c.lastMove = now
	return c.held[0], true
}

// Moving reports whether a move cadence is currently active.
func (c *Controls) Moving() bool {
	return c.moveActive
}

// StartJump begins the jump gesture; a jump already in flight wins.
func (c *Controls) StartJump(now time.Time) {
	if c.jumping {
		return
	}
	c.jumping = true
	c.jumpStart = now
}

func (c *Controls) Jumping() bool {
	return c.jumping
}

// JumpOffset is the vertical displacement of the local sprite at time
// now: sin(progress*pi) scaled by the amplitude, zero at both ends.
// Reaching full progress clears the jumping flag.
func (c *Controls) JumpOffset(now time.Time) float64 {
	if !c.jumping {
		return 0
	}
	progress := float64(now.Sub(c.jumpStart)) / float64(protocol.JumpDuration)
	if progress >= 1 {
		c.jumping = false
		return 0
	}
	if progress < 0 {
		progress = 0
	}
	return math.Sin(progress*math.Pi) * protocol.JumpAmplitude
}

// Reset tears down any active cadence without emitting commands.
func (c *Controls) Reset() {
	c.held = nil
	c.moveActive = false
	c.jumping = false
}
