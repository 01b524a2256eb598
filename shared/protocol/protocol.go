package protocol

// Direction is a player facing / movement heading.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Directions in wire order, used anywhere a stable iteration is needed.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// Player is the server-authoritative record for one connected player.
// Records are replaced wholesale on every update; the client never
// interpolates between them.
type Player struct {
	ID       string    `json:"id"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Facing   Direction `json:"facing"`
	Frame    int       `json:"animationFrame"`
	Avatar   string    `json:"avatar"`
	Username string    `json:"username"`
}

// Avatar names an ordered set of animation frames per facing. Frame
// entries are image resource references served by the asset host.
type Avatar struct {
	Name   string                 `json:"name"`
	Frames map[Direction][]string `json:"frames"`
}

// FrameRef resolves the image reference for a facing and frame index.
// The index wraps; an avatar with no frames for the facing yields "".
func (a Avatar) FrameRef(d Direction, frame int) string {
	seq := a.Frames[d]
	if len(seq) == 0 {
		return ""
	}
	if frame < 0 {
		frame = 0
	}
	return seq[frame%len(seq)]
}
