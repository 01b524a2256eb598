package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

func (c *Client) Draw(screen *ebiten.Image) {
	c.drawBackground(screen)
	c.drawPlayers(screen)
}

// drawBackground blits the viewport rectangle of the world image onto
// the whole surface.
func (c *Client) drawBackground(screen *ebiten.Image) {
	if c.worldImg == nil {
		return
	}
	v := c.world.View
	r := image.Rect(int(v.X), int(v.Y), int(v.X)+v.W, int(v.Y)+v.H)
	r = r.Intersect(c.worldImg.Bounds())
	if r.Empty() {
		return
	}
	screen.DrawImage(c.worldImg.SubImage(r).(*ebiten.Image), nil)
}

func (c *Client) drawPlayers(screen *ebiten.Image) {
	v := c.world.View
	half := float64(protocol.SpriteSize) / 2

	for id, p := range c.world.Players {
		sx := p.X - v.X
		sy := p.Y - v.Y

		// Cull sprites whose bounding box is entirely off-surface.
		if sx+half < 0 || sy+half < 0 || sx-half > float64(v.W) || sy-half > float64(v.H) {
			continue
		}

		av, ok := c.world.Avatars[p.Avatar]
		if !ok {
			continue
		}
		seq := av.Frames[p.Facing]
		if len(seq) == 0 {
			continue
		}
		idx := p.Frame % len(seq)
		if idx < 0 {
			idx = 0
		}
		img := c.sprites.Get(frameKey{Avatar: p.Avatar, Facing: p.Facing, Frame: idx}, seq[idx])
		if img == nil {
			continue // still loading; the frame catches up on arrival
		}

		oy := 0.0
		if id == c.world.MyID {
			oy = c.jumpOffset
		}

		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		if iw == 0 || ih == 0 {
			continue
		}
		s := float64(protocol.SpriteSize) / float64(iw)
		if sh := float64(protocol.SpriteSize) / float64(ih); sh < s {
			s = sh
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(sx-float64(iw)*s/2, sy-float64(ih)*s/2-oy)
		screen.DrawImage(img, op)

		drawNameLabel(screen, p.Username, int(sx), int(sy-half-6-oy))
	}
}

// drawNameLabel centers a username above a sprite, outlined dark then
// filled light so it reads against any background.
func drawNameLabel(screen *ebiten.Image, name string, cx, y int) {
	if name == "" {
		return
	}
	b := text.BoundString(basicfont.Face7x13, name)
	x := cx - b.Dx()/2

	outline := color.NRGBA{0, 0, 0, 200}
	text.Draw(screen, name, basicfont.Face7x13, x+1, y, outline)
	text.Draw(screen, name, basicfont.Face7x13, x-1, y, outline)
	text.Draw(screen, name, basicfont.Face7x13, x, y+1, outline)
	text.Draw(screen, name, basicfont.Face7x13, x, y-1, outline)
	text.Draw(screen, name, basicfont.Face7x13, x, y, color.NRGBA{240, 240, 240, 255})
}
