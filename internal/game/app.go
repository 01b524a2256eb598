package game

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/vinitaacharya/ai-open-source-prework/internal/netcfg"
	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

type connResult struct {
	n   *Net
	err error
}

// Client is the whole session: transport, world mirror, controls and
// renderer state. It implements ebiten.Game; everything it owns is
// touched only from Update/Draw/Layout.
type Client struct {
	log      *zap.SugaredLogger
	username string

	connCh chan connResult
	net    *Net

	world    *World
	controls Controls
	sprites  *SpriteCache

	worldImg   *ebiten.Image
	jumpOffset float64

	disposed bool
}

var dirKeys = map[ebiten.Key]protocol.Direction{
	ebiten.KeyArrowUp:    protocol.DirUp,
	ebiten.KeyArrowDown:  protocol.DirDown,
	ebiten.KeyArrowLeft:  protocol.DirLeft,
	ebiten.KeyArrowRight: protocol.DirRight,
}

func New(log *zap.SugaredLogger) *Client {
	c := &Client{
		log:      log,
		username: netcfg.Username,
		connCh:   make(chan connResult, 1),
		world:    NewWorld(protocol.ScreenW, protocol.ScreenH),
		sprites:  NewSpriteCache(netcfg.AssetBase, log),
		worldImg: loadWorldImage(netcfg.WorldImage, log),
	}
	go c.connectAsync()
	return c
}

// connectAsync dials once. There is no retry: a failed or dropped
// session stays offline and the client keeps rendering what it has.
func (c *Client) connectAsync() {
	n, err := NewNet(netcfg.ServerURL, c.log)
	c.connCh <- connResult{n: n, err: err}
}

func (c *Client) Update() error {
	now := time.Now()

	select {
	case res := <-c.connCh:
		if res.err != nil {
			c.log.Warnf("connect failed: %v", res.err)
			break
		}
		c.net = res.n
		c.send(protocol.NewJoinGame(c.username))
	default:
	}

	if c.net != nil && !c.net.IsClosed() {
	inbound:
		for {
			select {
			case raw, ok := <-c.net.inCh:
				if !ok {
					break inbound
				}
				c.handle(raw)
			default:
				break inbound
			}
		}
	}

	c.sprites.Drain()

	for k, d := range dirKeys {
		if inpututil.IsKeyJustPressed(k) {
			c.controls.KeyDown(d, now)
		}
		if inpututil.IsKeyJustReleased(k) {
			if c.controls.KeyUp(d) {
				c.send(protocol.NewStop())
			}
		}
	}
	if d, ok := c.controls.Tick(now); ok {
		c.send(protocol.NewMove(d))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		c.controls.StartJump(now)
	}
	c.jumpOffset = c.controls.JumpOffset(now)

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) && c.world.Me != nil {
		me := c.world.Me
		info := fmt.Sprintf("%s @ (%.0f, %.0f)", me.ID, me.X, me.Y)
		if err := clipboard.WriteAll(info); err != nil {
			c.log.Warnf("clipboard: %v", err)
		}
	}

	return nil
}

func (c *Client) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		c.world.Resize(outsideWidth, outsideHeight)
	}
	return c.world.View.W, c.world.View.H
}

// Dispose stops any active move cadence and closes the transport.
// In-flight sprite loads are left to finish on their own.
func (c *Client) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.controls.Reset()
	if c.net != nil {
		_ = c.net.Close()
	}
}

// send is best-effort: commands are dropped when the socket is not open.
func (c *Client) send(v interface{}) {
	if c.net == nil || c.net.IsClosed() {
		return
	}
	if err := c.net.Send(v); err != nil {
		c.log.Infof("send failed: %v", err)
	}
}

// loadWorldImage reads the fixed map image from disk, falling back to a
// flat-color canvas so the client still runs without assets on hand.
func loadWorldImage(path string, log *zap.SugaredLogger) *ebiten.Image {
	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		img, _, derr := ebitenutil.NewImageFromReader(f)
		if derr == nil {
			return img
		}
		err = derr
	}
	log.Warnf("world image %s: %v (using flat background)", path, err)
	img := ebiten.NewImage(protocol.WorldW, protocol.WorldH)
	img.Fill(color.NRGBA{34, 51, 34, 255})
	return img
}
