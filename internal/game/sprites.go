package game

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

// frameKey identifies one sprite image: which avatar, facing which way,
// on which animation frame.
type frameKey struct {
	Avatar string
	Facing protocol.Direction
	Frame  int
}

type loadedFrame struct {
	key frameKey
	img *ebiten.Image
}

// SpriteCache lazily resolves frame references into GPU images. Entries
// are never evicted; a failed load caches nil so a bad reference logs
// once and is skipped thereafter. Loads run in the background and land
// on the update loop via Drain.
type SpriteCache struct {
	baseURL string
	httpc   *http.Client
	log     *zap.SugaredLogger

	images  map[frameKey]*ebiten.Image
	pending map[frameKey]bool
	loaded  chan loadedFrame
}

func NewSpriteCache(baseURL string, log *zap.SugaredLogger) *SpriteCache {
	return &SpriteCache{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
		log:     log,
		images:  make(map[frameKey]*ebiten.Image),
		pending: make(map[frameKey]bool),
		loaded:  make(chan loadedFrame, 32),
	}
}

// Get returns the cached image for key, or nil while the frame is still
// loading (or failed to load). A first miss kicks off the fetch.
func (s *SpriteCache) Get(key frameKey, ref string) *ebiten.Image {
	if img, ok := s.images[key]; ok {
		return img
	}
	if ref == "" || s.pending[key] {
		return nil
	}
	s.pending[key] = true
	go s.fetch(key, ref)
	return nil
}

// Drain applies completed loads. It reports whether anything arrived,
// which is the cue that the scene just gained sprites.
func (s *SpriteCache) Drain() bool {
	dirty := false
	for {
		select {
		case lf := <-s.loaded:
			s.images[lf.key] = lf.img
			delete(s.pending, lf.key)
			dirty = true
		default:
			return dirty
		}
	}
}

func (s *SpriteCache) fetch(key frameKey, ref string) {
	img, err := s.loadRef(ref)
	if err != nil {
		s.log.Warnf("sprite %s/%s/%d: %v", key.Avatar, key.Facing, key.Frame, err)
		img = nil // cache the failure
	}
	s.loaded <- loadedFrame{key: key, img: img}
}

// loadRef resolves a frame reference: an inline data URI, an absolute
// URL, or a path relative to the asset base.
func (s *SpriteCache) loadRef(ref string) (*ebiten.Image, error) {
	var r io.Reader
	switch {
	case strings.HasPrefix(ref, "data:"):
		i := strings.IndexByte(ref, ',')
		if i < 0 {
			return nil, fmt.Errorf("malformed data uri")
		}
		raw, err := base64.StdEncoding.DecodeString(ref[i+1:])
		if err != nil {
			return nil, fmt.Errorf("data uri: %w", err)
		}
		r = bytes.NewReader(raw)
	default:
		url := ref
		if !strings.Contains(ref, "://") {
			url = s.baseURL + "/" + strings.TrimLeft(ref, "/")
		}
		resp, err := s.httpc.Get(url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
		}
		r = resp.Body
	}

	img, _, err := ebitenutil.NewImageFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
