package game

import (
	"testing"

	"go.uber.org/zap"

	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

func TestSpriteCacheBookkeeping(t *testing.T) {
	s := NewSpriteCache("http://assets.test", zap.NewNop().Sugar())
	key := frameKey{Avatar: "fox", Facing: protocol.DirDown, Frame: 1}

	// Simulate a completed background load landing on the channel.
	s.pending[key] = true
	s.loaded <- loadedFrame{key: key, img: nil}

	if !s.Drain() {
		t.Fatalf("Drain should report arrivals")
	}
	if s.pending[key] {
		t.Fatalf("key still pending after drain")
	}
	if _, ok := s.images[key]; !ok {
		t.Fatalf("drained frame not cached")
	}
	if s.Drain() {
		t.Fatalf("Drain with nothing queued reported arrivals")
	}

	// A cached failure stays cached: Get must not re-request it.
	if img := s.Get(key, "d1.png"); img != nil {
		t.Fatalf("failed load should resolve nil, got %v", img)
	}
	if s.pending[key] {
		t.Fatalf("cached entry re-requested")
	}
}

func TestSpriteCacheEmptyRefNeverPends(t *testing.T) {
	s := NewSpriteCache("", zap.NewNop().Sugar())
	key := frameKey{Avatar: "fox", Facing: protocol.DirUp, Frame: 0}
	if img := s.Get(key, ""); img != nil {
		t.Fatalf("empty ref should resolve nil")
	}
	if len(s.pending) != 0 {
		t.Fatalf("empty ref marked pending")
	}
}
