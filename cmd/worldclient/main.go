package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vinitaacharya/ai-open-source-prework/internal/game"
	"github.com/vinitaacharya/ai-open-source-prework/internal/logging"
	"github.com/vinitaacharya/ai-open-source-prework/internal/netcfg"
	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

func main() {
	log := logging.New(netcfg.LogFile)
	defer func() { _ = log.Sync() }()

	ebiten.SetWindowSize(protocol.ScreenW, protocol.ScreenH)
	ebiten.SetWindowTitle("World")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	c := game.New(log)
	defer c.Dispose()

	log.Infof("starting client as %q against %s", netcfg.Username, netcfg.ServerURL)
	if err := ebiten.RunGame(c); err != nil {
		log.Fatalf("run: %v", err)
	}
}
