package netcfg

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// Best effort; a missing .env just means plain environment variables.
	_ = godotenv.Load()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

var ServerURL = getenv("WORLD_WS_URL", "wss://codepath-mmorg.onrender.com") // WebSocket
var AssetBase = getenv("WORLD_ASSET_BASE", "https://codepath-mmorg.onrender.com")
var Username = getenv("WORLD_USERNAME", "Tim")
var WorldImage = getenv("WORLD_BG_IMAGE", "assets/world.jpg")
var LogFile = getenv("WORLD_LOG_FILE", "worldclient.log")
