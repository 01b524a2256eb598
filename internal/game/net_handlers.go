package game

import (
	"encoding/json"

	"github.com/vinitaacharya/ai-open-source-prework/shared/protocol"
)

// handle decodes one inbound frame and applies it to the world mirror.
// Unknown actions and malformed payloads are dropped; nothing inbound
// is fatal to the session.
func (c *Client) handle(raw json.RawMessage) {
	action, err := protocol.DecodeAction(raw)
	if err != nil {
		c.log.Debugf("drop frame: %v", err)
		return
	}
	switch action {
	case protocol.ActionJoinGame:
		var res protocol.JoinGameResult
		if err := json.Unmarshal(raw, &res); err != nil {
			c.log.Debugf("join_game: %v", err)
			return
		}
		if !res.Success {
			c.log.Warnf("join_game rejected for %q", c.username)
			return
		}
		c.world.ApplyJoin(res)
		c.log.Infof("joined as %s (%d players, %d avatars)",
			res.PlayerID, len(res.Players), len(res.Avatars))

	case protocol.ActionPlayerJoined:
		var pj protocol.PlayerJoined
		if err := json.Unmarshal(raw, &pj); err != nil {
			return
		}
		c.world.AddPlayer(pj.Player, pj.Avatar)

	case protocol.ActionPlayersMoved:
		var pm protocol.PlayersMoved
		if err := json.Unmarshal(raw, &pm); err != nil {
			return
		}
		c.world.MergeMoved(pm.Players)

	case protocol.ActionPlayerLeft:
		var pl protocol.PlayerLeft
		if err := json.Unmarshal(raw, &pl); err != nil {
			return
		}
		c.world.RemovePlayer(pl.PlayerID)

	default:
		// Unrecognized discriminator: ignore.
	}
}
