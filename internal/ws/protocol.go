package ws

import "crew-casino/internal/app/casino"

const protocolVersion = "1.0"

// SpectateMessage is the only client->server message: subscribe to resolved
// rounds, optionally filtered to one game.
type SpectateMessage struct {
	Type string `json:"type"`
	Game string `json:"game,omitempty"`
}

type SpectateResult struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Ok              bool   `json:"ok"`
	Game            string `json:"game,omitempty"`
}

// ResultMessage wraps one resolved round for the wire.
type ResultMessage struct {
	Type            string             `json:"type"`
	ProtocolVersion string             `json:"protocol_version"`
	Event           casino.ResultEvent `json:"event"`
}
