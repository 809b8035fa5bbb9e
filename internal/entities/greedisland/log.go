package greedisland

import "time"

// Sender attributes a game log entry
type Sender string

// Log senders
const (
	SenderSystem Sender = "SYSTEM"
	SenderGM     Sender = "GM"
	SenderPlayer Sender = "PLAYER"
)

// LogEntry is one line of the player-visible game log. Game logic never reads it.
type LogEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
