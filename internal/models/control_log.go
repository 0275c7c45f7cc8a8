package models

import "time"

// ControlLogEntry is an immutable record of a vent transition or hazard reset.
type ControlLogEntry struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"ts"`
	Actor      string    `json:"by_user"` // user name or SYSTEM
	Command    string    `json:"command"` // OPEN | CLOSE | CLOSE (cause=...) | RESET_HAZARDS
	Cause      Cause     `json:"cause,omitempty"`
}

// CommandResetHazards is logged when a user clears the hazard toggles.
const CommandResetHazards = "RESET_HAZARDS"
