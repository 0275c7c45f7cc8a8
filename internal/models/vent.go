package models

import (
	"strings"
	"time"
)

// VentState is the position of the roof vent.
type VentState string

const (
	VentOpen  VentState = "OPEN"
	VentClose VentState = "CLOSE"
)

// SystemActor is the actor recorded for automation-driven transitions.
const SystemActor = "SYSTEM"

// ParseVentCommand normalizes a loosely spelled vent command.
// Any case-insensitive prefix of OPEN/CLOSE (or a word starting with one,
// e.g. "opened") is accepted; the first letter decides the state.
func ParseVentCommand(raw string) (VentState, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	switch s[0] {
	case 'O':
		if openOrCloseLike(s, string(VentOpen)) {
			return VentOpen, true
		}
	case 'C':
		if openOrCloseLike(s, string(VentClose)) {
			return VentClose, true
		}
	}
	return "", false
}

func openOrCloseLike(s, word string) bool {
	return strings.HasPrefix(word, s) || strings.HasPrefix(s, word)
}

// VentChange describes a committed vent transition.
type VentChange struct {
	State VentState `json:"vent"`
	Actor string    `json:"actor"`
	Cause Cause     `json:"cause,omitempty"`
	At    time.Time `json:"ts"`
}
