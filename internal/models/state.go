package models

import "time"

// State is the singleton roof state: vent position plus hazard toggles.
type State struct {
	Vent           VentState   `json:"vent"`
	Rain           bool        `json:"rain"`
	Smoke          bool        `json:"smoke"`
	UpdatedAt      time.Time   `json:"vent_updated"`
	LastAutoHazard *AutoHazard `json:"last_auto_hazard,omitempty"`
}

// Toggle returns the current value of the given hazard toggle.
func (s State) Toggle(kind HazardKind) bool {
	if kind == HazardSmoke {
		return s.Smoke
	}
	return s.Rain
}
