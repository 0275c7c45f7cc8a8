package models

import (
	"encoding/json"
	"time"
)

// HazardKind names a boolean hazard toggle.
type HazardKind string

const (
	HazardRain  HazardKind = "rain"
	HazardSmoke HazardKind = "smoke"
)

// ParseHazardKind accepts "rain" or "smoke" in any case.
func ParseHazardKind(s string) (HazardKind, bool) {
	switch HazardKind(lower(s)) {
	case HazardRain:
		return HazardRain, true
	case HazardSmoke:
		return HazardSmoke, true
	}
	return "", false
}

// Cause is the single label attached to an active verdict.
type Cause string

const (
	CauseSmoke    Cause = "smoke"
	CauseRain     Cause = "rain"
	CauseHumidity Cause = "humidity"
)

// HazardVerdict is computed on demand and never stored as a whole.
type HazardVerdict struct {
	Rain         bool  `json:"rain"`
	Smoke        bool  `json:"smoke"`
	HumidityHigh bool  `json:"humidity_high"`
	Active       bool  `json:"active"`
	Cause        Cause `json:"cause,omitempty"`
}

// AutoHazard records the hazard that last closed the vent automatically.
type AutoHazard struct {
	Cause Cause     `json:"cause"`
	At    time.Time `json:"ts"`
}

// HazardSample is one entry of the rain or smoke history.
type HazardSample struct {
	ID         int64      `json:"id"`
	Kind       HazardKind `json:"kind"`
	On         bool       `json:"-"`
	RecordedAt time.Time  `json:"ts"`
}

// MarshalJSON emits the sample as the 0/1 series the dashboard charts.
func (s HazardSample) MarshalJSON() ([]byte, error) {
	val := 0
	if s.On {
		val = 1
	}
	return json.Marshal(struct {
		ID         int64      `json:"id"`
		Kind       HazardKind `json:"kind"`
		Val        int        `json:"val"`
		RecordedAt time.Time  `json:"ts"`
	}{s.ID, s.Kind, val, s.RecordedAt})
}
