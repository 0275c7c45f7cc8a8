// Package mqtt bridges the roof to an MQTT broker: sensor and hazard topics
// feed ingestion, and vent transitions are published as retained state.
package mqtt

import "strings"

// Topics under a common prefix, e.g. "gnroof/sensor/reading".
type Topics struct {
	Reading   string
	Rain      string
	Smoke     string
	VentState string
}

func NewTopics(prefix string) Topics {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = "gnroof"
	}
	return Topics{
		Reading:   prefix + "/sensor/reading",
		Rain:      prefix + "/hazard/rain",
		Smoke:     prefix + "/hazard/smoke",
		VentState: prefix + "/vent/state",
	}
}
