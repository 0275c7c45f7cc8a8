package mqtt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gnroof/internal/models"
)

var errEmptyPayload = errors.New("empty payload")

// ReadingPayload is published by sensors on the reading topic.
type ReadingPayload struct {
	Temp *float64 `json:"temp"`
	Hum  *float64 `json:"hum"`
}

// ParseReading decodes {"temp":..,"hum":..}; both fields are required.
func ParseReading(payload []byte) (tempC, humidity float64, err error) {
	var p ReadingPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return 0, 0, fmt.Errorf("decode reading: %w", err)
	}
	if p.Temp == nil || p.Hum == nil {
		return 0, 0, errors.New("reading needs both temp and hum")
	}
	return *p.Temp, *p.Hum, nil
}

// ParseToggle accepts {"on": v} or a bare value such as 1, true or "on".
// Anything not on the allow-list is off.
func ParseToggle(payload []byte) (bool, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return false, errEmptyPayload
	}

	if payload[0] == '{' {
		var obj map[string]any
		if err := json.Unmarshal(payload, &obj); err != nil {
			return false, fmt.Errorf("decode toggle: %w", err)
		}
		v, ok := obj["on"]
		if !ok {
			return false, errors.New(`toggle object has no "on" field`)
		}
		return models.ParseToggle(v), nil
	}

	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		// bare words like on / off
		return models.ParseToggle(string(payload)), nil
	}
	return models.ParseToggle(v), nil
}

// VentPayload is the retained vent state message.
type VentPayload struct {
	Vent  models.VentState `json:"vent"`
	Actor string           `json:"actor"`
	Cause models.Cause     `json:"cause,omitempty"`
	TS    string           `json:"ts"`
}

func FormatVentPayload(c models.VentChange) ([]byte, error) {
	return json.Marshal(VentPayload{
		Vent:  c.State,
		Actor: c.Actor,
		Cause: c.Cause,
		TS:    c.At.UTC().Format(time.RFC3339),
	})
}
