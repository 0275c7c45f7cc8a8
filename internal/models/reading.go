package models

import "time"

// Reading is one temperature/humidity sample.
type Reading struct {
	ID           int64     `json:"id"`
	RecordedAt   time.Time `json:"ts"`
	TemperatureC float64   `json:"temp"` // °C
	Humidity     float64   `json:"hum"`  // % RH
}
