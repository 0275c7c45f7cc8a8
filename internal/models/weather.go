package models

// WeatherObservation is the subset of a current-weather lookup fed into readings.
type WeatherObservation struct {
	City     string  `json:"city"`
	TempC    float64 `json:"temp"`
	Humidity float64 `json:"hum"`
}
