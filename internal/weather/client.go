// Package weather looks up current conditions from an OpenWeather-compatible API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gnroof/internal/models"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

var (
	ErrMissingAPIKey = errors.New("weather api key is not set")
	ErrMissingCity   = errors.New("weather city is not set")
)

// StatusError is returned for a non-2xx upstream response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather upstream returned %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
}

// Current fetches metric current conditions for city.
func (c *Client) Current(ctx context.Context, city, apiKey string) (models.WeatherObservation, error) {
	city = strings.TrimSpace(city)
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return models.WeatherObservation{}, ErrMissingAPIKey
	}
	if city == "" {
		return models.WeatherObservation{}, ErrMissingCity
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.WeatherObservation{}, fmt.Errorf("build weather request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.WeatherObservation{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.WeatherObservation{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var cr currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return models.WeatherObservation{}, fmt.Errorf("decode weather response: %w", err)
	}
	if cr.Main.Temp == nil || cr.Main.Humidity == nil {
		return models.WeatherObservation{}, errors.New("weather response missing main.temp or main.humidity")
	}

	name := cr.Name
	if name == "" {
		name = city
	}
	return models.WeatherObservation{City: name, TempC: *cr.Main.Temp, Humidity: *cr.Main.Humidity}, nil
}
