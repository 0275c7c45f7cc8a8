package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"gnroof/internal/models"
	"gnroof/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       service.Identity
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockIngestion struct {
	verdict models.HazardVerdict
	vent    service.VentResult
	err     error

	lastTemp, lastHum float64
	lastKind          models.HazardKind
	lastOn            bool
	lastCommand       string
	lastActor         string
	calls             int
}

func (m *mockIngestion) SubmitReading(_ context.Context, temp, hum float64) (models.HazardVerdict, error) {
	m.calls++
	m.lastTemp, m.lastHum = temp, hum
	return m.verdict, m.err
}
func (m *mockIngestion) SetHazardToggle(_ context.Context, kind models.HazardKind, on bool) (models.HazardVerdict, error) {
	m.calls++
	m.lastKind, m.lastOn = kind, on
	return m.verdict, m.err
}
func (m *mockIngestion) IssueVentCommand(_ context.Context, command, actor string) (service.VentResult, error) {
	m.calls++
	m.lastCommand, m.lastActor = command, actor
	return m.vent, m.err
}
func (m *mockIngestion) ResetHazards(_ context.Context, actor string) (models.HazardVerdict, error) {
	m.calls++
	m.lastActor = actor
	return m.verdict, m.err
}

type mockMonitoring struct {
	status service.Status
	err    error
}

func (m *mockMonitoring) GetStatus(context.Context) (service.Status, error) {
	return m.status, m.err
}

type mockHistory struct {
	readings []models.Reading
	samples  []models.HazardSample
	log      []models.ControlLogEntry
	err      error

	lastLimit int
	lastKind  models.HazardKind
}

func (m *mockHistory) Readings(_ context.Context, limit int) ([]models.Reading, error) {
	m.lastLimit = limit
	return m.readings, m.err
}
func (m *mockHistory) HazardSamples(_ context.Context, kind models.HazardKind, limit int) ([]models.HazardSample, error) {
	m.lastKind, m.lastLimit = kind, limit
	return m.samples, m.err
}
func (m *mockHistory) ControlLog(_ context.Context, limit int) ([]models.ControlLogEntry, error) {
	m.lastLimit = limit
	return m.log, m.err
}

type mockWeather struct {
	pull  service.WeatherPull
	err   error
	lastQ service.WeatherQuery
}

func (m *mockWeather) Pull(_ context.Context, q service.WeatherQuery) (service.WeatherPull, error) {
	m.lastQ = q
	return m.pull, m.err
}
func (m *mockWeather) Poll(context.Context, time.Duration, service.WeatherQuery) {}

// ---- Shared Test Helpers ----

const goodToken = "good-token"

// validAuth accepts goodToken as user "alice".
func validAuth() *mockAuth {
	return &mockAuth{parseID: service.Identity{UserID: 1, Username: "alice"}}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func doRequest(r http.Handler, method, path, body string, hdr http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range hdr {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
