package service

import (
	"context"
	"sync"
	"time"

	"gnroof/internal/models"
)

// memStore is an in-memory stand-in for the state, reading and log repos.
// failWrites makes every write fail before touching anything.
type memStore struct {
	mu         sync.Mutex
	state      models.State
	readings   []models.Reading
	controlLog []models.ControlLogEntry
	samples    []models.HazardSample

	loadErr    error
	failWrites error
	latestErr  error
}

func newMemStore() *memStore {
	return &memStore{state: models.State{Vent: models.VentClose}}
}

func (m *memStore) Load(context.Context) (models.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return models.State{}, m.loadErr
	}
	return m.state, nil
}

func (m *memStore) Transition(_ context.Context, s models.State, e models.ControlLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return m.failWrites
	}
	m.state.Vent = s.Vent
	m.state.UpdatedAt = s.UpdatedAt
	m.state.LastAutoHazard = s.LastAutoHazard
	m.controlLog = append(m.controlLog, e)
	return nil
}

func (m *memStore) SetToggle(_ context.Context, kind models.HazardKind, on bool, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return m.failWrites
	}
	if kind == models.HazardRain {
		m.state.Rain = on
	} else {
		m.state.Smoke = on
	}
	m.samples = append(m.samples, models.HazardSample{Kind: kind, On: on, RecordedAt: at})
	return nil
}

func (m *memStore) ResetHazards(_ context.Context, e models.ControlLogEntry) ([]models.HazardKind, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return nil, m.failWrites
	}
	var cleared []models.HazardKind
	if m.state.Rain {
		cleared = append(cleared, models.HazardRain)
	}
	if m.state.Smoke {
		cleared = append(cleared, models.HazardSmoke)
	}
	m.state.Rain, m.state.Smoke, m.state.LastAutoHazard = false, false, nil
	for _, k := range cleared {
		m.samples = append(m.samples, models.HazardSample{Kind: k, On: false, RecordedAt: e.OccurredAt})
	}
	m.controlLog = append(m.controlLog, e)
	return cleared, nil
}

func (m *memStore) Append(_ context.Context, r models.Reading) (models.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites != nil {
		return models.Reading{}, m.failWrites
	}
	r.ID = int64(len(m.readings) + 1)
	m.readings = append(m.readings, r)
	return r, nil
}

func (m *memStore) Latest(context.Context) (*models.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.latestErr != nil {
		return nil, m.latestErr
	}
	if len(m.readings) == 0 {
		return nil, nil
	}
	r := m.readings[len(m.readings)-1]
	return &r, nil
}

func (m *memStore) List(_ context.Context, limit int) ([]models.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return tail(m.readings, limit), nil
}

// lastSample returns the newest history sample of kind.
func (m *memStore) lastSample(kind models.HazardKind) (models.HazardSample, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.samples) - 1; i >= 0; i-- {
		if m.samples[i].Kind == kind {
			return m.samples[i], true
		}
	}
	return models.HazardSample{}, false
}

// afterLoadStore runs afterLoad once, right after the first Load returns, to
// land a concurrent write between a read and the write that follows it.
type afterLoadStore struct {
	*memStore
	once      sync.Once
	afterLoad func()
}

func (a *afterLoadStore) Load(ctx context.Context) (models.State, error) {
	st, err := a.memStore.Load(ctx)
	a.once.Do(a.afterLoad)
	return st, err
}

// blockingNotifier holds the first VentChanged call until release is closed.
type blockingNotifier struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingNotifier() *blockingNotifier {
	return &blockingNotifier{entered: make(chan struct{}), release: make(chan struct{})}
}

func (n *blockingNotifier) VentChanged(context.Context, models.VentChange) error {
	first := false
	n.once.Do(func() { first = true })
	if first {
		close(n.entered)
		<-n.release
	}
	return nil
}

func (m *memStore) logEntries() []models.ControlLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ControlLogEntry(nil), m.controlLog...)
}

func (m *memStore) current() models.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// controlLogView and hazardLogView expose the memStore logs under the
// ControlLogRepo and HazardLogRepo method sets.
type controlLogView struct{ m *memStore }

func (v controlLogView) List(_ context.Context, limit int) ([]models.ControlLogEntry, error) {
	return tail(v.m.logEntries(), limit), nil
}

type hazardLogView struct{ m *memStore }

func (v hazardLogView) List(_ context.Context, kind models.HazardKind, limit int) ([]models.HazardSample, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	var out []models.HazardSample
	for _, s := range v.m.samples {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return tail(out, limit), nil
}

func tail[T any](s []T, n int) []T {
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return append([]T(nil), s...)
}

// recordingNotifier keeps every VentChange it is given.
type recordingNotifier struct {
	mu      sync.Mutex
	changes []models.VentChange
	err     error
}

func (n *recordingNotifier) VentChanged(_ context.Context, c models.VentChange) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, c)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.changes)
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// newTestStack wires the hazard, vent and ingestion services over one memStore.
func newTestStack() (*memStore, *recordingNotifier, *VentService, *IngestionService) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	vent := NewVentService(store, notifier, nil)
	vent.now = func() time.Time { return fixedNow }
	hazard := NewHazardService(store, store)
	ingest := NewIngestionService(store, store, hazard, vent)
	ingest.now = func() time.Time { return fixedNow }
	return store, notifier, vent, ingest
}

func ptr[T any](v T) *T { return &v }
