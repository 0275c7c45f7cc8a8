package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gnroof/internal/logger"
	"gnroof/internal/models"
	"gnroof/internal/repository"
)

const defaultActor = "user"

// VentNotifier is told about every committed vent transition.
type VentNotifier interface {
	VentChanged(ctx context.Context, c models.VentChange) error
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) VentChanged(context.Context, models.VentChange) error { return nil }

// VentResult reports the vent state after a command.
type VentResult struct {
	State   models.VentState `json:"vent"`
	Changed bool             `json:"changed"`
	At      time.Time        `json:"ts"`
}

// VentService is the vent state machine. Automation only ever closes the
// vent; opening takes an explicit command. Transitions are serialized by mu.
// Notifications run after mu is released; notifyMu is taken before mu is
// dropped so they go out in commit order.
type VentService struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex
	stateRepo repository.StateRepo
	notifier  VentNotifier
	log       *logger.Logger
	now       func() time.Time
}

func NewVentService(stateRepo repository.StateRepo, notifier VentNotifier, log *logger.Logger) *VentService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &VentService{
		stateRepo: stateRepo,
		notifier:  notifier,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// RequestVent applies an explicit command. Re-requesting the current state
// writes nothing. Opening is allowed while a hazard is active; the next
// evaluation closes the vent again.
func (s *VentService) RequestVent(ctx context.Context, target, actor string) (VentResult, error) {
	state, ok := models.ParseVentCommand(target)
	if !ok {
		return VentResult{}, invalid("vent command", "%q is neither OPEN nor CLOSE", target)
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = defaultActor
	}

	s.mu.Lock()
	locked := true
	defer func() {
		if locked {
			s.mu.Unlock()
		}
	}()

	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return VentResult{}, storeErr("load state", err)
	}
	if st.Vent == state {
		return VentResult{State: state, At: st.UpdatedAt}, nil
	}

	now := s.now()
	st.Vent = state
	st.UpdatedAt = now
	entry := models.ControlLogEntry{
		OccurredAt: now,
		Actor:      actor,
		Command:    string(state),
	}
	if err := s.stateRepo.Transition(ctx, st, entry); err != nil {
		return VentResult{}, storeErr("vent transition", err)
	}

	s.log.Infow("vent_changed", "vent", state, "actor", actor)
	locked = false
	s.notifyAfterUnlock(ctx, models.VentChange{State: state, Actor: actor, At: now})
	return VentResult{State: state, Changed: true, At: now}, nil
}

// AutoEvaluateAndClose closes the vent for an active verdict. It is a no-op
// for inactive verdicts and when the vent is already closed, so repeated
// evaluations of a persisting hazard log nothing.
func (s *VentService) AutoEvaluateAndClose(ctx context.Context, v models.HazardVerdict) (bool, error) {
	if !v.Active {
		return false, nil
	}

	s.mu.Lock()
	locked := true
	defer func() {
		if locked {
			s.mu.Unlock()
		}
	}()

	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return false, storeErr("load state", err)
	}
	if st.Vent == models.VentClose {
		return false, nil
	}

	now := s.now()
	st.Vent = models.VentClose
	st.UpdatedAt = now
	st.LastAutoHazard = &models.AutoHazard{Cause: v.Cause, At: now}
	entry := models.ControlLogEntry{
		OccurredAt: now,
		Actor:      models.SystemActor,
		Command:    fmt.Sprintf("%s (cause=%s)", models.VentClose, v.Cause),
		Cause:      v.Cause,
	}
	if err := s.stateRepo.Transition(ctx, st, entry); err != nil {
		return false, storeErr("auto-close transition", err)
	}

	s.log.Warnw("vent_auto_closed", "cause", v.Cause, "rain", v.Rain, "smoke", v.Smoke, "humidity_high", v.HumidityHigh)
	locked = false
	s.notifyAfterUnlock(ctx, models.VentChange{State: models.VentClose, Actor: models.SystemActor, Cause: v.Cause, At: now})
	return true, nil
}

// ClearHazards switches both toggles off and forgets the last auto hazard.
// The vent position is left as is. One control-log entry is written.
func (s *VentService) ClearHazards(ctx context.Context, actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = defaultActor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.ControlLogEntry{
		OccurredAt: s.now(),
		Actor:      actor,
		Command:    models.CommandResetHazards,
	}
	cleared, err := s.stateRepo.ResetHazards(ctx, entry)
	if err != nil {
		return storeErr("reset hazards", err)
	}

	s.log.Infow("hazards_reset", "actor", actor, "cleared", cleared)
	return nil
}

// notifyAfterUnlock must be called with mu held. It hands over to notifyMu,
// releases mu and then notifies. A failed notification does not undo the
// transition.
func (s *VentService) notifyAfterUnlock(ctx context.Context, c models.VentChange) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.mu.Unlock()

	if err := s.notifier.VentChanged(ctx, c); err != nil {
		s.log.Warnw("vent_notify_failed", "err", err, "vent", c.State)
	}
}
