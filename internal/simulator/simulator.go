// Package simulator synthesizes random marketplace activity on a timer to
// keep the demo dashboard lively. Each tick picks one interaction
// generator at random and feeds fabricated payloads through the event
// dispatcher, exactly like a real UI action would.
package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/trendiesmaroc/admin-backend/internal/events"
	"github.com/trendiesmaroc/admin-backend/internal/notifications"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
	"github.com/trendiesmaroc/admin-backend/pkg/metrics"
)

// Schedule runs fn after the delay and returns a cancel function.
// The default implementation wraps time.AfterFunc; tests inject their own
// to advance time deterministically.
type Schedule func(delay time.Duration, fn func()) (cancel func())

func defaultSchedule(delay time.Duration, fn func()) func() {
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}

// Params configure the simulator.
type Params struct {
	Store         *store.Store
	Dispatcher    *events.Dispatcher
	Notifications notifications.Service
	Logger        *logger.Logger
	Metrics       *metrics.EventMetrics
	MinDelay      time.Duration
	MaxDelay      time.Duration
	Rand          *rand.Rand
	Schedule      Schedule
}

// Simulator drives synthetic demo traffic. Start is idempotent; Stop
// cancels the pending timer but lets any in-flight tick run to
// completion.
type Simulator struct {
	store    *store.Store
	disp     *events.Dispatcher
	notifs   notifications.Service
	logg     *logger.Logger
	metrics  *metrics.EventMetrics
	minDelay time.Duration
	maxDelay time.Duration
	schedule Schedule

	mu     sync.Mutex
	rng    *rand.Rand
	active bool
	cancel func()
}

// New wires the simulator dependencies.
func New(params Params) (*Simulator, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("store required")
	}
	if params.Dispatcher == nil {
		return nil, fmt.Errorf("dispatcher required")
	}
	if params.Notifications == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.MinDelay <= 0 || params.MaxDelay < params.MinDelay {
		return nil, fmt.Errorf("invalid delay window %v..%v", params.MinDelay, params.MaxDelay)
	}
	rng := params.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	schedule := params.Schedule
	if schedule == nil {
		schedule = defaultSchedule
	}
	return &Simulator{
		store:    params.Store,
		disp:     params.Dispatcher,
		notifs:   params.Notifications,
		logg:     params.Logger,
		metrics:  params.Metrics,
		minDelay: params.MinDelay,
		maxDelay: params.MaxDelay,
		schedule: schedule,
		rng:      rng,
	}, nil
}

// Start schedules the first tick. A no-op while already running.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	s.scheduleNextLocked()
	s.logg.Info(context.Background(), "simulator started")
}

// Stop cancels the pending timer. An in-flight tick is not interrupted;
// its reschedule attempt sees the inactive flag and gives up.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.logg.Info(context.Background(), "simulator stopped")
}

// IsActive reports whether a tick is scheduled.
func (s *Simulator) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Simulator) scheduleNextLocked() {
	window := s.maxDelay - s.minDelay
	delay := s.minDelay
	if window > 0 {
		delay += time.Duration(s.rng.Int63n(int64(window)))
	}
	s.cancel = s.schedule(delay, s.tick)
}

func (s *Simulator) tick() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	generator := s.generators()[s.rng.Intn(4)]
	s.mu.Unlock()

	ctx := s.logg.WithField(context.Background(), "component", "simulator")
	s.runGenerator(ctx, generator)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		s.scheduleNextLocked()
	}
}

type generator struct {
	name string
	fn   func(ctx context.Context)
}

func (s *Simulator) generators() [4]generator {
	return [4]generator{
		{name: "user_registration", fn: s.generateRegistration},
		{name: "new_order", fn: s.generateOrder},
		{name: "user_approval", fn: s.generateApproval},
		{name: "return_request", fn: s.generateReturn},
	}
}

// runGenerator shields the schedule loop: a panicking generator is logged
// and the next tick still happens.
func (s *Simulator) runGenerator(ctx context.Context, gen generator) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logg.Error(ctx, "interaction generator panicked", fmt.Errorf("panic in %s: %v", gen.name, rec))
		}
	}()

	ctx = s.logg.WithField(ctx, "interaction", gen.name)
	s.logg.Info(ctx, "generating interaction")
	if s.metrics != nil {
		s.metrics.IncTick()
	}
	gen.fn(ctx)
}
