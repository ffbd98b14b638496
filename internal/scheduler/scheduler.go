package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/engine"
)

// Callback receives the instant sampled from the scheduler's clock.
type Callback func(now time.Time)

// Scheduler drives the two periodic jobs: a refresh that recomputes the
// shower state and a tick that only advances the countdown. The jobs are
// independent; a slow refresh never delays a tick.
type Scheduler struct {
	Clock     engine.Clock
	OnRefresh Callback
	OnTick    Callback

	// TickInterval defaults to config.TickInterval.
	TickInterval time.Duration

	mu      sync.Mutex
	cron    *gocron.Scheduler
	refresh time.Duration
	started bool
}

// New returns a stopped scheduler. Non-positive intervals use config.DefaultRefreshInterval.
func New(clock engine.Clock, refresh time.Duration, onRefresh, onTick Callback) *Scheduler {
	if refresh <= 0 {
		refresh = config.DefaultRefreshInterval
	}
	if clock == nil {
		clock = engine.RealClock{}
	}

	cron := gocron.NewScheduler(time.UTC)
	cron.SingletonModeAll()

	return &Scheduler{
		Clock:        clock,
		OnRefresh:    onRefresh,
		OnTick:       onTick,
		TickInterval: config.TickInterval,
		cron:         cron,
		refresh:      refresh,
	}
}

// Start registers the jobs and runs them until ctx is cancelled.
// Both jobs fire once immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.OnRefresh != nil {
		if err := s.addRefreshJob(); err != nil {
			return err
		}
	}
	if s.OnTick != nil {
		if _, err := s.cron.Every(s.TickInterval).Tag(config.JobTagTick).Do(s.runTick); err != nil {
			return fmt.Errorf("%s: %w", config.ErrScheduleJob, err)
		}
	}

	s.cron.StartAsync()
	s.started = true

	slog.Info(config.MsgSchedulerStart,
		config.LogKeyComponent, config.CompScheduler,
		config.LogKeyInterval, s.refresh,
	)

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgSchedulerStop, config.LogKeyComponent, config.CompScheduler)
		s.Stop()
	}()

	return nil
}

// Stop halts both jobs. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.cron.Stop()
	s.started = false
}

// RefreshInterval returns the current refresh period.
func (s *Scheduler) RefreshInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// SetRefreshInterval reschedules the refresh job. A running scheduler refreshes
// immediately with the new period.
func (s *Scheduler) SetRefreshInterval(d time.Duration) error {
	if d <= 0 {
		d = config.DefaultRefreshInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d == s.refresh {
		return nil
	}

	slog.Info(config.MsgUpdateRefresh,
		config.LogKeyComponent, config.CompScheduler,
		config.LogKeyOld, s.refresh,
		config.LogKeyNew, d,
	)
	s.refresh = d

	if !s.started || s.OnRefresh == nil {
		return nil
	}
	if err := s.cron.RemoveByTag(config.JobTagRefresh); err != nil {
		return fmt.Errorf("%s: %w", config.ErrScheduleJob, err)
	}
	return s.addRefreshJob()
}

// RefreshNow runs the refresh callback synchronously, outside the schedule.
func (s *Scheduler) RefreshNow() {
	if s.OnRefresh != nil {
		s.runRefresh()
	}
}

// addRefreshJob expects s.mu to be held.
func (s *Scheduler) addRefreshJob() error {
	if _, err := s.cron.Every(s.refresh).Tag(config.JobTagRefresh).Do(s.runRefresh); err != nil {
		return fmt.Errorf("%s: %w", config.ErrScheduleJob, err)
	}
	return nil
}

func (s *Scheduler) runRefresh() {
	s.OnRefresh(s.Clock.Now())
}

func (s *Scheduler) runTick() {
	s.OnTick(s.Clock.Now())
}
