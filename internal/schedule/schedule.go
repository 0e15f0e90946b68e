// Package schedule runs the periodic jobs behind the interactive board:
// mission reset checks on a tick and the daily report reminder, kept inside
// the configured quiet-hours window.
package schedule

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"studyquest/internal/config"
	"studyquest/internal/progress"
)

// Notifier delivers reminder text to the user.
type Notifier interface {
	Toast(msg string)
}

// Scheduler manages the recurring jobs for a running session.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *progress.Store
	notifier  Notifier
	cfg       config.Config
	now       func() time.Time
}

func New(store *progress.Store, notifier Notifier, cfg config.Config) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		store:     store,
		notifier:  notifier,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Start registers the jobs and runs them in the background. The minute tick
// catches day and week boundaries even when the process slept through the
// exact reset instant.
func (s *Scheduler) Start(ctx context.Context) {
	s.scheduler.Every(1).Minute().Do(func() {
		s.store.CheckResets(ctx)
	})
	s.scheduler.Every(1).Hour().Do(func() {
		s.maybeRemind()
	})
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// maybeRemind nudges toward the evening report, only inside the configured
// reminder window and only at the configured report hour.
func (s *Scheduler) maybeRemind() {
	hour := s.now().Hour()
	if hour < s.cfg.ReminderStartHour || hour > s.cfg.ReminderEndHour {
		return
	}
	if hour != s.cfg.DailyReportHour {
		return
	}
	s.notifier.Toast("📜 Evening check: run `sq report` to review today.")
}
