package progress

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"studyquest/internal/storage"
)

// Notifier shows fire-and-forget user-facing notifications (toasts).
type Notifier interface {
	Toast(msg string)
}

// Logger is the minimal logging surface the engine needs.
type Logger interface {
	Printf(format string, args ...any)
}

type nopNotifier struct{}

func (nopNotifier) Toast(string) {}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Store owns the progress state: points, XP, level, streaks, badges, titles,
// missions and D-Day slots. It is explicitly constructed and loaded; every
// mutation updates memory first and then persists the affected keys, logging
// (not failing on) storage errors unless noted otherwise.
//
// Store is not safe for concurrent use; callers are expected to serialize
// operations the way a UI event loop does.
type Store struct {
	kv       *storage.KV
	history  *storage.HistoryRepo
	notifier Notifier
	log      Logger

	now  func() time.Time
	luck func() float64

	state         State
	recentUnlocks []Unlock
}

func NewStore(kv *storage.KV, history *storage.HistoryRepo, n Notifier, log Logger) *Store {
	if n == nil {
		n = nopNotifier{}
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Store{
		kv:       kv,
		history:  history,
		notifier: n,
		log:      log,
		now:      time.Now,
		luck:     rand.Float64,
		state:    defaultState(),
	}
}

// State returns a copy of the current snapshot.
func (s *Store) State() State {
	st := s.state
	st.Attendance = make(map[string]bool, len(s.state.Attendance))
	for k, v := range s.state.Attendance {
		st.Attendance[k] = v
	}
	st.EarnedBadges = append([]string(nil), s.state.EarnedBadges...)
	st.DailyMissions = append([]Mission(nil), s.state.DailyMissions...)
	st.WeeklyMissions = append([]Mission(nil), s.state.WeeklyMissions...)
	return st
}

// RecentUnlocks drains the queued unlock notifications.
func (s *Store) RecentUnlocks() []Unlock {
	u := s.recentUnlocks
	s.recentUnlocks = nil
	return u
}

// Load reads the persisted state, applying documented defaults for missing
// keys and empty structures for malformed ones, then runs the mission reset
// check so stale lists never survive a day/week boundary.
func (s *Store) Load(ctx context.Context) error {
	st := defaultState()

	st.Points = s.loadInt(ctx, keyPoints, st.Points)
	st.XP = s.loadInt(ctx, keyXP, st.XP)
	st.Level = s.loadInt(ctx, keyLevel, st.Level)
	st.Streak = s.loadInt(ctx, keyStreak, 0)
	st.Slots = s.loadInt(ctx, keySlots, st.Slots)
	st.UnusedSlots = s.loadInt(ctx, keyUnusedSlots, 0)
	st.CompletedTasks = s.loadInt(ctx, keyCompletedTasks, 0)
	st.MorningTasks = s.loadInt(ctx, keyMorningTasks, 0)
	st.EveningTasks = s.loadInt(ctx, keyEveningTasks, 0)
	st.PerfectDays = s.loadInt(ctx, keyPerfectDays, 0)

	if _, err := s.kv.GetJSON(ctx, keyAttendance, &st.Attendance); err != nil {
		s.log.Printf("load attendance: %v", err)
		st.Attendance = map[string]bool{}
	}
	if st.Attendance == nil {
		st.Attendance = map[string]bool{}
	}

	var badges []string
	ok, err := s.kv.GetJSON(ctx, keyEarnedBadges, &badges)
	if err != nil {
		s.log.Printf("load badges: %v", err)
	} else if ok {
		st.EarnedBadges = badges
	}

	if title, ok, err := s.kv.Get(ctx, keyActiveTitle); err != nil {
		s.log.Printf("load title: %v", err)
	} else if ok {
		st.ActiveTitle = title
	}

	if date, ok, err := s.kv.Get(ctx, keyLastCheckDate); err == nil && ok {
		st.LastCheckDate = date
	}
	today := dateStr(s.now())
	if checked, ok, err := s.kv.Get(ctx, keyCheckedToday); err == nil && ok {
		st.CheckedToday = checked == today
	}

	if _, err := s.kv.GetJSON(ctx, keyDailyMissions, &st.DailyMissions); err != nil {
		s.log.Printf("load daily missions: %v", err)
		st.DailyMissions = nil
	}
	if _, err := s.kv.GetJSON(ctx, keyWeeklyMissions, &st.WeeklyMissions); err != nil {
		s.log.Printf("load weekly missions: %v", err)
		st.WeeklyMissions = nil
	}

	s.state = st

	if len(s.state.DailyMissions) == 0 {
		s.ResetDailyMissions(ctx)
	}
	if len(s.state.WeeklyMissions) == 0 {
		s.ResetWeeklyMissions(ctx)
	}
	s.CheckResets(ctx)
	s.evaluateTitles(ctx)

	return nil
}

// AddXP adds XP and performs as many level-ups as the new total covers. A
// level-up consumes RequiredXP of the old level, grants newLevel*20 points,
// awards level and milestone badges, and re-evaluates titles. Storage errors
// are swallowed and logged; the in-memory state still advances.
func (s *Store) AddXP(ctx context.Context, amount int, reason string) bool {
	if amount == 0 {
		return true
	}

	next := s.state.XP + amount
	if next < 0 {
		next = 0
	}
	s.state.XP = next
	s.persistInt(ctx, keyXP, s.state.XP)

	leveled := false
	for s.state.XP >= RequiredXP(s.state.Level) {
		required := RequiredXP(s.state.Level)
		s.state.Level++
		s.state.XP -= required
		s.persistInt(ctx, keyLevel, s.state.Level)
		s.persistInt(ctx, keyXP, s.state.XP)
		leveled = true

		newLevel := s.state.Level
		awarded, _ := s.AddPoints(ctx, newLevel*20, fmt.Sprintf("Reached level %d", newLevel), CategoryLevelUp)
		s.notifier.Toast(fmt.Sprintf("🎉 Level %d! +%dP", newLevel, awarded))

		// Level-triggered badges skip the XP bonus so a level-up can
		// never recurse into another award chain.
		s.awardBadge(ctx, fmt.Sprintf("level_%d", newLevel), false)
		s.awardBadge(ctx, fmt.Sprintf("milestone_level_%d", newLevel), false)
		s.evaluateTitles(ctx)
	}

	if !leveled && reason != "" {
		s.notifier.Toast(fmt.Sprintf("+%d XP — %s", amount, reason))
	}
	return true
}

// DeductXP removes XP, floored at zero. Never triggers a level-down.
func (s *Store) DeductXP(ctx context.Context, amount int, reason string) bool {
	if amount == 0 {
		return true
	}
	if amount < 0 {
		amount = -amount
	}
	next := s.state.XP - amount
	if next < 0 {
		next = 0
	}
	s.state.XP = next
	return s.persistInt(ctx, keyXP, s.state.XP)
}

// AddPoints credits points and records a history entry. Positive amounts go
// through the dynamic reward multiplier; negative amounts pass unchanged.
// Returns the amount actually credited. Fails (false) only on a storage
// write failure.
func (s *Store) AddPoints(ctx context.Context, amount int, reason, category string) (int, bool) {
	final := amount
	if amount > 0 {
		final = s.dynamicReward(amount)
	}

	s.state.Points += final
	ok := s.persistInt(ctx, keyPoints, s.state.Points)

	entryType := storage.HistoryEarn
	if final < 0 {
		entryType = storage.HistorySpend
	}
	if err := s.history.Append(ctx, storage.HistoryEntry{
		Type:        entryType,
		Category:    category,
		Amount:      final,
		Description: reason,
	}); err != nil {
		s.log.Printf("point history: %v", err)
	}

	return final, ok
}

// DeductPoints spends points. Rejects without mutation when the balance is
// insufficient.
func (s *Store) DeductPoints(ctx context.Context, amount int, reason, category string) bool {
	if amount < 0 {
		amount = -amount
	}
	if s.state.Points < amount {
		s.notifier.Toast("Not enough points")
		return false
	}

	s.state.Points -= amount
	ok := s.persistInt(ctx, keyPoints, s.state.Points)

	if err := s.history.Append(ctx, storage.HistoryEntry{
		Type:        storage.HistorySpend,
		Category:    category,
		Amount:      -amount,
		Description: reason,
	}); err != nil {
		s.log.Printf("point history: %v", err)
	}

	return ok
}

// LevelProgress reports position within the current level.
type LevelProgress struct {
	Current    int
	Required   int
	Percentage int
}

func (s *Store) LevelProgress() LevelProgress {
	required := RequiredXP(s.state.Level)
	if required < 1 {
		required = 1
	}
	pct := s.state.XP * 100 / required
	if pct > 100 {
		pct = 100
	}
	return LevelProgress{Current: s.state.XP, Required: required, Percentage: pct}
}

func (s *Store) loadInt(ctx context.Context, key string, fallback int) int {
	var v int
	ok, err := s.kv.GetJSON(ctx, key, &v)
	if err != nil {
		s.log.Printf("load %s: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return v
}

func (s *Store) persistInt(ctx context.Context, key string, v int) bool {
	if err := s.kv.SetJSON(ctx, key, v); err != nil {
		s.log.Printf("persist %s: %v", key, err)
		return false
	}
	return true
}

func (s *Store) persistString(ctx context.Context, key, v string) bool {
	if err := s.kv.Set(ctx, key, v); err != nil {
		s.log.Printf("persist %s: %v", key, err)
		return false
	}
	return true
}

func (s *Store) persistJSON(ctx context.Context, key string, v any) bool {
	if err := s.kv.SetJSON(ctx, key, v); err != nil {
		s.log.Printf("persist %s: %v", key, err)
		return false
	}
	return true
}

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}

// weekStart returns the date of the Monday beginning t's week, which keys
// the weekly mission period.
func weekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return dateStr(t.AddDate(0, 0, -offset))
}
