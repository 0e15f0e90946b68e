package progress

import (
	"context"
	"fmt"
)

var completionBadgeSteps = map[int]string{
	1:   "first_complete",
	5:   "five_complete",
	10:  "ten_complete",
	20:  "twenty_complete",
	30:  "thirty_complete",
	50:  "fifty_complete",
	70:  "seventy_complete",
	100: "hundred_complete",
	200: "two_hundred_complete",
	500: "five_hundred_complete",
}

// TaskReward reports what a completion paid out.
type TaskReward struct {
	Points int
	XP     int
}

// RewardTaskCompletion pays out a completed task: base 5 points with small
// early/late start bonuses (through the dynamic multiplier), XP from the
// task-value formula, counter updates, mission progress, and completion and
// time-of-day badge checks.
func (s *Store) RewardTaskCompletion(ctx context.Context, t TaskInfo) (TaskReward, bool) {
	s.CheckResets(ctx)

	points := 5
	hour := StartHour(t.StartTime)
	if hour >= 0 && hour < 7 {
		points += 3
	}
	if hour >= 22 {
		points += 2
	}

	desc := t.Title
	if desc == "" {
		desc = "Task completed"
	}
	awarded, ok := s.AddPoints(ctx, points, desc, CategoryTask)
	if !ok {
		return TaskReward{}, false
	}

	xp := TaskXP(t)
	s.AddXP(ctx, xp, desc)

	s.state.CompletedTasks++
	s.persistInt(ctx, keyCompletedTasks, s.state.CompletedTasks)
	if hour >= 0 && hour < 12 {
		s.state.MorningTasks++
		s.persistInt(ctx, keyMorningTasks, s.state.MorningTasks)
	}
	if hour >= 18 {
		s.state.EveningTasks++
		s.persistInt(ctx, keyEveningTasks, s.state.EveningTasks)
	}

	s.CheckMissionProgress(ctx, ActivityTaskComplete, ActivityData{
		Hour:           hour,
		Category:       t.Category,
		CompletedToday: t.TodayCompleted,
	})

	s.checkCompletionBadges(ctx)
	s.checkTimeBadges(ctx)

	return TaskReward{Points: awarded, XP: xp}, true
}

// UndoTaskCompletion reverses a completion's direct rewards: the base points
// (no multiplier), the task XP (floored, never a level-down), and the
// counters (floored at zero). Badges and mission completion already earned
// stay earned.
func (s *Store) UndoTaskCompletion(ctx context.Context, t TaskInfo) bool {
	points := 5
	hour := StartHour(t.StartTime)
	if hour >= 0 && hour < 7 {
		points += 3
	}
	if hour >= 22 {
		points += 2
	}

	desc := t.Title
	if desc == "" {
		desc = "Task completion undone"
	}
	s.AddPoints(ctx, -points, desc, CategoryTaskUndo)
	s.DeductXP(ctx, TaskXP(t), desc)

	if s.state.CompletedTasks > 0 {
		s.state.CompletedTasks--
		s.persistInt(ctx, keyCompletedTasks, s.state.CompletedTasks)
	}
	if hour >= 0 && hour < 12 && s.state.MorningTasks > 0 {
		s.state.MorningTasks--
		s.persistInt(ctx, keyMorningTasks, s.state.MorningTasks)
	}
	if hour >= 18 && s.state.EveningTasks > 0 {
		s.state.EveningTasks--
		s.persistInt(ctx, keyEveningTasks, s.state.EveningTasks)
	}
	return true
}

// HandleAllTasksCompleted records a perfect day: every task planned for the
// date done. Guarded by a per-date flag so a day counts once.
func (s *Store) HandleAllTasksCompleted(ctx context.Context, date string) bool {
	if date == "" {
		date = dateStr(s.now())
	}
	flag := "@perfect_day_" + date
	if _, ok, err := s.kv.Get(ctx, flag); err != nil {
		s.log.Printf("perfect day flag: %v", err)
		return false
	} else if ok {
		return false
	}
	s.persistString(ctx, flag, "1")

	s.state.PerfectDays++
	s.persistInt(ctx, keyPerfectDays, s.state.PerfectDays)

	s.AddPoints(ctx, 20, "Perfect day "+date, CategoryBonus)
	s.AddXP(ctx, 30, "Perfect day")
	s.notifier.Toast("✨ Perfect day! Every task done.")

	s.AwardBadge(ctx, "perfect_day")
	if s.state.PerfectDays >= 7 {
		s.AwardBadge(ctx, "perfect_week")
	}
	if s.state.PerfectDays >= 30 {
		s.AwardBadge(ctx, "perfect_month")
	}

	s.CheckMissionProgress(ctx, ActivityPerfectDay, ActivityData{})
	return true
}

// HandleTaskAdded advances the evening-planning mission when a task is
// created late in the day.
func (s *Store) HandleTaskAdded(ctx context.Context) {
	s.CheckResets(ctx)
	s.CheckMissionProgress(ctx, ActivityAddTask, ActivityData{Hour: s.now().Hour()})
}

func (s *Store) checkCompletionBadges(ctx context.Context) {
	if id, ok := completionBadgeSteps[s.state.CompletedTasks]; ok {
		s.AwardBadge(ctx, id)
	}
}

func (s *Store) checkTimeBadges(ctx context.Context) {
	switch s.state.MorningTasks {
	case 3:
		s.AwardBadge(ctx, "morning_person")
	case 10:
		s.AwardBadge(ctx, "morning_master")
	}
	switch s.state.EveningTasks {
	case 3:
		s.AwardBadge(ctx, "night_owl")
	case 10:
		s.AwardBadge(ctx, "night_master")
	}
}

// DdayInfo summarizes slot inventory for display.
func (s *Store) DdayInfo() (owned, unused, nextPrice int) {
	return s.state.Slots, s.state.UnusedSlots, NextSlotPrice(s.state.Slots)
}

// Summary renders the compact one-line status used in logs and toasts.
func (s *Store) Summary() string {
	p := s.LevelProgress()
	return fmt.Sprintf("Lv.%d (%d/%d XP) · %dP · 🔥%d", s.state.Level, p.Current, p.Required, s.state.Points, s.state.Streak)
}
