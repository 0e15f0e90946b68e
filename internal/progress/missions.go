package progress

import (
	"context"
	"fmt"
)

// Activity types driving mission progress.
const (
	ActivityTaskComplete    = "task_complete"
	ActivityAttendanceCheck = "attendance_check"
	ActivityPerfectDay      = "perfect_day"
	ActivityAddTask         = "add_task"
)

// ActivityData carries the context of an activity for mission dispatch.
type ActivityData struct {
	Hour           int
	Category       string
	CompletedToday int
}

// MissionReward is the one-time payout for a claimed mission.
type MissionReward struct {
	Points int `json:"points"`
	XP     int `json:"xp"`
}

// Mission is a daily or weekly objective. Completed flips the instant
// progress reaches total and never flips back within the period.
type Mission struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Reward      MissionReward `json:"reward"`
	Progress    int           `json:"progress"`
	Total       int           `json:"total"`
	Completed   bool          `json:"completed"`
	Claimed     bool          `json:"claimed"`
}

func dailyMissionCatalog() []Mission {
	return []Mission{
		{ID: "morning_task", Title: "Morning Starter", Description: "Complete a task before 09:00", Total: 1, Reward: MissionReward{Points: 15, XP: 20}},
		{ID: "triple_complete", Title: "Triple Play", Description: "Complete 3 tasks today", Total: 3, Reward: MissionReward{Points: 20, XP: 30}},
		{ID: "evening_plan", Title: "Evening Planner", Description: "Add 2 tasks after 18:00", Total: 2, Reward: MissionReward{Points: 10, XP: 15}},
	}
}

func weeklyMissionCatalog() []Mission {
	return []Mission{
		{ID: "weekly_streak", Title: "Full Week", Description: "Check in 7 days in a row", Total: 7, Reward: MissionReward{Points: 50, XP: 100}},
		{ID: "category_variety", Title: "Well Rounded", Description: "Complete tasks in 5 different categories", Total: 5, Reward: MissionReward{Points: 40, XP: 80}},
		{ID: "perfect_days", Title: "Flawless", Description: "Finish every task on 3 days", Total: 3, Reward: MissionReward{Points: 70, XP: 120}},
	}
}

// ResetDailyMissions replaces the daily list with a fresh catalog and stamps
// the reset marker with today's date.
func (s *Store) ResetDailyMissions(ctx context.Context) {
	s.state.DailyMissions = dailyMissionCatalog()
	s.persistJSON(ctx, keyDailyMissions, s.state.DailyMissions)
	s.persistString(ctx, keyDailyReset, dateStr(s.now()))
}

// ResetWeeklyMissions replaces the weekly list and stamps the marker with
// the Monday of the current week. Weekly helper state (the category set)
// resets with it.
func (s *Store) ResetWeeklyMissions(ctx context.Context) {
	s.state.WeeklyMissions = weeklyMissionCatalog()
	s.persistJSON(ctx, keyWeeklyMissions, s.state.WeeklyMissions)
	s.persistString(ctx, keyWeeklyReset, weekStart(s.now()))
	s.persistJSON(ctx, keyWeekCategories, map[string]bool{})
}

// CheckResets compares the stored reset markers to the current date and
// performs any reset the process slept through. Safe to call from every
// operation and from a periodic tick.
func (s *Store) CheckResets(ctx context.Context) {
	today := dateStr(s.now())
	if last, ok, err := s.kv.Get(ctx, keyDailyReset); err != nil {
		s.log.Printf("daily reset marker: %v", err)
	} else if !ok || last != today {
		s.ResetDailyMissions(ctx)
	}

	week := weekStart(s.now())
	if last, ok, err := s.kv.Get(ctx, keyWeeklyReset); err != nil {
		s.log.Printf("weekly reset marker: %v", err)
	} else if !ok || last != week {
		s.ResetWeeklyMissions(ctx)
	}
}

// CheckMissionProgress advances every mission relevant to the activity.
// Counting missions increment; snapshot missions (today's completion count,
// current streak) take the larger of stored and reported progress.
func (s *Store) CheckMissionProgress(ctx context.Context, activity string, data ActivityData) {
	dailyChanged := false
	weeklyChanged := false

	switch activity {
	case ActivityTaskComplete:
		if data.Hour >= 0 && data.Hour < 9 {
			dailyChanged = s.bump(s.state.DailyMissions, "morning_task", 1) || dailyChanged
		}
		if data.CompletedToday > 0 {
			dailyChanged = s.snapshot(s.state.DailyMissions, "triple_complete", data.CompletedToday) || dailyChanged
		} else {
			dailyChanged = s.bump(s.state.DailyMissions, "triple_complete", 1) || dailyChanged
		}
		if data.Category != "" {
			if s.recordWeekCategory(ctx, data.Category) {
				weeklyChanged = s.bump(s.state.WeeklyMissions, "category_variety", 1) || weeklyChanged
			}
		}
	case ActivityAttendanceCheck:
		weeklyChanged = s.snapshot(s.state.WeeklyMissions, "weekly_streak", s.state.Streak) || weeklyChanged
	case ActivityPerfectDay:
		weeklyChanged = s.bump(s.state.WeeklyMissions, "perfect_days", 1) || weeklyChanged
	case ActivityAddTask:
		if data.Hour >= 18 {
			dailyChanged = s.bump(s.state.DailyMissions, "evening_plan", 1) || dailyChanged
		}
	default:
		s.log.Printf("mission progress: unknown activity %q", activity)
		return
	}

	if dailyChanged {
		s.persistJSON(ctx, keyDailyMissions, s.state.DailyMissions)
	}
	if weeklyChanged {
		s.persistJSON(ctx, keyWeeklyMissions, s.state.WeeklyMissions)
	}
}

// bump increments a mission's progress, clamped at total.
func (s *Store) bump(list []Mission, id string, by int) bool {
	return s.advance(list, id, func(m *Mission) int { return m.Progress + by })
}

// snapshot sets a mission's progress to an externally computed value,
// never moving it backward.
func (s *Store) snapshot(list []Mission, id string, value int) bool {
	return s.advance(list, id, func(m *Mission) int {
		if value > m.Progress {
			return value
		}
		return m.Progress
	})
}

func (s *Store) advance(list []Mission, id string, next func(*Mission) int) bool {
	for i := range list {
		m := &list[i]
		if m.ID != id || m.Completed {
			continue
		}
		p := next(m)
		if p == m.Progress {
			return false
		}
		if p > m.Total {
			p = m.Total
		}
		m.Progress = p
		if m.Progress >= m.Total {
			m.Completed = true
			s.notifier.Toast(fmt.Sprintf("✅ Mission complete: %s", m.Title))
		}
		return true
	}
	return false
}

// recordWeekCategory adds a category to this week's seen set, reporting
// whether it was new.
func (s *Store) recordWeekCategory(ctx context.Context, category string) bool {
	seen := map[string]bool{}
	if _, err := s.kv.GetJSON(ctx, keyWeekCategories, &seen); err != nil {
		s.log.Printf("week categories: %v", err)
		seen = map[string]bool{}
	}
	if seen[category] {
		return false
	}
	seen[category] = true
	s.persistJSON(ctx, keyWeekCategories, seen)
	return true
}

// ClaimMissionReward pays out a completed, unclaimed mission. When the last
// mission of a period is claimed, a flat all-clear bonus is granted once per
// period.
func (s *Store) ClaimMissionReward(ctx context.Context, id string) bool {
	lists := []struct {
		missions []Mission
		key      string
		daily    bool
	}{
		{s.state.DailyMissions, keyDailyMissions, true},
		{s.state.WeeklyMissions, keyWeeklyMissions, false},
	}

	for _, l := range lists {
		for i := range l.missions {
			m := &l.missions[i]
			if m.ID != id {
				continue
			}
			if !m.Completed || m.Claimed {
				return false
			}

			m.Claimed = true
			s.persistJSON(ctx, l.key, l.missions)
			s.AddPoints(ctx, m.Reward.Points, "Mission: "+m.Title, CategoryMission)
			s.AddXP(ctx, m.Reward.XP, "Mission: "+m.Title)

			if allClaimed(l.missions) {
				s.grantAllClearBonus(ctx, l.daily)
			}
			return true
		}
	}
	return false
}

func allClaimed(list []Mission) bool {
	for _, m := range list {
		if !m.Claimed {
			return false
		}
	}
	return len(list) > 0
}

func (s *Store) grantAllClearBonus(ctx context.Context, daily bool) {
	var flag, label string
	bonus := MissionReward{Points: 100, XP: 150}
	if daily {
		flag = "@daily_all_clear_" + dateStr(s.now())
		label = "Daily mission all clear"
		bonus = MissionReward{Points: 25, XP: 35}
	} else {
		flag = "@weekly_all_clear_" + weekStart(s.now())
		label = "Weekly mission all clear"
	}

	if _, ok, err := s.kv.Get(ctx, flag); err != nil {
		s.log.Printf("all clear flag: %v", err)
		return
	} else if ok {
		return
	}

	s.persistString(ctx, flag, "1")
	s.AddPoints(ctx, bonus.Points, label, CategoryBonus)
	s.AddXP(ctx, bonus.XP, label)
	s.notifier.Toast(fmt.Sprintf("🎁 %s! +%dP +%dXP", label, bonus.Points, bonus.XP))
}
