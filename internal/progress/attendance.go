package progress

import (
	"context"
	"fmt"
	"time"
)

type streakReward struct {
	Points int
	XP     int
}

// streakRewards pays out when a streak first reaches the milestone day.
var streakRewards = map[int]streakReward{
	1:  {Points: 5, XP: 10},
	3:  {Points: 15, XP: 30},
	7:  {Points: 30, XP: 70},
	14: {Points: 60, XP: 150},
	30: {Points: 100, XP: 300},
}

var streakBadgeDays = []int{3, 5, 7, 10, 14, 21, 30, 50, 75, 100}

// CheckAttendance marks today attended. It is idempotent within a day:
// a second call the same day returns false and changes nothing. On success
// the streak is recomputed from the attendance map, the milestone reward for
// the new streak (if any) is paid, streak badges are evaluated, and mission
// progress for attendance is advanced.
func (s *Store) CheckAttendance(ctx context.Context) bool {
	s.CheckResets(ctx)

	today := dateStr(s.now())
	if s.state.Attendance[today] {
		return false
	}

	s.state.Attendance[today] = true
	s.state.LastCheckDate = today
	s.state.CheckedToday = true
	s.state.Streak = CalculateStreak(s.state.Attendance, s.now())

	s.persistJSON(ctx, keyAttendance, s.state.Attendance)
	s.persistInt(ctx, keyStreak, s.state.Streak)
	s.persistString(ctx, keyLastCheckDate, today)
	s.persistString(ctx, keyCheckedToday, today)

	r, ok := streakRewards[s.state.Streak]
	if !ok {
		r = streakRewards[1]
	}
	reason := fmt.Sprintf("%d-day attendance streak", s.state.Streak)
	s.AddPoints(ctx, r.Points, reason, CategoryAttendance)
	s.AddXP(ctx, r.XP, reason)

	s.checkStreakBadges(ctx)
	s.CheckMissionProgress(ctx, ActivityAttendanceCheck, ActivityData{})
	return true
}

// CalculateStreak counts consecutive attended days ending today. Returns 0
// when today itself is not marked, regardless of any earlier run. The scan
// is capped at a year so a corrupt map can never loop unbounded.
func CalculateStreak(attendance map[string]bool, now time.Time) int {
	if !attendance[dateStr(now)] {
		return 0
	}

	day := now
	streak := 0
	for i := 0; i < 366; i++ {
		if !attendance[dateStr(day)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// checkStreakBadges awards only on the exact milestone day, so restored
// attendance data that jumps past a milestone does not back-award it.
func (s *Store) checkStreakBadges(ctx context.Context) {
	for _, days := range streakBadgeDays {
		if s.state.Streak == days {
			s.AwardBadge(ctx, fmt.Sprintf("streak_%d", days))
			return
		}
	}
}
