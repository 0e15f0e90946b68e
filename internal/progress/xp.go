package progress

import (
	"math"
	"strconv"
	"strings"
)

// RequiredXP returns the XP needed to advance from the given level to the
// next. Canonical growth curve: floor(100*level + 10*level^1.8). XP is
// reset-relative; a level-up consumes exactly this amount and carries the
// overflow into the new level.
func RequiredXP(level int) int {
	if level < 1 {
		level = 1
	}
	l := float64(level)
	return int(math.Floor(100*l + math.Pow(l, 1.8)*10))
}

// TaskInfo is the task record shape the engine consumes from the planner.
type TaskInfo struct {
	ID         string
	Title      string
	Date       string // "2006-01-02"
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM", optional
	Category   string
	Subject    string
	Difficulty string // easy|medium|hard, optional
	// TodayCompleted is the number of tasks done today including this one.
	// Zero means unknown; mission progress then falls back to incrementing.
	TodayCompleted int
}

// TaskXP values a task: base 20, early-morning and late-night start bonuses,
// difficulty overrides, and duration bonuses for long blocks.
func TaskXP(t TaskInfo) int {
	xp := 20

	hour := StartHour(t.StartTime)
	if hour >= 0 && hour < 7 {
		xp += 10
	}
	if hour >= 22 {
		xp += 5
	}

	switch strings.ToLower(strings.TrimSpace(t.Difficulty)) {
	case "easy":
		xp = 15
	case "medium":
		xp = 25
	case "hard":
		xp = 40
	}

	if t.StartTime != "" && t.EndTime != "" {
		duration := timeToMinutes(t.EndTime) - timeToMinutes(t.StartTime)
		if duration >= 120 {
			xp += 10
		}
		if duration >= 240 {
			xp += 10
		}
	}

	return xp
}

// StartHour parses the hour out of an "HH:MM" string. Returns -1 when the
// string is malformed so callers can skip time-of-day bookkeeping.
func StartHour(hhmm string) int {
	h, _, ok := strings.Cut(hhmm, ":")
	if !ok {
		return -1
	}
	hour, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || hour < 0 || hour > 23 {
		return -1
	}
	return hour
}

func timeToMinutes(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0
	}
	hour, err1 := strconv.Atoi(strings.TrimSpace(h))
	min, err2 := strconv.Atoi(strings.TrimSpace(m))
	if err1 != nil || err2 != nil {
		return 0
	}
	return hour*60 + min
}
