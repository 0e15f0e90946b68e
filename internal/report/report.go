// Package report generates templated feedback from planner data: pure
// functions selecting message variants from static tables keyed by numeric
// buckets, so the same inputs always produce the same report.
package report

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"studyquest/internal/planner"
)

// Report is the rendered feedback for one day or week.
type Report struct {
	Period         string
	TotalTasks     int
	CompletedTasks int
	CompletionRate int // percent
	StudyMinutes   int
	Insight        string
	Recommendation string
	TopCategory    string
}

var completionInsights = map[int][]string{
	0: {
		"A slow day. Tomorrow is a fresh page.",
		"Not much got done, and that is information too.",
	},
	1: {
		"You made a start. Momentum builds from exactly here.",
		"Some progress is on the board. Keep the chain going.",
	},
	2: {
		"A solid day. Most of the plan happened.",
		"Good follow-through. You are close to a clean sweep.",
	},
	3: {
		"Perfect execution. Every planned task, done.",
		"A flawless day. This is what consistency looks like.",
	},
}

var hoursRecommendations = map[int][]string{
	0: {
		"Try blocking one focused hour tomorrow morning.",
		"Short sessions count. Schedule one 30-minute block to restart.",
	},
	1: {
		"Steady volume. Consider one more block in your best hours.",
		"Good base. Protect your most productive time slot.",
	},
	2: {
		"Heavy volume. Make sure breaks are planned, not accidental.",
		"Strong hours. Watch for diminishing returns late at night.",
	},
}

func completionBucket(rate int) int {
	switch {
	case rate >= 100:
		return 3
	case rate >= 70:
		return 2
	case rate >= 30:
		return 1
	default:
		return 0
	}
}

func hoursBucket(minutes int) int {
	switch {
	case minutes >= 300:
		return 2
	case minutes >= 120:
		return 1
	default:
		return 0
	}
}

// pick selects a variant deterministically from the period key, so a report
// regenerated for the same day reads the same.
func pick(table []string, seed string) string {
	if len(table) == 0 {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(seed))
	return table[int(h.Sum32())%len(table)]
}

// Daily summarizes one date's tasks.
func Daily(date string, tasks []planner.Task) Report {
	return build("Daily · "+date, date, tasks)
}

// Weekly summarizes a week of tasks, keyed by the Monday date.
func Weekly(weekStart string, tasks []planner.Task) Report {
	return build("Weekly · week of "+weekStart, weekStart, tasks)
}

func build(period, seed string, tasks []planner.Task) Report {
	r := Report{Period: period, TotalTasks: len(tasks)}

	minutes := 0
	categories := map[string]int{}
	for _, t := range tasks {
		if t.Completed {
			r.CompletedTasks++
			minutes += duration(t)
			if t.Category != "" {
				categories[t.Category]++
			}
		}
	}
	r.StudyMinutes = minutes

	if r.TotalTasks > 0 {
		r.CompletionRate = r.CompletedTasks * 100 / r.TotalTasks
	}
	r.TopCategory = topCategory(categories)

	r.Insight = pick(completionInsights[completionBucket(r.CompletionRate)], seed+"/i")
	r.Recommendation = pick(hoursRecommendations[hoursBucket(minutes)], seed+"/r")
	return r
}

func duration(t planner.Task) int {
	start, ok1 := minutes(t.StartTime)
	end, ok2 := minutes(t.EndTime)
	if !ok1 || !ok2 || end <= start {
		return 0
	}
	return end - start
}

func minutes(hhmm string) (int, bool) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, false
	}
	hour, err1 := strconv.Atoi(h)
	min, err2 := strconv.Atoi(m)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return hour*60 + min, true
}

func topCategory(counts map[string]int) string {
	best, bestN := "", 0
	for c, n := range counts {
		if n > bestN || (n == bestN && c < best) {
			best, bestN = c, n
		}
	}
	return best
}

// Render formats a report as plain lines for the CLI.
func Render(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Period)
	fmt.Fprintf(&b, "Tasks: %d/%d (%d%%)\n", r.CompletedTasks, r.TotalTasks, r.CompletionRate)
	fmt.Fprintf(&b, "Study time: %dh %dm\n", r.StudyMinutes/60, r.StudyMinutes%60)
	if r.TopCategory != "" {
		fmt.Fprintf(&b, "Top category: %s\n", r.TopCategory)
	}
	fmt.Fprintf(&b, "Insight: %s\n", r.Insight)
	fmt.Fprintf(&b, "Next: %s\n", r.Recommendation)
	return b.String()
}
