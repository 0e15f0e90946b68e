package report

import (
	"strings"
	"testing"

	"studyquest/internal/planner"
)

func TestDailyAggregation(t *testing.T) {
	tasks := []planner.Task{
		{Title: "math", StartTime: "09:00", EndTime: "11:00", Category: "math", Completed: true},
		{Title: "english", StartTime: "13:00", EndTime: "14:00", Category: "english", Completed: true},
		{Title: "science", StartTime: "15:00", Category: "science"},
	}

	r := Daily("2026-01-06", tasks)
	if r.TotalTasks != 3 || r.CompletedTasks != 2 {
		t.Fatalf("tasks=%d/%d, want 2/3", r.CompletedTasks, r.TotalTasks)
	}
	if r.CompletionRate != 66 {
		t.Fatalf("rate=%d, want 66", r.CompletionRate)
	}
	if r.StudyMinutes != 180 {
		t.Fatalf("minutes=%d, want 180", r.StudyMinutes)
	}
	if r.Insight == "" || r.Recommendation == "" {
		t.Fatalf("empty messages: %+v", r)
	}
}

func TestReportDeterministic(t *testing.T) {
	tasks := []planner.Task{{Title: "a", Completed: true}}
	a := Daily("2026-01-06", tasks)
	b := Daily("2026-01-06", tasks)
	if a != b {
		t.Fatalf("same inputs produced different reports: %+v vs %+v", a, b)
	}
}

func TestEmptyReport(t *testing.T) {
	r := Daily("2026-01-06", nil)
	if r.CompletionRate != 0 || r.TotalTasks != 0 {
		t.Fatalf("empty day report: %+v", r)
	}
	if r.Insight == "" {
		t.Fatalf("empty day has no insight")
	}
}

func TestPerfectDayBucket(t *testing.T) {
	tasks := []planner.Task{
		{Title: "a", Completed: true},
		{Title: "b", Completed: true},
	}
	r := Daily("2026-01-06", tasks)
	if r.CompletionRate != 100 {
		t.Fatalf("rate=%d, want 100", r.CompletionRate)
	}
	found := false
	for _, m := range completionInsights[3] {
		if m == r.Insight {
			found = true
		}
	}
	if !found {
		t.Fatalf("insight %q not from the perfect bucket", r.Insight)
	}
}

func TestTopCategory(t *testing.T) {
	tasks := []planner.Task{
		{Title: "a", Category: "math", Completed: true},
		{Title: "b", Category: "math", Completed: true},
		{Title: "c", Category: "english", Completed: true},
	}
	r := Weekly("2026-01-05", tasks)
	if r.TopCategory != "math" {
		t.Fatalf("topCategory=%q, want math", r.TopCategory)
	}
}

func TestRenderContainsSections(t *testing.T) {
	out := Render(Daily("2026-01-06", []planner.Task{{Title: "a", Completed: true}}))
	for _, want := range []string{"Tasks:", "Study time:", "Insight:", "Next:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered report missing %q:\n%s", want, out)
		}
	}
}
