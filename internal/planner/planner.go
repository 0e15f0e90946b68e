// Package planner owns the schedule data: goals with a countdown target
// date and dated study tasks. It publishes the goal-added event instead of
// importing the progress engine, keeping the dependency one-way.
package planner

import (
	"context"
	"fmt"
	"time"

	"studyquest/internal/events"
	"studyquest/internal/storage"
)

// EventGoalAdded fires after a goal with a target date is stored. The
// payload is the Goal.
const EventGoalAdded = "goalAdded"

const (
	keyGoals = "@goals"
	keyTasks = "@tasks"
)

// Goal is a D-Day target: something to count down to.
type Goal struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	TargetDate string `json:"targetDate"` // "2006-01-02"
	CreatedAt  string `json:"createdAt"`
}

// DaysLeft counts whole days from today to the target, negative when past.
func (g Goal) DaysLeft(now time.Time) int {
	target, err := time.ParseInLocation("2006-01-02", g.TargetDate, now.Location())
	if err != nil {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(target.Sub(today).Hours() / 24)
}

// Task is one scheduled study block.
type Task struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`      // "2006-01-02"
	StartTime  string `json:"startTime"` // "HH:MM"
	EndTime    string `json:"endTime,omitempty"`
	Category   string `json:"category,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Completed  bool   `json:"completed"`
}

// Service reads and writes planner records through the key-value store.
type Service struct {
	kv  *storage.KV
	bus *events.Bus
	now func() time.Time
}

func NewService(kv *storage.KV, bus *events.Bus) *Service {
	return &Service{kv: kv, bus: bus, now: time.Now}
}

// AddGoal stores a new goal and emits the goal-added event so slot
// bookkeeping can react.
func (s *Service) AddGoal(ctx context.Context, title, targetDate string) (Goal, error) {
	if title == "" {
		return Goal{}, fmt.Errorf("add goal: empty title")
	}
	if _, err := time.Parse("2006-01-02", targetDate); err != nil {
		return Goal{}, fmt.Errorf("add goal: bad date %q: %w", targetDate, err)
	}

	goals, err := s.Goals(ctx)
	if err != nil {
		return Goal{}, err
	}

	g := Goal{
		ID:         nextGoalID(goals),
		Title:      title,
		TargetDate: targetDate,
		CreatedAt:  s.now().Format("2006-01-02"),
	}
	goals = append(goals, g)
	if err := s.kv.SetJSON(ctx, keyGoals, goals); err != nil {
		return Goal{}, fmt.Errorf("add goal: %w", err)
	}

	s.bus.Emit(EventGoalAdded, g)
	return g, nil
}

func (s *Service) Goals(ctx context.Context) ([]Goal, error) {
	var goals []Goal
	if _, err := s.kv.GetJSON(ctx, keyGoals, &goals); err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	return goals, nil
}

// AddTask stores a task for a date, defaulting the date to today.
func (s *Service) AddTask(ctx context.Context, t Task) (Task, error) {
	if t.Title == "" {
		return Task{}, fmt.Errorf("add task: empty title")
	}
	if t.Date == "" {
		t.Date = s.now().Format("2006-01-02")
	}

	tasks, err := s.tasks(ctx)
	if err != nil {
		return Task{}, err
	}

	t.ID = nextTaskID(tasks)
	t.Completed = false
	tasks = append(tasks, t)
	if err := s.kv.SetJSON(ctx, keyTasks, tasks); err != nil {
		return Task{}, fmt.Errorf("add task: %w", err)
	}
	return t, nil
}

// TasksOn lists the tasks scheduled for a date, in insertion order.
func (s *Service) TasksOn(ctx context.Context, date string) ([]Task, error) {
	tasks, err := s.tasks(ctx)
	if err != nil {
		return nil, err
	}
	var out []Task
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out, nil
}

// CompleteTask marks a task done. Errors when it is missing or already
// completed.
func (s *Service) CompleteTask(ctx context.Context, id int) (Task, error) {
	return s.setCompleted(ctx, id, true)
}

// UndoTask reverts a completion.
func (s *Service) UndoTask(ctx context.Context, id int) (Task, error) {
	return s.setCompleted(ctx, id, false)
}

func (s *Service) setCompleted(ctx context.Context, id int, done bool) (Task, error) {
	tasks, err := s.tasks(ctx)
	if err != nil {
		return Task{}, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if tasks[i].Completed == done {
			if done {
				return Task{}, fmt.Errorf("task %d already completed", id)
			}
			return Task{}, fmt.Errorf("task %d not completed", id)
		}
		tasks[i].Completed = done
		if err := s.kv.SetJSON(ctx, keyTasks, tasks); err != nil {
			return Task{}, fmt.Errorf("update task: %w", err)
		}
		return tasks[i], nil
	}
	return Task{}, fmt.Errorf("task %d not found", id)
}

// CompletedOn counts completions for a date.
func (s *Service) CompletedOn(ctx context.Context, date string) (int, error) {
	tasks, err := s.TasksOn(ctx, date)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n, nil
}

// AllDoneOn reports whether the date had tasks and every one is completed.
func (s *Service) AllDoneOn(ctx context.Context, date string) (bool, error) {
	tasks, err := s.TasksOn(ctx, date)
	if err != nil {
		return false, err
	}
	if len(tasks) == 0 {
		return false, nil
	}
	for _, t := range tasks {
		if !t.Completed {
			return false, nil
		}
	}
	return true, nil
}

func (s *Service) tasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if _, err := s.kv.GetJSON(ctx, keyTasks, &tasks); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

func nextGoalID(goals []Goal) int {
	max := 0
	for _, g := range goals {
		if g.ID > max {
			max = g.ID
		}
	}
	return max + 1
}

func nextTaskID(tasks []Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
