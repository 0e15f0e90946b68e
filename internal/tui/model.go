package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"studyquest/internal/planner"
	"studyquest/internal/progress"
)

type boardModel struct {
	ctx   context.Context
	store *progress.Store
	plan  *planner.Service

	width  int
	height int

	state   progress.State
	lp      progress.LevelProgress
	title   string
	tasks   []planner.Task
	goals   []planner.Goal
	today   string

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state progress.State
	lp    progress.LevelProgress
	title string
	tasks []planner.Task
	goals []planner.Goal
	err   error
}

type completedMsg struct {
	task   planner.Task
	reward progress.TaskReward
	err    error
}

type checkedMsg struct {
	ok     bool
	streak int
}

type claimedMsg struct {
	id string
	ok bool
}

func newBoardModel(ctx context.Context, store *progress.Store, plan *planner.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		store:   store,
		plan:    plan,
		today:   time.Now().Format("2006-01-02"),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.plan.TasksOn(m.ctx, m.today)
		if err != nil {
			return loadedMsg{err: err}
		}
		goals, err := m.plan.Goals(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{
			state: m.store.State(),
			lp:    m.store.LevelProgress(),
			title: m.store.CurrentTitle().Name,
			tasks: tasks,
			goals: goals,
		}
	}
}

func (m boardModel) completeCmd(t planner.Task) tea.Cmd {
	return func() tea.Msg {
		done, err := m.plan.CompleteTask(m.ctx, t.ID)
		if err != nil {
			return completedMsg{err: err}
		}
		completed, err := m.plan.CompletedOn(m.ctx, done.Date)
		if err != nil {
			completed = 0
		}
		reward, _ := m.store.RewardTaskCompletion(m.ctx, progress.TaskInfo{
			ID:             strconv.Itoa(done.ID),
			Title:          done.Title,
			Date:           done.Date,
			StartTime:      done.StartTime,
			EndTime:        done.EndTime,
			Category:       done.Category,
			Subject:        done.Subject,
			Difficulty:     done.Difficulty,
			TodayCompleted: completed,
		})
		if all, err := m.plan.AllDoneOn(m.ctx, done.Date); err == nil && all {
			m.store.HandleAllTasksCompleted(m.ctx, done.Date)
		}
		return completedMsg{task: done, reward: reward}
	}
}

func (m boardModel) checkinCmd() tea.Cmd {
	return func() tea.Msg {
		ok := m.store.CheckAttendance(m.ctx)
		return checkedMsg{ok: ok, streak: m.store.State().Streak}
	}
}

func (m boardModel) claimCmd() tea.Cmd {
	return func() tea.Msg {
		for _, mi := range append(m.state.DailyMissions, m.state.WeeklyMissions...) {
			if mi.Completed && !mi.Claimed {
				return claimedMsg{id: mi.ID, ok: m.store.ClaimMissionReward(m.ctx, mi.ID)}
			}
		}
		return claimedMsg{}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.lp = msg.lp
		m.title = msg.title
		m.tasks = msg.tasks
		m.goals = msg.goals
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Done: %s (+%dP +%dXP)", msg.task.Title, msg.reward.Points, msg.reward.XP)
		return m, m.loadCmd()
	case checkedMsg:
		if msg.ok {
			m.lastLog = fmt.Sprintf("Checked in! %d-day streak.", msg.streak)
		} else {
			m.lastLog = "Already checked in today."
		}
		return m, m.loadCmd()
	case claimedMsg:
		if msg.id == "" {
			m.lastLog = "Nothing claimable."
			return m, nil
		}
		if msg.ok {
			m.lastLog = "Claimed mission: " + msg.id
		} else {
			m.lastLog = "Claim failed: " + msg.id
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "a":
			return m, m.checkinCmd()
		case "g":
			return m, m.claimCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			if t.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing #%d…", t.ID)
			return m, m.completeCmd(t)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.loading {
		return "StudyQuest — loading…"
	}
	bar := progressBar(m.lp.Current, m.lp.Required, 30)
	return fmt.Sprintf("StudyQuest | %s | Level %d %s | %dP | 🔥%d", m.title, m.state.Level, bar, m.state.Points, m.state.Streak)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Missions"}
	lines = append(lines, renderMissions(m.state.DailyMissions)...)
	lines = append(lines, renderMissions(m.state.WeeklyMissions)...)
	lines = append(lines, "")
	if len(m.goals) > 0 {
		lines = append(lines, "Goals")
		now := time.Now()
		for _, g := range m.goals {
			lines = append(lines, fmt.Sprintf("- D-%d %s", g.DaysLeft(now), g.Title))
		}
		lines = append(lines, "")
	}
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- a: check in")
	lines = append(lines, "- g: claim mission")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func renderMissions(list []progress.Mission) []string {
	var out []string
	for _, mi := range list {
		mark := " "
		switch {
		case mi.Claimed:
			mark = "✓"
		case mi.Completed:
			mark = "!"
		}
		out = append(out, fmt.Sprintf("[%s] %s %d/%d", mark, mi.ID, mi.Progress, mi.Total))
	}
	return out
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Today · "+m.today)
	if len(m.tasks) == 0 {
		out = append(out, "(nothing planned)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s #%d %s", cursor, mark, t.ID, t.Title)
		if t.StartTime != "" {
			line += " " + t.StartTime
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
