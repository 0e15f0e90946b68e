package progress

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"studyquest/internal/storage"
)

// tuesday is a plain weekday morning: no time-of-day, weekend or streak
// bonus applies, so the reward multiplier is exactly 1.
var tuesday = time.Date(2026, time.January, 6, 10, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := storage.Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	s := NewStore(storage.NewKV(db), storage.NewHistoryRepo(db), nil, nil)
	s.now = func() time.Time { return tuesday }
	s.luck = func() float64 { return 0.99 }
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestRequiredXPMonotonic(t *testing.T) {
	prev := 0
	for level := 1; level <= 100; level++ {
		got := RequiredXP(level)
		if got <= prev {
			t.Fatalf("RequiredXP(%d)=%d, not above RequiredXP(%d)=%d", level, got, level-1, prev)
		}
		prev = got
	}
	if got := RequiredXP(1); got != 110 {
		t.Fatalf("RequiredXP(1)=%d, want 110", got)
	}
}

func TestTaskXP(t *testing.T) {
	cases := []struct {
		name string
		task TaskInfo
		want int
	}{
		{"plain", TaskInfo{StartTime: "10:00"}, 20},
		{"early morning", TaskInfo{StartTime: "06:30"}, 30},
		{"late night", TaskInfo{StartTime: "22:15"}, 25},
		{"easy overrides base", TaskInfo{StartTime: "10:00", Difficulty: "easy"}, 15},
		{"hard", TaskInfo{StartTime: "10:00", Difficulty: "hard"}, 40},
		{"two hour block", TaskInfo{StartTime: "10:00", EndTime: "12:00"}, 30},
		{"four hour block", TaskInfo{StartTime: "10:00", EndTime: "14:00"}, 40},
		{"malformed time", TaskInfo{StartTime: "soon"}, 20},
	}
	for _, tc := range cases {
		if got := TaskXP(tc.task); got != tc.want {
			t.Fatalf("%s: TaskXP=%d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestLevelUpConservation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	required := RequiredXP(1)
	s.AddXP(ctx, required+40, "test")

	st := s.State()
	if st.Level != 2 {
		t.Fatalf("level=%d, want 2", st.Level)
	}
	if st.XP != 40 {
		t.Fatalf("xp=%d, want 40 (overflow carried)", st.XP)
	}
	// Level-up grants newLevel*20 points at multiplier 1.
	if st.Points != 50+40 {
		t.Fatalf("points=%d, want 90", st.Points)
	}
	if !s.hasBadge("level_2") {
		t.Fatalf("level_2 badge not awarded")
	}
}

func TestMultiLevelUpInOneCall(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	amount := RequiredXP(1) + RequiredXP(2) + 5
	s.AddXP(ctx, amount, "test")

	st := s.State()
	if st.Level != 3 {
		t.Fatalf("level=%d, want 3", st.Level)
	}
	if st.XP != 5 {
		t.Fatalf("xp=%d, want 5", st.XP)
	}
	if st.XP >= RequiredXP(st.Level) {
		t.Fatalf("xp=%d not below RequiredXP(%d)=%d", st.XP, st.Level, RequiredXP(st.Level))
	}
}

func TestDeductXPFloorsAtZero(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.AddXP(ctx, 30, "test")
	s.DeductXP(ctx, 100, "undo")

	st := s.State()
	if st.XP != 0 {
		t.Fatalf("xp=%d, want 0", st.XP)
	}
	if st.Level != 1 {
		t.Fatalf("level=%d, want 1 (no level-down)", st.Level)
	}
}

func TestDeductPointsGuard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if s.DeductPoints(ctx, 1000, "too much", CategoryDDay) {
		t.Fatalf("deduct beyond balance succeeded")
	}
	if got := s.State().Points; got != 50 {
		t.Fatalf("points=%d, want 50 unchanged", got)
	}

	if !s.DeductPoints(ctx, 20, "ok", CategoryDDay) {
		t.Fatalf("valid deduct failed")
	}
	if got := s.State().Points; got != 30 {
		t.Fatalf("points=%d, want 30", got)
	}
}

func TestDynamicRewardBonuses(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Saturday 06:00 with a lucky roll stacks every bonus except streak:
	// 1 + 0.3 (early) + 0.15 (weekend) + 0.5 (lucky) = 1.95.
	s.now = func() time.Time { return time.Date(2026, time.January, 10, 6, 0, 0, 0, time.Local) }
	s.luck = func() float64 { return 0.0 }

	awarded, ok := s.AddPoints(ctx, 100, "test", CategoryBonus)
	if !ok {
		t.Fatalf("AddPoints failed")
	}
	if awarded != 195 {
		t.Fatalf("awarded=%d, want 195", awarded)
	}
}

func TestDynamicRewardNightWindow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// The late-night bonus covers 21:00 through 04:59 inclusive.
	s.now = func() time.Time { return time.Date(2026, time.January, 6, 4, 30, 0, 0, time.Local) }
	awarded, _ := s.AddPoints(ctx, 100, "test", CategoryBonus)
	if awarded != 120 {
		t.Fatalf("awarded at 04:30=%d, want 120", awarded)
	}

	// 05:00 rolls over into the early-morning bonus instead.
	s.now = func() time.Time { return time.Date(2026, time.January, 6, 5, 0, 0, 0, time.Local) }
	awarded, _ = s.AddPoints(ctx, 100, "test", CategoryBonus)
	if awarded != 130 {
		t.Fatalf("awarded at 05:00=%d, want 130", awarded)
	}
}

func TestDynamicRewardStreakCap(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.state.Streak = 30 // 0.05*30 capped at +0.5
	awarded, _ := s.AddPoints(ctx, 100, "test", CategoryBonus)
	if awarded != 150 {
		t.Fatalf("awarded=%d, want 150", awarded)
	}
}

func TestNegativePointsBypassMultiplier(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.luck = func() float64 { return 0.0 } // lucky roll must not apply
	awarded, _ := s.AddPoints(ctx, -10, "undo", CategoryTaskUndo)
	if awarded != -10 {
		t.Fatalf("awarded=%d, want -10", awarded)
	}

	// Negative credits land in history as spend entries.
	entries, err := s.history.List(ctx, 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != storage.HistorySpend || entries[0].Amount != -10 {
		t.Fatalf("history entry=%+v, want spend -10", entries)
	}
}

func TestCalculateStreak(t *testing.T) {
	day := func(offset int) string {
		return tuesday.AddDate(0, 0, offset).Format("2006-01-02")
	}

	if got := CalculateStreak(map[string]bool{}, tuesday); got != 0 {
		t.Fatalf("empty streak=%d, want 0", got)
	}

	att := map[string]bool{day(0): true, day(-1): true, day(-2): true}
	if got := CalculateStreak(att, tuesday); got != 3 {
		t.Fatalf("streak=%d, want 3", got)
	}

	// A gap two days back breaks the run.
	att = map[string]bool{day(0): true, day(-2): true}
	if got := CalculateStreak(att, tuesday); got != 1 {
		t.Fatalf("gapped streak=%d, want 1", got)
	}

	// Today unchecked: the streak is 0 even when a run ended yesterday.
	att = map[string]bool{day(-1): true, day(-2): true}
	if got := CalculateStreak(att, tuesday); got != 0 {
		t.Fatalf("streak with today unmarked=%d, want 0", got)
	}
}

func TestCheckAttendanceIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if !s.CheckAttendance(ctx) {
		t.Fatalf("first checkin failed")
	}
	st := s.State()
	if st.Streak != 1 {
		t.Fatalf("streak=%d, want 1", st.Streak)
	}
	if st.Points != 55 { // day-1 reward at multiplier 1
		t.Fatalf("points=%d, want 55", st.Points)
	}
	if st.XP != 10 {
		t.Fatalf("xp=%d, want 10", st.XP)
	}
	if !st.CheckedToday {
		t.Fatalf("CheckedToday=false after checkin")
	}

	if s.CheckAttendance(ctx) {
		t.Fatalf("second checkin same day succeeded")
	}
	again := s.State()
	if again.Points != st.Points || again.XP != st.XP || again.Streak != st.Streak {
		t.Fatalf("second checkin mutated state: %+v vs %+v", again, st)
	}
}

func TestStreakMilestoneBadge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Two prior days already attended; today's checkin makes it 3.
	for i := 1; i <= 2; i++ {
		s.state.Attendance[tuesday.AddDate(0, 0, -i).Format("2006-01-02")] = true
	}
	s.CheckAttendance(ctx)

	if got := s.State().Streak; got != 3 {
		t.Fatalf("streak=%d, want 3", got)
	}
	if !s.hasBadge("streak_3") {
		t.Fatalf("streak_3 badge not awarded")
	}
}

func TestStreakBadgeExactMatchOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Restored attendance jumping straight to a 4-day streak skips the
	// day-3 milestone; no streak badge is back-awarded.
	for i := 1; i <= 3; i++ {
		s.state.Attendance[tuesday.AddDate(0, 0, -i).Format("2006-01-02")] = true
	}
	s.CheckAttendance(ctx)

	if got := s.State().Streak; got != 4 {
		t.Fatalf("streak=%d, want 4", got)
	}
	if s.hasBadge("streak_3") {
		t.Fatalf("streak_3 awarded off its exact milestone day")
	}
}

func TestAwardBadgeMonotonic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if !s.AwardBadge(ctx, "first_complete") {
		t.Fatalf("first award failed")
	}
	xp := s.State().XP
	if xp != 10 {
		t.Fatalf("xp=%d, want 10 (badge bonus)", xp)
	}

	if s.AwardBadge(ctx, "first_complete") {
		t.Fatalf("second award of same badge succeeded")
	}
	if got := s.State().XP; got != xp {
		t.Fatalf("xp changed on duplicate award: %d vs %d", got, xp)
	}

	if s.AwardBadge(ctx, "no_such_badge") {
		t.Fatalf("unknown badge awarded")
	}
}

func TestTitleUnlockByLevel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Enough XP for level 3 unlocks the level-3 title.
	s.AddXP(ctx, RequiredXP(1)+RequiredXP(2)+1, "test")

	if !s.hasBadge(TitleBadgeID("novice_planner")) {
		t.Fatalf("level-3 title not unlocked")
	}
	if !s.SetActiveTitle(ctx, "novice_planner") {
		t.Fatalf("SetActiveTitle rejected an unlocked title")
	}
	if got := s.CurrentTitle().ID; got != "novice_planner" {
		t.Fatalf("active title=%q, want novice_planner", got)
	}

	if s.SetActiveTitle(ctx, "mythic") {
		t.Fatalf("locked title accepted")
	}
}

func TestRewardTaskCompletion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	reward, ok := s.RewardTaskCompletion(ctx, TaskInfo{
		Title:          "Algebra drill",
		StartTime:      "10:00",
		Category:       "math",
		TodayCompleted: 1,
	})
	if !ok {
		t.Fatalf("RewardTaskCompletion failed")
	}
	if reward.Points != 5 {
		t.Fatalf("points reward=%d, want 5", reward.Points)
	}
	if reward.XP != 20 {
		t.Fatalf("xp reward=%d, want 20", reward.XP)
	}

	st := s.State()
	if st.CompletedTasks != 1 {
		t.Fatalf("completedTasks=%d, want 1", st.CompletedTasks)
	}
	if st.MorningTasks != 1 {
		t.Fatalf("morningTasks=%d, want 1", st.MorningTasks)
	}
	if !s.hasBadge("first_complete") {
		t.Fatalf("first_complete badge not awarded")
	}
	// Task XP 20 plus the first_complete bonus of 10.
	if st.XP != 30 {
		t.Fatalf("xp=%d, want 30", st.XP)
	}
}

func TestMorningBadgeAtThree(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s.RewardTaskCompletion(ctx, TaskInfo{Title: "read", StartTime: "08:30", TodayCompleted: i + 1})
	}
	if !s.hasBadge("morning_person") {
		t.Fatalf("morning_person not awarded at 3 morning tasks")
	}
}

func TestUndoTaskCompletionFloors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	task := TaskInfo{Title: "Essay", StartTime: "10:00", TodayCompleted: 1}
	s.RewardTaskCompletion(ctx, task)
	badges := len(s.State().EarnedBadges)

	s.UndoTaskCompletion(ctx, task)
	st := s.State()
	if st.CompletedTasks != 0 {
		t.Fatalf("completedTasks=%d, want 0", st.CompletedTasks)
	}
	if st.MorningTasks != 0 {
		t.Fatalf("morningTasks=%d, want 0", st.MorningTasks)
	}
	if len(st.EarnedBadges) != badges {
		t.Fatalf("undo revoked badges: %d vs %d", len(st.EarnedBadges), badges)
	}

	// A second undo must not push counters negative.
	s.UndoTaskCompletion(ctx, task)
	if got := s.State().CompletedTasks; got != 0 {
		t.Fatalf("completedTasks=%d after double undo, want 0", got)
	}
}

func TestMissionClaimGuard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before := s.State()
	if s.ClaimMissionReward(ctx, "triple_complete") {
		t.Fatalf("claimed an incomplete mission")
	}
	if s.ClaimMissionReward(ctx, "no_such_mission") {
		t.Fatalf("claimed an unknown mission")
	}
	after := s.State()
	if after.Points != before.Points || after.XP != before.XP {
		t.Fatalf("guarded claim mutated state")
	}
}

func TestMissionProgressAndClaim(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		s.CheckMissionProgress(ctx, ActivityTaskComplete, ActivityData{Hour: 10, CompletedToday: i})
	}

	var triple Mission
	for _, m := range s.State().DailyMissions {
		if m.ID == "triple_complete" {
			triple = m
		}
	}
	if !triple.Completed || triple.Progress != 3 {
		t.Fatalf("triple_complete=%+v, want completed 3/3", triple)
	}

	points := s.State().Points
	if !s.ClaimMissionReward(ctx, "triple_complete") {
		t.Fatalf("claim failed on a completed mission")
	}
	if got := s.State().Points; got != points+20 {
		t.Fatalf("points=%d, want %d", got, points+20)
	}

	if s.ClaimMissionReward(ctx, "triple_complete") {
		t.Fatalf("double claim succeeded")
	}
}

func TestDailyAllClearBonus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.CheckMissionProgress(ctx, ActivityTaskComplete, ActivityData{Hour: 7, CompletedToday: 1})
	s.CheckMissionProgress(ctx, ActivityTaskComplete, ActivityData{Hour: 10, CompletedToday: 2})
	s.CheckMissionProgress(ctx, ActivityTaskComplete, ActivityData{Hour: 10, CompletedToday: 3})
	s.CheckMissionProgress(ctx, ActivityAddTask, ActivityData{Hour: 19})
	s.CheckMissionProgress(ctx, ActivityAddTask, ActivityData{Hour: 20})

	for _, m := range s.State().DailyMissions {
		if !m.Completed {
			t.Fatalf("mission %s not completed: %+v", m.ID, m)
		}
	}

	start := s.State().Points
	for _, id := range []string{"morning_task", "triple_complete", "evening_plan"} {
		if !s.ClaimMissionReward(ctx, id) {
			t.Fatalf("claim %s failed", id)
		}
	}
	// Rewards 15+20+10 plus the 25-point all-clear bonus.
	if got := s.State().Points; got != start+70 {
		t.Fatalf("points=%d, want %d", got, start+70)
	}
}

func TestMissionResetOnNewDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.CheckMissionProgress(ctx, ActivityTaskComplete, ActivityData{Hour: 10, CompletedToday: 2})

	s.now = func() time.Time { return tuesday.AddDate(0, 0, 1) }
	s.CheckResets(ctx)

	for _, m := range s.State().DailyMissions {
		if m.Progress != 0 || m.Completed || m.Claimed {
			t.Fatalf("mission %s not reset: %+v", m.ID, m)
		}
	}
}

func TestSlotPurchase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Starting balance 50 is below the 100-point price.
	if s.PurchaseDDaySlot(ctx) {
		t.Fatalf("purchase succeeded without funds")
	}
	st := s.State()
	if st.Points != 50 || st.UnusedSlots != 0 {
		t.Fatalf("failed purchase mutated state: %+v", st)
	}

	s.state.Points = 200
	if !s.PurchaseDDaySlot(ctx) {
		t.Fatalf("funded purchase failed")
	}
	st = s.State()
	if st.Points != 100 {
		t.Fatalf("points=%d, want 100", st.Points)
	}
	if st.Slots != 2 || st.UnusedSlots != 1 {
		t.Fatalf("slots=%d unused=%d, want 2/1", st.Slots, st.UnusedSlots)
	}

	s.HandleGoalAdded(ctx)
	if got := s.State().UnusedSlots; got != 0 {
		t.Fatalf("unused=%d after goal, want 0", got)
	}
	s.HandleGoalAdded(ctx)
	if got := s.State().UnusedSlots; got != 0 {
		t.Fatalf("unused went negative")
	}
}

func TestNextSlotPrice(t *testing.T) {
	cases := map[int]int{0: 100, 1: 100, 2: 150, 3: 200, 4: 400, 5: 500}
	for owned, want := range cases {
		if got := NextSlotPrice(owned); got != want {
			t.Fatalf("NextSlotPrice(%d)=%d, want %d", owned, got, want)
		}
	}
}

func TestPerfectDayOncePerDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if !s.HandleAllTasksCompleted(ctx, "") {
		t.Fatalf("first perfect day rejected")
	}
	if s.HandleAllTasksCompleted(ctx, "") {
		t.Fatalf("same date counted twice")
	}
	st := s.State()
	if st.PerfectDays != 1 {
		t.Fatalf("perfectDays=%d, want 1", st.PerfectDays)
	}
	if !s.hasBadge("perfect_day") {
		t.Fatalf("perfect_day badge not awarded")
	}
}

func TestLoadRestoresState(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	s := NewStore(storage.NewKV(db), storage.NewHistoryRepo(db), nil, nil)
	s.now = func() time.Time { return tuesday }
	s.luck = func() float64 { return 0.99 }
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.AddXP(ctx, RequiredXP(1)+7, "test")
	s.AwardBadge(ctx, "first_complete")
	s.CheckAttendance(ctx)
	want := s.State()
	_ = db.Close()

	db2, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()

	s2 := NewStore(storage.NewKV(db2), storage.NewHistoryRepo(db2), nil, nil)
	s2.now = func() time.Time { return tuesday }
	s2.luck = func() float64 { return 0.99 }
	if err := s2.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	got := s2.State()
	if got.Points != want.Points || got.XP != want.XP || got.Level != want.Level || got.Streak != want.Streak {
		t.Fatalf("reloaded state %+v, want %+v", got, want)
	}
	if len(got.EarnedBadges) != len(want.EarnedBadges) {
		t.Fatalf("badges lost on reload: %v vs %v", got.EarnedBadges, want.EarnedBadges)
	}
	if !got.CheckedToday {
		t.Fatalf("CheckedToday lost on reload")
	}
}
