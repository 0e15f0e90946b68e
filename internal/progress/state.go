package progress

// Storage keys. These match the shapes documented for the persistence
// interface; values are JSON-encoded strings.
const (
	keyPoints         = "@user_points"
	keyXP             = "@user_xp"
	keyLevel          = "@user_level"
	keyStreak         = "@attendance_streak"
	keyLastCheckDate  = "@last_check_date"
	keyCheckedToday   = "@checked_today"
	keyAttendance     = "@attendance_data"
	keyEarnedBadges   = "@earned_badges"
	keyActiveTitle    = "@active_title"
	keySlots          = "@dday_slots_purchased"
	keyUnusedSlots    = "@unused_dday_slots"
	keyCompletedTasks = "@completed_tasks_count"
	keyMorningTasks   = "@morning_tasks_count"
	keyEveningTasks   = "@evening_tasks_count"
	keyPerfectDays    = "@perfect_days_count"
	keyDailyMissions  = "DAILY_MISSIONS_KEY"
	keyWeeklyMissions = "WEEKLY_MISSIONS_KEY"
	keyDailyReset     = "@daily_missions_reset"
	keyWeeklyReset    = "@weekly_missions_reset"
	keyWeekCategories = "@weekly_categories"
)

// Point history categories.
const (
	CategoryTask       = "task"
	CategoryTaskUndo   = "task_undo"
	CategoryAttendance = "attendance"
	CategoryMission    = "mission"
	CategoryBonus      = "mission_bonus"
	CategoryLevelUp    = "levelup"
	CategoryDDay       = "dday"
)

// State is the full progress snapshot held in memory and persisted
// key-by-key after each mutation.
type State struct {
	Points int
	// XP is reset-relative to the current level, always < RequiredXP(Level)
	// at rest.
	XP    int
	Level int

	// Streak is a cache; Attendance is the authoritative record.
	Streak        int
	LastCheckDate string
	CheckedToday  bool
	Attendance    map[string]bool

	// Slots is total owned D-Day slots (pricing input); UnusedSlots is
	// purchased but not yet bound to a goal. UnusedSlots <= Slots.
	Slots       int
	UnusedSlots int

	EarnedBadges []string
	ActiveTitle  string

	CompletedTasks int
	MorningTasks   int
	EveningTasks   int
	PerfectDays    int

	DailyMissions  []Mission
	WeeklyMissions []Mission
}

// Unlock kinds.
const (
	UnlockBadge = "badge"
	UnlockTitle = "title"
)

// Unlock is a recent badge/title unlock queued for the UI.
type Unlock struct {
	Type        string
	ID          string
	Name        string
	Icon        string
	Description string
	Rarity      string
}

func defaultState() State {
	return State{
		Points:       50,
		XP:           0,
		Level:        1,
		Slots:        1,
		Attendance:   map[string]bool{},
		EarnedBadges: []string{"level_1"},
		ActiveTitle:  "beginner",
	}
}
