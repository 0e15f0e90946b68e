package progress

// Rarity classifies badges for display and sorting.
type Rarity struct {
	Name       string
	Multiplier float64
}

var (
	RarityCommon    = Rarity{Name: "Common", Multiplier: 1}
	RarityUncommon  = Rarity{Name: "Uncommon", Multiplier: 1.2}
	RarityRare      = Rarity{Name: "Rare", Multiplier: 1.5}
	RarityEpic      = Rarity{Name: "Epic", Multiplier: 2}
	RarityLegendary = Rarity{Name: "Legendary", Multiplier: 3}
)

// Badge is a static catalog entry. XPBonus is granted once, on award.
type Badge struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Level       int
	Rarity      Rarity
	XPBonus     int
}

// TitleRequirement gates a title on a level and/or a badge set. Zero level
// means no level gate; empty badge list means no badge gate.
type TitleRequirement struct {
	Level  int
	Badges []string
}

// Title is a cosmetic unlockable label. Exactly one is active at a time.
type Title struct {
	ID          string
	Name        string
	Requirement TitleRequirement
}

// AllBadges returns the full badge catalog. Keep IDs stable: earned sets in
// user storage reference them.
func AllBadges() []Badge {
	return []Badge{
		// Completion-count milestones.
		{ID: "first_complete", Name: "First Finish", Icon: "🎯", Description: "Complete your first task", Level: 1, Rarity: RarityCommon, XPBonus: 10},
		{ID: "five_complete", Name: "Steady Start", Icon: "⭐", Description: "Complete 5 tasks", Level: 2, Rarity: RarityCommon, XPBonus: 20},
		{ID: "ten_complete", Name: "Plan Achiever", Icon: "🏆", Description: "Complete 10 tasks", Level: 3, Rarity: RarityUncommon, XPBonus: 30},
		{ID: "twenty_complete", Name: "Persistent", Icon: "🥇", Description: "Complete 20 tasks", Level: 4, Rarity: RarityUncommon, XPBonus: 40},
		{ID: "thirty_complete", Name: "Lasting Drive", Icon: "🎖️", Description: "Complete 30 tasks", Level: 6, Rarity: RarityRare, XPBonus: 60},
		{ID: "fifty_complete", Name: "Productivity Master", Icon: "👑", Description: "Complete 50 tasks", Level: 5, Rarity: RarityRare, XPBonus: 100},
		{ID: "seventy_complete", Name: "Task Collector", Icon: "🏵️", Description: "Complete 70 tasks", Level: 7, Rarity: RarityRare, XPBonus: 140},
		{ID: "hundred_complete", Name: "Centurion", Icon: "🏅", Description: "Complete 100 tasks", Level: 8, Rarity: RarityEpic, XPBonus: 200},
		{ID: "two_hundred_complete", Name: "Double Centurion", Icon: "🎗️", Description: "Complete 200 tasks", Level: 9, Rarity: RarityEpic, XPBonus: 300},
		{ID: "five_hundred_complete", Name: "Legendary Finisher", Icon: "🎓", Description: "Complete 500 tasks", Level: 10, Rarity: RarityLegendary, XPBonus: 500},

		// Attendance streaks.
		{ID: "streak_3", Name: "Activity Champion", Icon: "🔥", Description: "3-day attendance streak", Level: 2, Rarity: RarityCommon, XPBonus: 15},
		{ID: "streak_5", Name: "Five In A Row", Icon: "🔥", Description: "5-day attendance streak", Level: 3, Rarity: RarityCommon, XPBonus: 25},
		{ID: "streak_7", Name: "Weekly Champion", Icon: "📅", Description: "7-day attendance streak", Level: 4, Rarity: RarityUncommon, XPBonus: 50},
		{ID: "streak_10", Name: "Ten In A Row", Icon: "🔥", Description: "10-day attendance streak", Level: 4, Rarity: RarityUncommon, XPBonus: 75},
		{ID: "streak_14", Name: "Fortnight Strong", Icon: "📊", Description: "14-day attendance streak", Level: 5, Rarity: RarityRare, XPBonus: 100},
		{ID: "streak_21", Name: "Three Weeks Running", Icon: "🔥🔥", Description: "21-day attendance streak", Level: 6, Rarity: RarityRare, XPBonus: 150},
		{ID: "streak_30", Name: "Month Of Fire", Icon: "🔥🔥", Description: "30-day attendance streak", Level: 7, Rarity: RarityEpic, XPBonus: 200},
		{ID: "streak_50", Name: "Fifty Straight", Icon: "🔥🔥", Description: "50-day attendance streak", Level: 8, Rarity: RarityEpic, XPBonus: 300},
		{ID: "streak_75", Name: "Seventy-Five Straight", Icon: "🔥🔥🔥", Description: "75-day attendance streak", Level: 9, Rarity: RarityEpic, XPBonus: 400},
		{ID: "streak_100", Name: "Unbreakable Will", Icon: "🏆🔥", Description: "100-day attendance streak", Level: 10, Rarity: RarityLegendary, XPBonus: 500},

		// Time-of-day.
		{ID: "morning_person", Name: "Morning Person", Icon: "🌅", Description: "Complete 3 morning tasks", Level: 2, Rarity: RarityCommon, XPBonus: 20},
		{ID: "morning_master", Name: "Dawn Master", Icon: "☀️", Description: "Complete 10 morning tasks", Level: 4, Rarity: RarityUncommon, XPBonus: 40},
		{ID: "night_owl", Name: "Night Owl", Icon: "🌙", Description: "Complete 3 evening tasks", Level: 2, Rarity: RarityCommon, XPBonus: 20},
		{ID: "night_master", Name: "Ruler Of The Night", Icon: "🌃", Description: "Complete 10 evening tasks", Level: 4, Rarity: RarityUncommon, XPBonus: 40},

		// Perfect days.
		{ID: "perfect_day", Name: "Perfect Day", Icon: "✨", Description: "Complete every task in a day", Level: 3, Rarity: RarityUncommon, XPBonus: 30},
		{ID: "perfect_week", Name: "Perfect Week", Icon: "🌈", Description: "A full week of perfect days", Level: 6, Rarity: RarityRare, XPBonus: 150},
		{ID: "perfect_month", Name: "Perfect Month", Icon: "🌟", Description: "A full month of perfect days", Level: 10, Rarity: RarityLegendary, XPBonus: 500},

		// Special time badges.
		{ID: "early_bird", Name: "Early Bird", Icon: "🐦", Description: "Complete 5 tasks starting before 06:00", Level: 3, Rarity: RarityUncommon, XPBonus: 40},
		{ID: "midnight_runner", Name: "Midnight Runner", Icon: "🌠", Description: "Complete 5 tasks starting after 22:00", Level: 3, Rarity: RarityUncommon, XPBonus: 40},

		// Level badges.
		{ID: "level_1", Name: "Level 1", Icon: "🌱", Description: "Reach level 1", Level: 1, Rarity: RarityCommon, XPBonus: 10},
		{ID: "level_2", Name: "Level 2", Icon: "🌿", Description: "Reach level 2", Level: 2, Rarity: RarityCommon, XPBonus: 20},
		{ID: "level_3", Name: "Level 3", Icon: "🍀", Description: "Reach level 3", Level: 3, Rarity: RarityCommon, XPBonus: 30},
		{ID: "level_4", Name: "Level 4", Icon: "🌴", Description: "Reach level 4", Level: 4, Rarity: RarityCommon, XPBonus: 40},
		{ID: "level_5", Name: "Level 5", Icon: "🚀", Description: "Reach level 5", Level: 5, Rarity: RarityUncommon, XPBonus: 50},
		{ID: "level_7", Name: "Level 7", Icon: "🌲", Description: "Reach level 7", Level: 7, Rarity: RarityUncommon, XPBonus: 70},
		{ID: "level_10", Name: "Level 10", Icon: "💫", Description: "Reach level 10", Level: 10, Rarity: RarityRare, XPBonus: 100},
		{ID: "level_15", Name: "Level 15", Icon: "🔆", Description: "Reach level 15", Level: 15, Rarity: RarityRare, XPBonus: 150},
		{ID: "level_20", Name: "Level 20", Icon: "⚡", Description: "Reach level 20", Level: 20, Rarity: RarityEpic, XPBonus: 200},
		{ID: "level_25", Name: "Level 25", Icon: "🌟", Description: "Reach level 25", Level: 25, Rarity: RarityEpic, XPBonus: 250},
		{ID: "level_30", Name: "Level 30", Icon: "💎", Description: "Reach level 30", Level: 30, Rarity: RarityEpic, XPBonus: 300},
		{ID: "level_35", Name: "Level 35", Icon: "🏮", Description: "Reach level 35", Level: 35, Rarity: RarityEpic, XPBonus: 350},
		{ID: "level_40", Name: "Level 40", Icon: "🔮", Description: "Reach level 40", Level: 40, Rarity: RarityEpic, XPBonus: 400},
		{ID: "level_50", Name: "Level 50", Icon: "🌠", Description: "Reach level 50", Level: 50, Rarity: RarityLegendary, XPBonus: 500},
		{ID: "level_60", Name: "Level 60", Icon: "✨", Description: "Reach level 60", Level: 60, Rarity: RarityLegendary, XPBonus: 600},
		{ID: "level_70", Name: "Level 70", Icon: "🌠", Description: "Reach level 70", Level: 70, Rarity: RarityLegendary, XPBonus: 700},
		{ID: "level_80", Name: "Level 80", Icon: "🔱", Description: "Reach level 80", Level: 80, Rarity: RarityLegendary, XPBonus: 800},
		{ID: "level_90", Name: "Level 90", Icon: "⚜️", Description: "Reach level 90", Level: 90, Rarity: RarityLegendary, XPBonus: 900},
		{ID: "level_100", Name: "Level 100", Icon: "👑✨", Description: "Reach level 100", Level: 100, Rarity: RarityLegendary, XPBonus: 1000},

		// Milestone level badges, awarded alongside the plain level badge.
		{ID: "milestone_level_25", Name: "Quarter Century", Icon: "🌓", Description: "Level 25: the journey takes shape", Level: 25, Rarity: RarityRare, XPBonus: 250},
		{ID: "milestone_level_50", Name: "Half Century", Icon: "🌗", Description: "Level 50: halfway to the summit", Level: 50, Rarity: RarityEpic, XPBonus: 500},
		{ID: "milestone_level_75", Name: "Three Quarters", Icon: "🌖", Description: "Level 75: the peak is in sight", Level: 75, Rarity: RarityLegendary, XPBonus: 750},
		{ID: "milestone_level_100", Name: "Master Of The Century", Icon: "🌕✨", Description: "Level 100: true mastery", Level: 100, Rarity: RarityLegendary, XPBonus: 1500},
	}
}

// FindBadge looks up a catalog entry by id.
func FindBadge(id string) (Badge, bool) {
	for _, b := range AllBadges() {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// AllTitles returns the title catalog, ordered by ascending level gate.
func AllTitles() []Title {
	return []Title{
		{ID: "beginner", Name: "Novice Planner", Requirement: TitleRequirement{Level: 1}},
		{ID: "novice_planner", Name: "Apprentice Scheduler", Requirement: TitleRequirement{Level: 3}},
		{ID: "junior_planner", Name: "Junior Planner", Requirement: TitleRequirement{Level: 5}},
		{ID: "rising_planner", Name: "Rising Planner", Requirement: TitleRequirement{Level: 7}},
		{ID: "rising_star", Name: "Rising Star", Requirement: TitleRequirement{Level: 7}},
		{ID: "steady", Name: "Steady Planner", Requirement: TitleRequirement{Level: 10}},
		{ID: "dedicated", Name: "Dedicated Planner", Requirement: TitleRequirement{Level: 15}},
		{ID: "skilled_planner", Name: "Skilled Planner", Requirement: TitleRequirement{Level: 15}},
		{ID: "master", Name: "Schedule Master", Requirement: TitleRequirement{Level: 20}},
		{ID: "expert_scheduler", Name: "Schedule Expert", Requirement: TitleRequirement{Level: 25}},
		{ID: "elite", Name: "Elite Planner", Requirement: TitleRequirement{Level: 30}},
		{ID: "scheduling_virtuoso", Name: "Scheduling Virtuoso", Requirement: TitleRequirement{Level: 35}},
		{ID: "productive_genius", Name: "Productive Genius", Requirement: TitleRequirement{Level: 45}},
		{ID: "legendary", Name: "Legendary Planner", Requirement: TitleRequirement{Level: 50}},
		{ID: "time_wizard", Name: "Time Wizard", Requirement: TitleRequirement{Level: 60}},
		{ID: "planning_guru", Name: "Planning Guru", Requirement: TitleRequirement{Level: 70}},
		{ID: "productivity_sage", Name: "Productivity Sage", Requirement: TitleRequirement{Level: 80}},
		{ID: "schedule_deity", Name: "Deity Of Schedules", Requirement: TitleRequirement{Level: 90}},
		{ID: "mythic", Name: "Mythic Planner", Requirement: TitleRequirement{Level: 100}},

		// Badge-gated titles.
		{ID: "early_riser", Name: "Early Riser", Requirement: TitleRequirement{Badges: []string{"early_bird"}}},
		{ID: "night_wanderer", Name: "Night Wanderer", Requirement: TitleRequirement{Badges: []string{"night_master"}}},
		{ID: "perfectionist", Name: "Perfectionist", Requirement: TitleRequirement{Badges: []string{"perfect_week"}}},
		{ID: "flame_keeper", Name: "Flame Keeper", Requirement: TitleRequirement{Badges: []string{"streak_30"}}},
		{ID: "grand_achiever", Name: "Grand Achiever", Requirement: TitleRequirement{Badges: []string{"hundred_complete"}}},

		// Compound titles.
		{ID: "balanced_master", Name: "Master Of Balance", Requirement: TitleRequirement{Level: 25, Badges: []string{"morning_master", "night_master"}}},
		{ID: "master_of_consistency", Name: "Master Of Consistency", Requirement: TitleRequirement{Level: 30, Badges: []string{"streak_21", "perfect_week"}}},
		{ID: "time_lord", Name: "Lord Of Time", Requirement: TitleRequirement{Level: 30, Badges: []string{"perfect_week", "streak_30"}}},
		{ID: "ultimate_achiever", Name: "Ultimate Achiever", Requirement: TitleRequirement{Level: 40, Badges: []string{"streak_30", "hundred_complete"}}},
		{ID: "productivity_wizard", Name: "Productivity Wizard", Requirement: TitleRequirement{Level: 50, Badges: []string{"perfect_month", "fifty_complete"}}},
		{ID: "legend", Name: "Legend", Requirement: TitleRequirement{Level: 50, Badges: []string{"perfect_month", "streak_100"}}},
	}
}

// FindTitle looks up a title by id.
func FindTitle(id string) (Title, bool) {
	for _, t := range AllTitles() {
		if t.ID == id {
			return t, true
		}
	}
	return Title{}, false
}

// TitleBadgeID is the synthetic earned-badge marker recorded when a title
// unlocks.
func TitleBadgeID(titleID string) string {
	return "title_" + titleID
}
