package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StudyQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBook    = "📚"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFlame   = "🔥"
	IconTarget  = "🎯"
	IconCrown   = "👑"
	IconGift    = "🎁"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
	IconCal     = "📅"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// XPBar renders a fixed-width progress bar for the current level.
func XPBar(current, required, width int) string {
	if width < 4 {
		width = 10
	}
	if required < 1 {
		required = 1
	}
	filled := current * width / required
	if filled > width {
		filled = width
	}
	return Good.Render(strings.Repeat("█", filled)) + Dim.Render(strings.Repeat("░", width-filled))
}

// RarityText colors a badge rarity name.
func RarityText(rarity string) string {
	switch strings.ToLower(strings.TrimSpace(rarity)) {
	case "common":
		return Muted.Render(rarity)
	case "uncommon":
		return Good.Render(rarity)
	case "rare":
		return H2.Render(rarity)
	case "epic":
		return Title.Render(rarity)
	case "legendary":
		return Gold.Render(rarity)
	default:
		return Muted.Render(rarity)
	}
}

// MissionStatus renders claim state the way task status is shown elsewhere.
func MissionStatus(completed, claimed bool) string {
	switch {
	case claimed:
		return Muted.Render("claimed")
	case completed:
		return Gold.Render("claimable")
	default:
		return Warn.Render("in progress")
	}
}
