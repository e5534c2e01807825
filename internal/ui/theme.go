package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"misterMoAPI/internal/tier"
)

const (
	IconSun     = "☀️"
	IconDay     = "🌤️"
	IconMoon    = "🌙"
	IconDone    = "✅"
	IconTodo    = "⬜"
	IconLock    = "🔒"
	IconScale   = "⚖️"
	IconWater   = "💧"
	IconFire    = "🔥"
	IconBook    = "📖"
	IconVideo   = "🎬"
	IconCamera  = "📸"
	IconRuler   = "📏"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSparkle = "✨"
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

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
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

// TaskLine renders one checklist row. Subtasks are indented by depth.
func TaskLine(id, title string, done bool, depth int) string {
	indent := strings.Repeat("  ", depth)
	if done {
		return fmt.Sprintf("%s%s %s %s", indent, IconDone, Muted.Render(title), Muted.Render("("+id+")"))
	}
	return fmt.Sprintf("%s%s %s %s", indent, IconTodo, title, Muted.Render("("+id+")"))
}

// ProgressBar draws pct (0..100) as a fixed width bar.
func ProgressBar(pct, width int) string {
	if width <= 0 {
		width = 20
	}
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	bar := Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d%%", bar, pct)
}

func TierBadge(t tier.Tier) string {
	switch t {
	case tier.Premium:
		return Gold.Render("PREMIUM")
	case tier.Advanced:
		return H2.Render("ADVANCED")
	default:
		return Muted.Render("BASIC")
	}
}

// Locked marks gated content with the tier that unlocks it.
func Locked(required tier.Tier) string {
	return Warn.Render(IconLock + " requires " + string(required))
}

func BlockIcon(block string) string {
	switch block {
	case "morning":
		return IconSun
	case "day":
		return IconDay
	case "evening":
		return IconMoon
	default:
		return IconSparkle
	}
}
