package discord

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/spinwheel/internal/models"
	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x00ff00
	colorError   = 0xff0000

	// wheelWindow is how many segments are listed around the pointer
	wheelWindow = 9

	// historyLines caps the entries listed in the history embed
	historyLines = 10
)

// colorEmoji maps a "#RRGGBB" palette color to the closest square emoji
func colorEmoji(hex string) string {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return "⬜"
	}

	r := float64((v>>16)&0xff) / 255
	g := float64((v>>8)&0xff) / 255
	b := float64(v&0xff) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	if maxC-minC < 0.1 {
		return "⬜"
	}

	var hue float64
	switch maxC {
	case r:
		hue = math.Mod((g-b)/(maxC-minC), 6)
	case g:
		hue = (b-r)/(maxC-minC) + 2
	default:
		hue = (r-g)/(maxC-minC) + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}

	switch {
	case hue < 20 || hue >= 330:
		return "🟥"
	case hue < 45:
		return "🟧"
	case hue < 70:
		return "🟨"
	case hue < 165:
		return "🟩"
	case hue < 255:
		return "🟦"
	default:
		return "🟪"
	}
}

// renderWheel draws a frame as text: the segments around the pointer with
// the selected one marked. glow is the highlighted segment or -1.
func renderWheel(frame *wheel.Frame, glow int) string {
	var b strings.Builder

	switch {
	case glow >= 0:
		b.WriteString("🎯 **Landing...**\n")
	case frame.Spinning:
		b.WriteString("🎡 **Spinning...**\n")
	default:
		b.WriteString("🎡 **Roulette**\n")
	}

	n := len(frame.Options)
	if n == 0 {
		b.WriteString("_No options enabled. Use `/roulette edit` to add some._")
		return b.String()
	}

	selected := frame.Selected()
	segments := frame.Segments()

	window := wheelWindow
	if n < window {
		window = n
	}
	start := selected - window/2
	if n <= wheelWindow {
		start = 0
	}

	for k := 0; k < window; k++ {
		index := ((start+k)%n + n) % n
		seg := segments[index]

		marker := "　"
		text := seg.Text
		if index == selected {
			marker = "▶"
			text = "**" + text + "**"
			if index == glow {
				text = "✨ " + text + " ✨"
			}
		}
		fmt.Fprintf(&b, "%s %s %s\n", marker, colorEmoji(seg.Color), text)
	}

	if n > window {
		fmt.Fprintf(&b, "_…and %d more_\n", n-window)
	}

	return strings.TrimRight(b.String(), "\n")
}

// wheelComponents is the Spin button row, disabled while a spin runs
func wheelComponents(spinning bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Spin",
					Style:    discordgo.PrimaryButton,
					CustomID: customID(roulettePrefix, actionSpin),
					Disabled: spinning,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎡",
					},
				},
			},
		},
	}
}

// renderOptions lists every option with its enabled state and position
func renderOptions(options []models.Option) string {
	if len(options) == 0 {
		return "_No options yet._"
	}

	var b strings.Builder
	for i, option := range options {
		mark := "⬜"
		if option.Enabled {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", mark, i+1, option.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderHistory builds the history embed: recent results then counts
func renderHistory(entries []*models.HistoryEntry, stats map[string]int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Roulette history",
		Color: colorSuccess,
	}

	if len(entries) == 0 {
		embed.Description = "No spins yet."
		return embed
	}

	var recent strings.Builder
	for i, entry := range entries {
		if i == historyLines {
			fmt.Fprintf(&recent, "_…and %d more_\n", len(entries)-historyLines)
			break
		}
		fmt.Fprintf(&recent, "`%s` **%s**\n", entry.Time, entry.Result)
	}

	type count struct {
		result string
		n      int
	}
	counts := make([]count, 0, len(stats))
	for result, n := range stats {
		counts = append(counts, count{result, n})
	}
	sort.Slice(counts, func(a, b int) bool {
		if counts[a].n != counts[b].n {
			return counts[a].n > counts[b].n
		}
		return counts[a].result < counts[b].result
	})

	var totals strings.Builder
	for _, c := range counts {
		fmt.Fprintf(&totals, "**%s**: %d\n", c.result, c.n)
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:   "Recent",
			Value:  recent.String(),
			Inline: true,
		},
		{
			Name:   "Counts",
			Value:  totals.String(),
			Inline: true,
		},
	}
	return embed
}

// undoMessage reports the history entry an undo removed, if any
func undoMessage(entry *models.HistoryEntry) string {
	if entry == nil {
		return "The history is already empty."
	}
	return fmt.Sprintf("Removed **%s** (%s) from the history.", entry.Result, entry.Time)
}

// renderAssignments lists the revealed entries; highlight is the entry
// currently marked, or -1
func renderAssignments(revealed []models.Assignment, total, highlight int) string {
	var b strings.Builder
	b.WriteString("🎲 **Role assignment**\n")

	for i, a := range revealed {
		marker := "▫️"
		if i == highlight {
			marker = "👉"
		}
		fmt.Fprintf(&b, "%s **%s** → %s\n", marker, a.Role, a.Username)
	}

	if hidden := total - len(revealed); hidden > 0 {
		fmt.Fprintf(&b, "_%d to go…_\n", hidden)
	}

	return strings.TrimRight(b.String(), "\n")
}

// assignComponents is the Assign again button row
func assignComponents(processing bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Assign again",
					Style:    discordgo.SuccessButton,
					CustomID: customID(assignPrefix, actionRun),
					Disabled: processing,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎲",
					},
				},
			},
		},
	}
}
