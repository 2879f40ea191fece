package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-schedule-view/internal/animation"
	"github.com/i474232898/weather-schedule-view/internal/render"
	"github.com/i474232898/weather-schedule-view/internal/weather"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#9E9E9E"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#E0E0E0"))
	cityStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(weather.ColorDarkGray.Hex())).MarginTop(1)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#757575")).MarginTop(1)
)

var glyphs = map[string]string{
	weather.PathRing:      "◉",
	weather.PathRay:       "✶",
	weather.PathCloud:     "☁",
	weather.PathRain:      "╎",
	weather.PathSnowflake: "❄",
	weather.PathThunder:   "ϟ",
	weather.PathRainbow:   "◠",
}

// spinner frames approximate the sun's rotation, one per eighth of a turn.
var spinner = []string{"|", "/", "─", "\\", "|", "/", "─", "\\"}

func renderScene(scene render.Scene, width int) string {
	var b strings.Builder

	b.WriteString(renderTabs(scene))
	b.WriteString("\n")
	b.WriteString(cityStyle.Render(scene.State.City))
	b.WriteString("\n\n")

	switch scene.Layout {
	case render.LayoutLargeCard:
		if len(scene.Cards) > 0 {
			b.WriteString(renderLargeCard(scene.Cards[0]))
		}
	case render.LayoutGrid:
		b.WriteString(renderGrid(scene.Cards, width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ switch tab • 1-3 jump • q quit"))
	return b.String()
}

func renderTabs(scene render.Scene) string {
	selected := scene.State.Selected.Position()
	tabs := make([]string, len(scene.State.Tabs))
	for i, tab := range scene.State.Tabs {
		title := strings.ToUpper(tab.Title())
		if i == selected {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func cardStyle(c weather.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#805A46")).
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1).
		Width(width)
}

func renderLargeCard(card render.Card) string {
	w := card.Entry.Weather
	lines := []string{
		renderIllustration(card.Frame),
		card.Description,
		"",
		lipgloss.NewStyle().Bold(true).Render(w.Temperature.Current) +
			fmt.Sprintf("   ↑ %s  ↓ %s", w.Temperature.High, w.Temperature.Low),
		w.Descriptor.Label,
		"wind " + w.Wind,
	}
	if len(card.Entry.PartsOfDay) > 0 {
		hours := make([]string, len(card.Entry.PartsOfDay))
		for i, part := range card.Entry.PartsOfDay {
			hours[i] = part.Screen.Label() + " " + part.Weather.Temperature.Current
		}
		lines = append(lines, "", strings.Join(hours, "  "))
	}
	return cardStyle(w.Color, 40).Render(strings.Join(lines, "\n"))
}

func renderSmallCard(card render.Card) string {
	w := card.Entry.Weather
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(card.Label),
		renderIllustration(card.Frame),
		w.Temperature.Current,
		w.Descriptor.Label,
	}
	return cardStyle(w.Color, 16).Render(strings.Join(lines, "\n"))
}

// renderGrid lays small cards out two per row, or three on wide terminals.
func renderGrid(cards []render.Card, width int) string {
	perRow := 2
	if width >= 66 {
		perRow = 3
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		row := make([]string, 0, perRow)
		for _, card := range cards[i:end] {
			row = append(row, renderSmallCard(card))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderIllustration draws one glyph per shape, brightened by its alpha.
func renderIllustration(frame animation.Frame) string {
	var b strings.Builder
	for _, shape := range frame.Shapes {
		glyph, ok := glyphs[shape.Name]
		if !ok {
			glyph = "•"
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(glow(shape.Color, shape.Alpha)))
		b.WriteString(style.Render(glyph))
	}
	if frame.Progress.Rotation > 0 {
		i := int(frame.Progress.Rotation*float64(len(spinner))) % len(spinner)
		b.WriteString(" " + spinner[i])
	}
	return b.String()
}

// glow mixes c towards white by alpha, the way a coloured shadow lights up
// the shape it surrounds.
func glow(c weather.Color, alpha float64) string {
	alpha = math.Max(0, math.Min(1, alpha))
	mix := func(v uint32) uint32 {
		return v + uint32(math.Round(float64(255-v)*alpha))
	}
	r := mix(uint32(c) >> 16 & 0xFF)
	g := mix(uint32(c) >> 8 & 0xFF)
	bl := mix(uint32(c) & 0xFF)
	return fmt.Sprintf("#%02X%02X%02X", r, g, bl)
}
