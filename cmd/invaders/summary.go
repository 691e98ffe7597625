package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/invaders/engine"
)

var (
	wonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	quitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)
)

// summary renders the end-of-session banner printed after the terminal is released
func summary(state engine.GameState, stats engine.Stats) string {
	var title string
	switch state {
	case engine.StateWon:
		title = wonStyle.Render("YOU WIN! The fleet is destroyed.")
	case engine.StateLost:
		title = lostStyle.Render("GAME OVER. The invaders have landed.")
	default:
		title = quitStyle.Render("Retreat. Game abandoned.")
	}

	details := fmt.Sprintf("%d invaders destroyed in %s", stats.Kills, stats.Elapsed.Round(100*time.Millisecond))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, dimStyle.Render(details)))
}
