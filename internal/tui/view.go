package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	summaryHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("99"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ffauction draft"))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	switch m.mode {
	case modePlayerSelect, modeTeamSelect:
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select · enter confirm · esc cancel"))
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter submit · esc cancel · ctrl+c quit"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.teamSummary())
	return b.String()
}

func (m Model) teamSummary() string {
	if len(m.state.Teams) == 0 {
		return summaryStyle.Render("No teams yet.")
	}

	var b strings.Builder
	b.WriteString(summaryHeaderStyle.Render("Teams"))
	b.WriteString("\n")
	for _, t := range m.state.SortedTeams() {
		positions := make([]string, 0, len(t.Roster))
		for pos := range t.Roster {
			positions = append(positions, pos)
		}
		sort.Strings(positions)

		bits := make([]string, 0, len(positions))
		for _, pos := range positions {
			bits = append(bits, fmt.Sprintf("%s:%d", pos, t.Roster[pos]))
		}
		roster := strings.Join(bits, ", ")
		if roster == "" {
			roster = "no picks"
		}

		b.WriteString(summaryStyle.Render(fmt.Sprintf("- %s: spent $%d, remaining $%d | %s",
			t.Name, t.Spent, t.Remaining(), roster)))
		b.WriteString("\n")
	}
	return b.String()
}
