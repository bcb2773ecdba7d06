// Package tui is the interactive auction shell: fuzzy player search,
// team selection, price entry, budget tracking and undo, driven from
// salaries.csv.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ffauction/internal/draft"
	"ffauction/internal/ledger"
	"ffauction/internal/salary"
)

type mode int

const (
	modeSearch mode = iota
	modePlayerSelect
	modeTeamInput
	modeTeamSelect
	modePrice
)

const (
	matchLimit      = 20
	teamMatchLimit  = 10
	searchPrompt    = "Player (or 'teams'/'undo'/'q'): "
	teamPrompt      = "Team: "
	createTeamLabel = "Create new team %q"
)

type playerItem struct {
	row salary.Row
}

func (i playerItem) Title() string { return i.row.Name }
func (i playerItem) Description() string {
	return fmt.Sprintf("%-4s %-7s $%d (tier %d)", i.row.ProTeam, i.row.Position, i.row.Salary, i.row.Tier)
}
func (i playerItem) FilterValue() string { return i.row.Name }

type teamItem struct {
	name   string
	create bool
	detail string
}

func (i teamItem) Title() string {
	if i.create {
		return fmt.Sprintf(createTeamLabel, i.name)
	}
	return i.name
}
func (i teamItem) Description() string { return i.detail }
func (i teamItem) FilterValue() string { return i.name }

type Model struct {
	input  textinput.Model
	picker list.Model

	state  *draft.State
	rows   []salary.Row
	byName map[string]salary.Row

	mode    mode
	pending salary.Row
	team    string
	status  string

	leagueID   int
	ledgerPath string

	width  int
	height int
}

func New(rows []salary.Row, leagueID int, ledgerPath string) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = searchPrompt
	input.Focus()

	picker := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)
	picker.SetShowHelp(false)

	return Model{
		input:      input,
		picker:     picker,
		state:      draft.NewState(),
		rows:       rows,
		byName:     salary.ByName(rows),
		leagueID:   leagueID,
		ledgerPath: ledgerPath,
		status:     fmt.Sprintf("Loaded %d players. Type to search.", len(rows)),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(msg.Width-4, listHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modePlayerSelect:
			return m.updatePlayerSelect(msg)
		case modeTeamInput:
			return m.updateTeamInput(msg)
		case modeTeamSelect:
			return m.updateTeamSelect(msg)
		case modePrice:
			return m.updatePrice(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if raw == "" {
		return m, nil
	}

	switch strings.ToLower(raw) {
	case "q", "quit", "exit":
		return m, tea.Quit
	case "teams", ":teams":
		m.status = "Team summary below."
		return m, nil
	case "undo", ":undo":
		return m.undo(), nil
	}

	names := m.state.Available(salary.Names(m.rows))
	if len(names) == 0 {
		m.status = "All players drafted. Draft complete."
		return m, nil
	}

	matches := draft.Matches(raw, names, matchLimit)
	switch len(matches) {
	case 0:
		m.status = "No matches. Try again."
		return m, nil
	case 1:
		return m.selectPlayer(matches[0]), nil
	default:
		items := make([]list.Item, 0, len(matches))
		for _, name := range matches {
			items = append(items, playerItem{row: m.byName[name]})
		}
		m.picker.Title = "Select player"
		m.picker.SetItems(items)
		m.picker.ResetSelected()
		m.mode = modePlayerSelect
		return m, nil
	}
}

func (m Model) updatePlayerSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeSearch
		m.status = "Cancelled. Back to player search."
		return m, nil
	case tea.KeyEnter:
		if item, ok := m.picker.SelectedItem().(playerItem); ok {
			return m.selectPlayer(item.row.Name), nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) selectPlayer(name string) Model {
	m.pending = m.byName[name]
	m.status = fmt.Sprintf("Selected: %s (%s). Suggested salary: $%d.",
		m.pending.Name, m.pending.Position, m.pending.Salary)
	m.input.Placeholder = teamPrompt
	m.mode = modeTeamInput
	return m
}

func (m Model) updateTeamInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.backToSearch("Cancelled. Back to player search."), nil
	case tea.KeyEnter:
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if raw == "" {
		return m, nil
	}

	// Exact hit skips the picker entirely.
	if _, ok := m.state.Teams[raw]; ok {
		return m.selectTeam(raw), nil
	}

	items := teamOptions(m.state, raw)
	if len(items) == 1 {
		// Only the create option exists; no suggestions to choose from.
		return m.selectTeam(raw), nil
	}
	m.picker.Title = "Select team or create new"
	m.picker.SetItems(items)
	m.picker.ResetSelected()
	m.mode = modeTeamSelect
	return m, nil
}

func (m Model) updateTeamSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeTeamInput
		return m, nil
	case tea.KeyEnter:
		if item, ok := m.picker.SelectedItem().(teamItem); ok {
			return m.selectTeam(item.name), nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) selectTeam(name string) Model {
	m.team = name
	m.state.EnsureTeam(name)
	m.input.Placeholder = fmt.Sprintf("Price [$%d]: ", m.pending.Salary)
	m.mode = modePrice
	return m
}

func (m Model) updatePrice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.backToSearch("Cancelled. Back to player search."), nil
	case tea.KeyEnter:
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	raw := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	price, err := parsePrice(raw, m.pending.Salary)
	if err != nil {
		m.status = "Enter a whole number (e.g., 15)."
		return m, nil
	}

	m.state.Assign(m.pending.Name, m.pending.Position, m.team, price)
	m.saveLedger()

	team := m.state.Teams[m.team]
	return m.backToSearch(fmt.Sprintf("Assigned %s to %s for $%d. Remaining for %s: $%d.",
		m.pending.Name, m.team, price, m.team, team.Remaining())), nil
}

func (m Model) undo() Model {
	pick, ok := m.state.Undo()
	if !ok {
		m.status = "Nothing to undo."
		return m
	}
	m.saveLedger()
	m.status = fmt.Sprintf("Undid: %s from %s (-$%d).", pick.Player, pick.Team, pick.Price)
	return m
}

func (m Model) backToSearch(status string) Model {
	m.mode = modeSearch
	m.status = status
	m.input.Placeholder = searchPrompt
	m.team = ""
	m.pending = salary.Row{}
	return m
}

func (m *Model) saveLedger() {
	if m.ledgerPath == "" {
		return
	}
	l := ledger.BuildAuctionLedger(m.leagueID, m.state)
	if err := ledger.WriteAuctionLedger(m.ledgerPath, l); err != nil {
		m.status = fmt.Sprintf("Ledger write failed: %v", err)
	}
}

// parsePrice accepts a whole-dollar price, falling back to the suggested
// salary on empty input.
func parsePrice(raw string, suggested int) (int, error) {
	if raw == "" {
		return suggested, nil
	}
	raw = strings.TrimPrefix(raw, "$")
	price, err := strconv.Atoi(raw)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	return price, nil
}

// teamOptions builds the team picker: a create entry for the query,
// followed by fuzzy suggestions from existing teams.
func teamOptions(s *draft.State, query string) []list.Item {
	items := []list.Item{teamItem{
		name:   query,
		create: true,
		detail: fmt.Sprintf("new team, $%d budget", draft.DefaultBudget),
	}}
	for _, name := range draft.Matches(query, s.TeamNames(), teamMatchLimit) {
		t := s.Teams[name]
		items = append(items, teamItem{
			name:   name,
			detail: fmt.Sprintf("spent $%d, remaining $%d", t.Spent, t.Remaining()),
		})
	}
	return items
}

func listHeight(total int) int {
	h := total - 12
	if h < 5 {
		h = 5
	}
	return h
}
