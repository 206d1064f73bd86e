package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tapcade/arcade/internal/registry"
	"github.com/tapcade/arcade/internal/storage"
)

// scoreLimit caps the rows loaded per game.
const scoreLimit = 100

const timeLayout = "Jan 02 15:04"

var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrame  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// boardKeys switches games and leaves the scoreboard. Scrolling is left to
// the table's own key map.
type boardKeys struct {
	Next, Prev, Back, Quit key.Binding
	scroll                 table.KeyMap
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.scroll.LineUp, k.scroll.LineDown, k.Next, k.Prev, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		scroll: table.DefaultKeyMap(),
	}
}

// ScoreboardModel shows the best scores of one game at a time, with a tab
// per registered game.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	cursor int
	scores []storage.ScoreEntry
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  boardKeys

	width, height int
	back, quit    bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return newScoreboard(store, registry.List(), width, height)
}

func newScoreboard(store *storage.Store, games []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  games,
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.resize()
	m.load()
	return m
}

// resize rebuilds the table for the current terminal size. Spare width goes
// to the player column.
func (m *ScoreboardModel) resize() {
	player := 12 + max(0, min(12, m.width-4-50))
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: player},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
		table.WithKeyMap(m.keys.scroll),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	m.table.SetStyles(s)
	m.help.Width = m.width
	m.fill()
}

// load fetches the selected game's scores and stats. Storage errors leave
// the board empty.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.cursor].ID
		m.scores, _ = m.store.TopScores(id, scoreLimit)
		m.stats, _ = m.store.GameStats(id)
	}
	m.fill()
}

func (m *ScoreboardModel) fill() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{"#" + strconv.Itoa(i+1), s.Player, strconv.Itoa(s.Score), s.CreatedAt.Format(timeLayout)})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectGame moves the cursor by delta, wrapping around.
func (m *ScoreboardModel) selectGame(delta int) {
	if n := len(m.games); n > 0 {
		m.cursor = ((m.cursor+delta)%n + n) % n
		m.load()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Back and quit end the program; the caller
// tells them apart with IsGoingBack.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectGame(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectGame(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.back || m.quit {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardMuted.Render(m.statsLine()), m.width))
	b.WriteString("\n")

	body := m.table.View()
	if len(m.scores) == 0 {
		body = boardMuted.Italic(true).Padding(2, 4).Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(centerText(boardFrame.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(boardMuted.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per game, or just the selected title between arrows
// when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			parts[i] = boardActive.Render(g.Title)
		} else {
			parts[i] = boardMuted.Render(" " + g.Title + " ")
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(line) > m.width-4 {
		return "< " + m.games[m.cursor].Title + " >"
	}
	return line
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  |  %d players  |  avg %.1f  |  last played %s",
		m.stats.GamesCount, m.stats.Players, m.stats.AvgScore, m.stats.LastPlayed.Format(timeLayout))
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to leave the arcade.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard shows the scoreboard in its own program and reports whether
// the user went back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
