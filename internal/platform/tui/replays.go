package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravflip/internal/storage"
)

const maxReplays = 100

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// ReplayBrowser lists stored replays, newest first, in a table.
type ReplayBrowser struct {
	store    *storage.Store
	replays  []storage.Replay
	table    table.Model
	help     help.Model
	keys     ListKeyMap
	width    int
	height   int
	err      error
	selected *storage.Replay
	back     bool
	quitting bool
	owner    string // Pilot allowed to delete when restricted
	owned    bool
}

// ErrNotOwner is reported when deleting another pilot's replay.
var ErrNotOwner = errors.New("only your own replays can be deleted")

// NewReplayBrowser loads the replay list from store, which may be nil.
func NewReplayBrowser(store *storage.Store, width, height int) ReplayBrowser {
	m := ReplayBrowser{
		store:  store,
		keys:   DefaultListKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// OwnedBy restricts deletion to replays recorded by pilot.
func (m ReplayBrowser) OwnedBy(pilot string) ReplayBrowser {
	m.owner = pilot
	m.owned = true
	return m
}

func (m *ReplayBrowser) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Pilot", Width: 14},
		{Title: "Variant", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Flips", Width: 6},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ReplayBrowser) reload() {
	m.replays = nil
	m.err = nil
	if m.store != nil {
		m.replays, m.err = m.store.Replays(maxReplays)
	}

	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Pilot,
			r.GameID,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", len(r.Flips)),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.GotoBottom()
	}
}

// Init initializes the browser.
func (m ReplayBrowser) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m ReplayBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Switch):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if r, ok := m.current(); ok {
				m.selected = &r
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.current(); ok && m.store != nil {
				if m.owned && r.Pilot != m.owner {
					m.err = ErrNotOwner
					return m, nil
				}
				if err := m.store.DeleteReplay(r.ID); err != nil {
					m.err = err
					return m, nil
				}
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ReplayBrowser) current() (storage.Replay, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.Replay{}, false
	}
	return m.replays[i], true
}

// View renders the browser.
func (m ReplayBrowser) View() string {
	if m.quitting || m.back || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("REPLAYS"), m.width))
	b.WriteString("\n\n")

	if len(m.replays) == 0 {
		b.WriteString(centerText(boxStyle.Render(emptyStyle.Render("No replays recorded yet.\nEvery finished run is saved here.")), m.width))
	} else {
		b.WriteString(centerText(boxStyle.Render(m.table.View()), m.width))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the replay chosen for playback, or nil.
func (m ReplayBrowser) Selected() *storage.Replay {
	return m.selected
}

// GoingBack reports whether the user asked to return to the menu.
func (m ReplayBrowser) GoingBack() bool {
	return m.back
}

// IsQuitting reports whether the user quit.
func (m ReplayBrowser) IsQuitting() bool {
	return m.quitting
}

// RunReplayBrowser shows the browser. It returns the replay to play, or
// nil with goBack reporting whether the user wants the menu again.
func RunReplayBrowser(store *storage.Store, width, height int) (selected *storage.Replay, goBack bool, err error) {
	p := tea.NewProgram(NewReplayBrowser(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	m, ok := final.(ReplayBrowser)
	if !ok {
		return nil, false, nil
	}
	return m.Selected(), m.GoingBack(), nil
}
