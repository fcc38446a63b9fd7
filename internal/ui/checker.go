package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cablecheck/internal/board"
	"cablecheck/internal/classify"
	"cablecheck/internal/driver"
	"cablecheck/internal/pin"
	"cablecheck/internal/report"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	boardStyle      = lipgloss.NewStyle().Faint(true)
	rowHeaderStyle  = lipgloss.NewStyle().Bold(true)
	focusedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	checkedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	connectorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	statusStyle     = lipgloss.NewStyle().Faint(true)
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
)

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Toggle        key.Binding
	SwitchSide    key.Binding
	PrevConnector key.Binding
	NextConnector key.Binding
	SelectAll     key.Binding
	ClearAll      key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left row")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right row")),
		Toggle:        key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle pin")),
		SwitchSide:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch row")),
		PrevConnector: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev connector")),
		NextConnector: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next connector")),
		SelectAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "check all")),
		ClearAll:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "clear all")),
		PageUp:        key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "report up")),
		PageDown:      key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "report down")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SwitchSide, k.NextConnector, k.SelectAll, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.SwitchSide, k.PrevConnector, k.NextConnector},
		{k.SelectAll, k.ClearAll, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// Checker is the interactive checkbox matrix: both board rows side by side,
// a connector selector per side, and a live report pane that re-runs the
// analysis after every change.
type Checker struct {
	profile *board.Profile
	layouts [2][]pin.Position
	choices [2][]pin.ConnectorType

	checked   [2][pin.PositionsPerSide]bool
	connector [2]int
	side      int
	row       int

	result     classify.Result
	haveResult bool
	reportText string

	keys  keyMap
	help  help.Model
	vp    viewport.Model
	width int
}

// New returns a checker over the given board profile; nil selects the stock
// board. Both connector selectors start on Type C 3.0.
func New(profile *board.Profile) *Checker {
	if profile == nil {
		profile = board.Default()
	}
	keys := defaultKeyMap()
	vp := viewport.New(76, 16)
	// The report pane only reacts to the page keys; everything else drives
	// the matrix.
	vp.KeyMap = viewport.KeyMap{PageUp: keys.PageUp, PageDown: keys.PageDown}

	c := &Checker{
		profile: profile,
		layouts: [2][]pin.Position{pin.Layout(pin.Left), pin.Layout(pin.Right)},
		choices: [2][]pin.ConnectorType{pin.ConnectorChoices(pin.Left), pin.ConnectorChoices(pin.Right)},
		keys:    keys,
		help:    help.New(),
		vp:      vp,
		width:   80,
	}
	for s := range c.choices {
		c.connector[s] = connectorIndex(c.choices[s], pin.TypeC30)
	}
	c.refresh()
	return c
}

func connectorIndex(choices []pin.ConnectorType, want pin.ConnectorType) int {
	for i, choice := range choices {
		if choice == want {
			return i
		}
	}
	return 0
}

func (c *Checker) Init() tea.Cmd {
	return nil
}

func (c *Checker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.resize(msg.Width, msg.Height)
		return c, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keys.Quit):
			return c, tea.Quit
		case key.Matches(msg, c.keys.Help):
			c.help.ShowAll = !c.help.ShowAll
		case key.Matches(msg, c.keys.Up):
			if c.row > 0 {
				c.row--
			}
		case key.Matches(msg, c.keys.Down):
			if c.row < pin.PositionsPerSide-1 {
				c.row++
			}
		case key.Matches(msg, c.keys.Left):
			c.side = 0
		case key.Matches(msg, c.keys.Right):
			c.side = 1
		case key.Matches(msg, c.keys.SwitchSide):
			c.side = 1 - c.side
		case key.Matches(msg, c.keys.Toggle):
			c.checked[c.side][c.row] = !c.checked[c.side][c.row]
			c.refresh()
		case key.Matches(msg, c.keys.PrevConnector):
			c.cycleConnector(-1)
			c.refresh()
		case key.Matches(msg, c.keys.NextConnector):
			c.cycleConnector(1)
			c.refresh()
		case key.Matches(msg, c.keys.SelectAll):
			c.setAll(true)
			c.refresh()
		case key.Matches(msg, c.keys.ClearAll):
			c.setAll(false)
			c.refresh()
		default:
			var cmd tea.Cmd
			c.vp, cmd = c.vp.Update(msg)
			return c, cmd
		}
		return c, nil
	}
	return c, nil
}

func (c *Checker) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("USB Cable Checker"))
	b.WriteString("  ")
	b.WriteString(boardStyle.Render("board: " + c.profile.Name))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, c.sideView(pin.Left), "    ", c.sideView(pin.Right)))
	b.WriteString("\n")
	b.WriteString(c.paneView())
	b.WriteString("\n")
	if status := c.statusLine(); status != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(c.help.View(c.keys))
	return b.String()
}

func (c *Checker) sideView(side pin.Side) string {
	focused := int(side) == c.side
	var b strings.Builder

	header := side.RowName()
	if focused {
		b.WriteString(focusedRowStyle.Render(header))
	} else {
		b.WriteString(rowHeaderStyle.Render(header))
	}
	b.WriteString("\n")

	connector := c.connectorAt(side).String()
	if focused {
		b.WriteString(connectorStyle.Render("Connector: < " + connector + " >"))
	} else {
		b.WriteString("Connector:   " + connector)
	}

	for i, pos := range c.layouts[side] {
		b.WriteString("\n")
		cursor := "  "
		if focused && c.row == i {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if c.checked[side][i] {
			box = checkedStyle.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %02d %s", cursor, box, pos.Index, pos.Label)
	}
	return b.String()
}

func (c *Checker) paneView() string {
	style := paneStyle
	if c.haveResult {
		switch {
		case c.result.Classification.Defective():
			style = style.BorderForeground(lipgloss.Color("1"))
		case c.result.Classification == classify.NonStandard,
			c.result.Classification == classify.ChargingIncomplete,
			c.result.Classification == classify.Unknown:
			style = style.BorderForeground(lipgloss.Color("3"))
		default:
			style = style.BorderForeground(lipgloss.Color("2"))
		}
	}
	return style.Render(c.vp.View())
}

func (c *Checker) statusLine() string {
	side := pin.Side(c.side)
	pos := c.layouts[side][c.row]
	logical, err := c.profile.Translate(side, pos.Label)
	if err != nil {
		return ""
	}
	text := logical.Description()
	if logical.String() != pos.Label {
		text = fmt.Sprintf("wired as %s. %s", logical, text)
	}
	return truncate(fmt.Sprintf("%02d %s: %s", pos.Index, pos.Label, text), c.width-2)
}

func (c *Checker) connectorAt(side pin.Side) pin.ConnectorType {
	return c.choices[side][c.connector[side]]
}

func (c *Checker) cycleConnector(delta int) {
	n := len(c.choices[c.side])
	c.connector[c.side] = (c.connector[c.side] + delta + n) % n
}

func (c *Checker) setAll(on bool) {
	for s := range c.checked {
		for i := range c.checked[s] {
			c.checked[s][i] = on
		}
	}
}

// sessionInput snapshots the matrix as a fresh immutable input; nothing in
// the analysis pipeline can reach back into the model.
func (c *Checker) sessionInput() driver.SessionInput {
	return driver.SessionInput{
		LeftChecked:    c.sideEntries(pin.Left),
		RightChecked:   c.sideEntries(pin.Right),
		LeftConnector:  c.connectorAt(pin.Left).String(),
		RightConnector: c.connectorAt(pin.Right).String(),
		Profile:        c.profile,
	}
}

func (c *Checker) sideEntries(side pin.Side) []string {
	var out []string
	for i, pos := range c.layouts[side] {
		if c.checked[side][i] {
			out = append(out, fmt.Sprintf("%02d %s", pos.Index, pos.Label))
		}
	}
	return out
}

func (c *Checker) refresh() {
	res, err := driver.Analyze(c.sessionInput())
	if err != nil {
		// Matrix entries come from the layout itself, so this is a board
		// profile problem; surface it in the pane rather than crashing.
		c.haveResult = false
		c.reportText = "analysis failed: " + err.Error()
	} else {
		c.result = res
		c.haveResult = true
		c.reportText = report.Text(&res)
	}
	c.vp.SetContent(c.reportText)
}

func (c *Checker) resize(width, height int) {
	if width <= 0 {
		return
	}
	c.width = width
	c.help.Width = width

	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	if inner > 76 {
		inner = 76
	}
	c.vp.Width = inner

	paneHeight := height - 22
	if paneHeight < 5 {
		paneHeight = 5
	}
	if paneHeight > 24 {
		paneHeight = 24
	}
	c.vp.Height = paneHeight
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
