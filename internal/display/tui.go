// Package display renders the interactive blackjack table with Bubble
// Tea. The engine runs in its own goroutine and blocks on the prompt
// callbacks; the model answers them through reply channels.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack-cli/internal/game"
)

// Styles contains all styling for the table.
type Styles struct {
	Header  lipgloss.Style
	LogPane lipgloss.Style
	Input   lipgloss.Style
	Prompt  lipgloss.Style
	RedCard lipgloss.Style
	Card    lipgloss.Style
	Win     lipgloss.Style
	Loss    lipgloss.Style
	Info    lipgloss.Style
}

func defaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#006400")).
			Padding(0, 1).
			Bold(true),
		LogPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Card: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Loss: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

type promptKind int

const (
	promptNone promptKind = iota
	promptBet
	promptAction
)

// betPromptMsg asks the user for the next wager.
type betPromptMsg struct {
	minBet   int
	bankroll float64
	reply    chan int
}

// actionPromptMsg asks the user to pick among the legal actions.
type actionPromptMsg struct {
	ctx   game.DecisionContext
	reply chan game.Action
}

// logLineMsg appends a rendered line to the table log.
type logLineMsg string

// sessionOverMsg ends the TUI once the engine goroutine returns.
type sessionOverMsg struct {
	result game.PlayResult
	err    error
}

// Model is the Bubble Tea model for the blackjack table.
type Model struct {
	logViewport viewport.Model
	input       textinput.Model
	styles      *Styles

	lines  []string
	prompt promptKind
	bet    *betPromptMsg
	action *actionPromptMsg

	width    int
	height   int
	quitting bool
	finished bool
	result   game.PlayResult
	err      error
}

// NewModel creates the table model.
func NewModel() *Model {
	vp := viewport.New(80, 20)
	ti := textinput.New()
	ti.Placeholder = "..."
	ti.Focus()
	ti.CharLimit = 16

	return &Model{
		logViewport: vp,
		input:       ti,
		styles:      defaultStyles(),
		lines:       []string{},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 4
		m.logViewport.Height = msg.Height - 7
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.abandonPrompt()
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case logLineMsg:
		m.lines = append(m.lines, string(msg))
		m.refreshLog()
		return m, nil

	case betPromptMsg:
		m.prompt = promptBet
		m.bet = &msg
		m.input.SetValue("")
		return m, nil

	case actionPromptMsg:
		m.prompt = promptAction
		m.action = &msg
		m.input.SetValue("")
		return m, nil

	case sessionOverMsg:
		m.finished = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit resolves the pending prompt from the input field.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(strings.ToLower(m.input.Value()))
	m.input.SetValue("")

	switch m.prompt {
	case promptBet:
		var bet int
		switch {
		case text == "q" || text == "quit":
			bet = 0
		case text == "":
			bet = m.bet.minBet
		default:
			// A mistyped or non-positive bet must not end the session;
			// only q/quit does that.
			if n, err := fmt.Sscanf(text, "%d", &bet); n != 1 || err != nil || bet <= 0 {
				m.lines = append(m.lines, m.styles.Loss.Render("invalid bet, try again"))
				m.refreshLog()
				return m, nil
			}
		}
		m.prompt = promptNone
		m.bet.reply <- bet
		m.bet = nil

	case promptAction:
		action, ok := parseAction(text, m.action.ctx.Actions)
		if !ok {
			m.lines = append(m.lines, m.styles.Loss.Render("invalid input, try again"))
			m.refreshLog()
			return m, nil
		}
		m.prompt = promptNone
		m.action.reply <- action
		m.action = nil
	}
	return m, nil
}

// abandonPrompt unblocks the engine goroutine when the user quits while
// a prompt is pending.
func (m *Model) abandonPrompt() {
	switch m.prompt {
	case promptBet:
		m.bet.reply <- 0
		m.bet = nil
	case promptAction:
		m.action.reply <- game.Stand
		m.action = nil
	}
	m.prompt = promptNone
}

// parseAction accepts the short letter or the full action name, but only
// for actions that are legal right now.
func parseAction(text string, legal []game.Action) (game.Action, bool) {
	for _, a := range legal {
		if text == a.String() || text == shortForm(a) {
			return a, true
		}
	}
	return 0, false
}

func shortForm(a game.Action) string {
	switch a {
	case game.Hit:
		return "h"
	case game.Stand:
		return "s"
	case game.Double:
		return "d"
	case game.Split:
		return "p"
	case game.Surrender:
		return "r"
	default:
		return "?"
	}
}

func (m *Model) refreshLog() {
	m.logViewport.SetContent(strings.Join(m.lines, "\n"))
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.finished {
		return ""
	}

	header := m.styles.Header.Render(" ♠ ♥ Blackjack ♦ ♣ ")
	logPane := m.styles.LogPane.Render(m.logViewport.View())

	var promptLine string
	switch m.prompt {
	case promptBet:
		promptLine = m.styles.Prompt.Render(fmt.Sprintf(
			"Bankroll $%.0f, minimum bet $%d. Enter bet, ENTER for minimum, q to quit",
			m.bet.bankroll, m.bet.minBet))
	case promptAction:
		promptLine = m.styles.Prompt.Render(actionMenu(m.action.ctx.Actions))
	default:
		promptLine = m.styles.Info.Render("waiting for the dealer...")
	}

	inputPane := m.styles.Input.Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, logPane, promptLine, inputPane)
}

// actionMenu renders the legal actions like "[H]it [S]tand [D]ouble".
func actionMenu(actions []game.Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		name := a.String()
		short := shortForm(a)
		idx := strings.Index(name, short)
		parts[i] = name[:idx] + "[" + strings.ToUpper(short) + "]" + name[idx+1:]
	}
	return strings.Join(parts, "  ")
}
