package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/strategy"
)

// Table owns the running Bubble Tea program and exposes the prompt
// callbacks the engine blocks on.
type Table struct {
	program *tea.Program
	styles  *Styles

	// quit is closed once the program has exited. Send on an exited
	// program drops the message, so prompts must stop waiting for a
	// reply that can never arrive.
	quit chan struct{}
}

// NewTable creates an interactive table.
func NewTable() *Table {
	model := NewModel()
	return &Table{
		program: tea.NewProgram(model, tea.WithAltScreen()),
		styles:  model.styles,
		quit:    make(chan struct{}),
	}
}

// Run starts the TUI, invokes the session function with prompts wired to
// this table, and blocks until the session ends or the user quits.
func (t *Table) Run(session func(prompts strategy.Prompts) (game.PlayResult, error)) (game.PlayResult, error) {
	done := make(chan sessionOverMsg, 1)
	go func() {
		result, err := session(t.Prompts())
		msg := sessionOverMsg{result: result, err: err}
		done <- msg
		t.program.Send(msg)
	}()

	_, runErr := t.program.Run()

	// Quitting the TUI resolves any prompt the engine is blocked on with
	// a zero bet or a stand, so the session always returns.
	close(t.quit)

	if runErr != nil {
		return game.PlayResult{}, fmt.Errorf("running table: %w", runErr)
	}
	msg := <-done
	return msg.result, msg.err
}

// Prompts returns the engine-facing callbacks for this table.
func (t *Table) Prompts() strategy.Prompts {
	return strategy.Prompts{
		Bet:         t.promptBet,
		Action:      t.promptAction,
		HandShown:   t.showHand,
		ResultShown: t.showResult,
	}
}

// TrainingFeedback reports a graded decision, for use with the training
// strategy wrapper.
func (t *Table) TrainingFeedback(chosen, correct game.Action) {
	if chosen == correct {
		t.program.Send(logLineMsg(t.styles.Win.Render("✓ correct")))
		return
	}
	t.program.Send(logLineMsg(t.styles.Loss.Render("✗ incorrect, basic strategy says " + correct.String())))
}

func (t *Table) promptBet(minBet int, bankroll float64) int {
	select {
	case <-t.quit:
		return 0
	default:
	}

	reply := make(chan int, 1)
	t.program.Send(betPromptMsg{minBet: minBet, bankroll: bankroll, reply: reply})
	select {
	case bet := <-reply:
		return bet
	case <-t.quit:
		return 0
	}
}

func (t *Table) promptAction(ctx game.DecisionContext) game.Action {
	select {
	case <-t.quit:
		return game.Stand
	default:
	}

	reply := make(chan game.Action, 1)
	t.program.Send(actionPromptMsg{ctx: ctx, reply: reply})
	select {
	case action := <-reply:
		return action
	case <-t.quit:
		return game.Stand
	}
}

func (t *Table) showHand(h *game.Hand) {
	t.program.Send(logLineMsg(t.renderHand(h)))
}

func (t *Table) showResult(h *game.Hand, result string) {
	style := t.styles.Info
	switch {
	case strings.Contains(result, "player wins"),
		strings.Contains(result, "dealer bust"),
		strings.Contains(result, "player has blackjack"):
		style = t.styles.Win
	case strings.Contains(result, "dealer wins"),
		strings.Contains(result, "player bust"),
		strings.Contains(result, "blackjack") && !strings.Contains(result, "push"),
		strings.Contains(result, "surrender"):
		style = t.styles.Loss
	}
	t.program.Send(logLineMsg(style.Render(h.Name() + ": " + result)))
}

// renderHand paints each card red or white and appends the running
// total, e.g. "Player: A♠ 6♥ (soft 17)".
func (t *Table) renderHand(h *game.Hand) string {
	var sb strings.Builder
	sb.WriteString(h.Name())
	sb.WriteString(": ")
	for i, c := range h.Cards() {
		if i > 0 {
			sb.WriteString("  ")
		}
		if c.IsRed() {
			sb.WriteString(t.styles.RedCard.Render(c.String()))
		} else {
			sb.WriteString(t.styles.Card.Render(c.String()))
		}
	}

	total, soft := h.Value()
	if soft {
		sb.WriteString(t.styles.Info.Render(fmt.Sprintf("  (soft %d)", total)))
	} else {
		sb.WriteString(t.styles.Info.Render(fmt.Sprintf("  (%d)", total)))
	}
	return sb.String()
}
