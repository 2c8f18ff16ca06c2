package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/display"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/strategy"
)

var summaryStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#006400")).
	Padding(0, 1).
	Bold(true)

// PlayCmd runs the interactive terminal game. The user is prompted for
// bets and decisions; the session ends on quit, bankruptcy, or ctrl-c.
type PlayCmd struct {
	TrainingStrategy string `enum:"none,basic,always-hit" default:"none" help:"Grade decisions against an automated strategy"`
}

func (c *PlayCmd) Run(g *Globals) error {
	opts, err := g.options()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so debug logs go to a file.
	logFile, err := os.OpenFile("blackjack.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("failed to close log file", "error", err)
		}
	}()
	logger := g.logger(logFile)

	table := display.NewTable()
	result, err := table.Run(func(prompts strategy.Prompts) (game.PlayResult, error) {
		var strat game.Strategy = strategy.NewHuman(prompts)
		switch c.TrainingStrategy {
		case "basic":
			strat = strategy.NewTraining(strat, strategy.NewBasic(), table.TrainingFeedback)
		case "always-hit":
			strat = strategy.NewTraining(strat, strategy.NewAlwaysHit(), table.TrainingFeedback)
		}

		session := game.New(opts, logger)
		return session.Play(strat, g.Bankroll, 0, randutil.New(time.Now().UnixNano()))
	})
	if err != nil {
		return err
	}

	fmt.Println(summaryStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Printf("Final bankroll: $%.2f\n", result.FinalBankroll)
	fmt.Printf("Rounds played:  %d\n", result.Rounds)
	if result.TotalBet > 0 {
		fmt.Printf("House edge:     %.2f%%\n", -100.0*result.EV)
	}
	return nil
}
