package main

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/game"
)

// version is set by ldflags during build
var version = "dev"

// Globals is the configuration surface shared by every command. The
// defaults are the standard six-deck Vegas rules.
type Globals struct {
	Bet              int     `default:"10" help:"Minimum bet"`
	Payout           float64 `default:"1.5" help:"Payout for a natural blackjack"`
	NumDecks         int     `default:"6" help:"Number of 52 card decks in the shoe"`
	ShoeMinPercent   float64 `default:"20.0" help:"Percent of shoe remaining that triggers a reshuffle"`
	HitSoftSeventeen bool    `negatable:"" help:"Dealer hits soft seventeen"`
	DoubleAfterSplit bool    `negatable:"" default:"true" help:"Allow doubling after a split"`
	LateSurrender    bool    `negatable:"" default:"true" help:"Offer late surrender"`
	MaxSplit         int     `default:"2" help:"Max splits allowed (2 splits = 4 hands)"`
	Bankroll         int     `default:"500" help:"Starting bankroll"`
	Rules            string  `type:"existingfile" optional:"" help:"HCL rules file overriding the option flags"`
	Table            string  `optional:"" help:"Table name to select in the rules file"`
	Verbose          bool    `short:"v" help:"Verbose logging"`
}

// options assembles and validates the game options from the flags and
// the optional rules file.
func (g *Globals) options() (game.GameOptions, error) {
	opts := game.GameOptions{
		MinBet:           g.Bet,
		Payout:           g.Payout,
		NumDecks:         g.NumDecks,
		ShoeMinPercent:   g.ShoeMinPercent,
		HitSoftSeventeen: g.HitSoftSeventeen,
		DoubleAfterSplit: g.DoubleAfterSplit,
		LateSurrender:    g.LateSurrender,
		MaxSplit:         g.MaxSplit,
	}

	if g.Rules != "" {
		rules, err := game.LoadRules(g.Rules)
		if err != nil {
			return opts, err
		}
		return rules.Options(g.Table, opts)
	}

	return opts, opts.Validate()
}

// logger builds the session logger. The TUI owns the terminal during
// play, so interactive sessions log to a file instead of stderr.
func (g *Globals) logger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if g.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"V" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play blackjack interactively"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate many games to evaluate a strategy"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack: play at the terminal or simulate strategies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
