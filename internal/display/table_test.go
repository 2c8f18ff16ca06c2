package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack-cli/internal/game"
)

func TestPromptsResolveAfterProgramExit(t *testing.T) {
	// Once the program has exited, Send drops messages on the floor, so
	// a prompt waiting on its reply channel would hang the engine
	// goroutine forever. Closed quit means prompts answer immediately:
	// zero bet ends the session and any in-flight hand stands.
	table := NewTable()
	close(table.quit)

	assert.Equal(t, 0, table.promptBet(10, 500))

	ctx := game.DecisionContext{Actions: []game.Action{game.Hit, game.Stand}}
	assert.Equal(t, game.Stand, table.promptAction(ctx))
}
