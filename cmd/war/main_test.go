package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/war/config"
	"github.com/luca-patrignani/war/domain/card"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// Dealt from the end: player 1 gets ♥5 and ♥3, player 2 gets ♠A and ♠2.
const stack = "♠2,♥3,♠A,♥5"

func runWar(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"WAR_GAMES", "WAR_SEED", "WAR_LOG_LEVEL", "WAR_PLAYER1", "WAR_PLAYER2", "WAR_STACK"} {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	args = append([]string{"-env", filepath.Join(t.TempDir(), "none.env")}, args...)
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRunStackedGame(t *testing.T) {
	out, err := runWar(t, "-stack", stack)
	require.NoError(t, err)
	assert.Contains(t, out, "Player 1 points: 2")
	assert.Contains(t, out, "Player 2 points: 0")
	assert.Contains(t, out, "Player 1 wins the game!")
	assert.NotContains(t, out, "SUMMARY")
}

func TestRunTie(t *testing.T) {
	out, err := runWar(t, "-stack", "♠K,♥Q")
	require.NoError(t, err)
	assert.Contains(t, out, "Player 1 points: 0")
	assert.Contains(t, out, "Player 2 points: 0")
	assert.Contains(t, out, "It's a tie! No one wins the game!")
}

func TestRunPlayerNames(t *testing.T) {
	t.Setenv("WAR_PLAYER1", "Eve")
	t.Setenv("WAR_PLAYER2", "Mallory")

	out, err := runWar(t, "-stack", stack, "-player2", "Bob")
	require.NoError(t, err)
	assert.Contains(t, out, "Eve points: 2")
	assert.Contains(t, out, "Bob points: 0")
	assert.Contains(t, out, "Eve wins the game!")
	assert.NotContains(t, out, "Mallory")
}

func TestRunRoundsTable(t *testing.T) {
	out, err := runWar(t, "-stack", stack, "-rounds")
	require.NoError(t, err)
	assert.Contains(t, out, "Round")
	for _, c := range []card.Card{
		card.MustCard(card.Heart, card.Five),
		card.MustCard(card.Spade, card.Ace),
		card.MustCard(card.Heart, card.Three),
		card.MustCard(card.Spade, card.Two),
	} {
		assert.Contains(t, out, c.String())
	}
	assert.Contains(t, out, "2-0")
}

func TestRunFullGame(t *testing.T) {
	out, err := runWar(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Player 1 points: ")
	assert.Contains(t, out, "Player 2 points: ")
	assert.True(t,
		strings.Contains(out, "wins the game!") || strings.Contains(out, "It's a tie!"),
		out)
}

func TestRunBatchIsReproducible(t *testing.T) {
	args := []string{"-games", "1000", "-seed", "7", "-log-level", "error"}
	first, err := runWar(t, args...)
	require.NoError(t, err)
	second, err := runWar(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "SUMMARY")
	assert.Contains(t, first, "Games played: 1,000")
	assert.Contains(t, first, "Average rounds per game: 26.00")
	assert.NotContains(t, first, "wins the game!")
}

func TestRunLogsAtDebug(t *testing.T) {
	out, err := runWar(t, "-stack", stack, "-log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "cards dealt")
	assert.Contains(t, out, "round played")
	assert.Contains(t, out, "game finished")
}

func TestRunInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{name: "zero games", args: []string{"-games", "0"}, is: config.ErrInvalidConfig},
		{name: "bad level", args: []string{"-log-level", "verbose"}, is: config.ErrInvalidConfig},
		{name: "bad stack", args: []string{"-stack", "♠A,Z1"}, is: card.ErrInvalidArgument},
		{name: "unknown flag", args: []string{"-jokers"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runWar(t, tt.args...)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
