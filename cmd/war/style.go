package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/text/message"

	"github.com/luca-patrignani/war/config"
	"github.com/luca-patrignani/war/domain/war"
)

func box() *pterm.BoxPrinter {
	return pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
}

func resultBox(r war.Result) string {
	lines := r.Lines()
	last := len(lines) - 1
	if r.Outcome == war.Tie {
		lines[last] = pterm.LightYellow(lines[last])
	} else {
		lines[last] = pterm.LightCyan(lines[last])
	}
	return box().WithTitle(pterm.LightGreen("|RESULT|")).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
}

func roundsTable(history []war.Round) (string, error) {
	data := pterm.TableData{{"Round", "Player 1", "Player 2", "Winner", "Score"}}
	for _, r := range history {
		data = append(data, []string{
			strconv.Itoa(r.Number),
			r.Player1Card.String(),
			r.Player2Card.String(),
			r.Outcome.String(),
			strconv.Itoa(r.Player1Points) + "-" + strconv.Itoa(r.Player2Points),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// summaryBox reports a batch of games. Numbers are grouped by p.
func summaryBox(t war.Tally, cfg config.Config, p *message.Printer) string {
	percent := func(n int) float64 {
		return 100 * float64(n) / float64(t.Games)
	}
	lines := []string{
		p.Sprintf("Games played: %d", t.Games),
		p.Sprintf("%s wins: %d (%.1f%%)", cfg.Player1, t.Player1Wins, percent(t.Player1Wins)),
		p.Sprintf("%s wins: %d (%.1f%%)", cfg.Player2, t.Player2Wins, percent(t.Player2Wins)),
		p.Sprintf("Ties: %d (%.1f%%)", t.Ties, percent(t.Ties)),
		p.Sprintf("Points: %d - %d", t.Player1Points, t.Player2Points),
		p.Sprintf("Average rounds per game: %.2f", t.AverageRounds()),
	}
	return box().WithTitle(pterm.LightMagenta("|SUMMARY|")).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
}
