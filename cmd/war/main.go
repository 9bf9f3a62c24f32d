package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/luca-patrignani/war/config"
	"github.com/luca-patrignani/war/domain/deck"
	"github.com/luca-patrignani/war/domain/war"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// run plays the configured games and writes everything to out.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("war", flag.ContinueOnError)
	fs.SetOutput(out)
	envFile := fs.String("env", config.DefaultFile, "dotenv file to read")
	games := fs.Int("games", 1, "number of games to play")
	seed := fs.Uint64("seed", 0, "shuffle seed, 0 for a random shuffle")
	logLevel := fs.String("log-level", "info", "debug, info, warn or error")
	player1 := fs.String("player1", war.DefaultPlayer1, "name of the first player")
	player2 := fs.String("player2", war.DefaultPlayer2, "name of the second player")
	stack := fs.String("stack", "", "comma separated cards dealt instead of a shuffled deck, top card last")
	rounds := fs.Bool("rounds", false, "print every round of a single game")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		case "player1":
			cfg.Player1 = *player1
		case "player2":
			cfg.Player2 = *player2
		case "stack":
			cfg.Stack = *stack
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	stacked, err := cfg.StackCards()
	if err != nil {
		return err
	}

	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(cfg.PtermLevel()).WithWriter(out))
	logger := slog.New(handler)

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("W", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ar", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Warn(err.Error())
	}
	fmt.Fprint(out, title)

	var source deck.Source
	if cfg.Seed != 0 {
		source = deck.NewSeededSource(cfg.Seed)
		logger.Debug("using seeded shuffle", "seed", cfg.Seed)
	}

	var tally war.Tally
	for i := 0; i < cfg.Games; i++ {
		var d *deck.Deck
		if stacked != nil {
			d = deck.New(deck.WithCards(stacked))
		}
		g, err := war.New(
			war.WithPlayerNames(cfg.Player1, cfg.Player2),
			war.WithLogger(logger),
			war.WithSource(source),
			war.WithDeck(d),
		)
		if err != nil {
			logger.Error("cannot set up game", "error", err)
			return err
		}
		result := g.Play()
		tally.Add(result)

		if cfg.Games == 1 {
			fmt.Fprintln(out, resultBox(result))
			if *rounds {
				table, err := roundsTable(g.History())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, table)
			}
		}
	}
	if cfg.Games > 1 {
		fmt.Fprintln(out, summaryBox(tally, cfg, message.NewPrinter(language.English)))
	}
	return nil
}
