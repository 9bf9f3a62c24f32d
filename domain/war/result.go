package war

import "fmt"

// Outcome tells which side won a round or a game.
type Outcome int

const (
	Tie Outcome = iota
	Player1Wins
	Player2Wins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case Player1Wins:
		return "player1"
	case Player2Wins:
		return "player2"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

func compare(a, b int) Outcome {
	switch {
	case a > b:
		return Player1Wins
	case a < b:
		return Player2Wins
	default:
		return Tie
	}
}

// Result is the final score of a game.
type Result struct {
	Player1Name   string  `json:"player1_name"`
	Player2Name   string  `json:"player2_name"`
	Player1Points int     `json:"player1_points"`
	Player2Points int     `json:"player2_points"`
	Rounds        int     `json:"rounds"`
	Outcome       Outcome `json:"outcome"`
}

// Winner returns the name of the winning player, or "" on a tie.
func (r Result) Winner() string {
	switch r.Outcome {
	case Player1Wins:
		return r.Player1Name
	case Player2Wins:
		return r.Player2Name
	}
	return ""
}

// Lines returns the status lines announcing the result:
//
//	Player 1 points: N
//	Player 2 points: N
//	Player 1 wins the game! | Player 2 wins the game! | It's a tie! No one wins the game!
func (r Result) Lines() []string {
	lines := []string{
		fmt.Sprintf("%s points: %d", r.Player1Name, r.Player1Points),
		fmt.Sprintf("%s points: %d", r.Player2Name, r.Player2Points),
	}
	if r.Outcome == Tie {
		return append(lines, "It's a tie! No one wins the game!")
	}
	return append(lines, fmt.Sprintf("%s wins the game!", r.Winner()))
}

// Tally aggregates the results of many games.
type Tally struct {
	Games         int
	Player1Wins   int
	Player2Wins   int
	Ties          int
	Rounds        int
	Player1Points int
	Player2Points int
}

func (t *Tally) Add(r Result) {
	t.Games++
	t.Rounds += r.Rounds
	t.Player1Points += r.Player1Points
	t.Player2Points += r.Player2Points
	switch r.Outcome {
	case Player1Wins:
		t.Player1Wins++
	case Player2Wins:
		t.Player2Wins++
	default:
		t.Ties++
	}
}

// AverageRounds returns the mean number of rounds per game.
func (t Tally) AverageRounds() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Rounds) / float64(t.Games)
}
