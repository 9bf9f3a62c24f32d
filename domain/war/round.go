package war

import "github.com/luca-patrignani/war/domain/card"

// Round is the record of one flip. Points are the running totals after it.
type Round struct {
	Number        int       `json:"number"`
	Player1Card   card.Card `json:"player1_card"`
	Player2Card   card.Card `json:"player2_card"`
	Outcome       Outcome   `json:"outcome"`
	Player1Points int       `json:"player1_points"`
	Player2Points int       `json:"player2_points"`
}
