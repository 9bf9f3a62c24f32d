// Package war plays the card game War between two players.
//
// # Game Flow
//
// A game goes through Setup → Playing → Finished. New runs the setup: a
// standard deck is shuffled and dealt alternately to both players, 26 cards
// each. Play then flips the front card of each hand; the higher value scores
// a point and equal values score nobody. The game stops as soon as one hand
// is empty.
//
// Every round is recorded in a hash chained ledger, available through
// History and checked by VerifyHistory.
package war
