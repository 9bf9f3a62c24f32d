// Package card implements the standard 52-card playing card.
//
// # Core Types
//
// Suit: one of ♠, ♥, ♣, ♦.
//
// Face: one of A, 2..10, J, Q, K.
//
// Card: an immutable suit and face pair. Cards can only be built through
// NewCard, MustCard or Parse, so any Card with Valid() == true belongs to
// the standard tables. The zero Card is used as the "no card" value by the
// deck and player packages.
//
// # Values
//
// Card.Value gives the War value of a card: aces count 1, J, Q and K count
// 10 and every other face counts its number.
package card
