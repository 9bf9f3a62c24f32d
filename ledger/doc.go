// Package ledger implements an append-only, hash chained history used to
// record the rounds of a game.
//
// # Core Components
//
// Ledger: an append-only log of payloads. Every block stores the hash of the
// previous one, so changing any recorded payload breaks the chain.
//
// Block: a single entry holding the payload, the game id and the links to
// the previous block.
//
// # Usage
//
// Create a ledger with the game id, append one block per recorded event and
// call Verify at any time to check that the chain is intact.
package ledger
