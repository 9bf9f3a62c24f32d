package deck

import (
	"crypto/cipher"
	"math/big"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Source provides uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

type cryptoSource struct {
	stream cipher.Stream
}

// NewCryptoSource returns a Source backed by the Ed25519 suite random
// stream. Games played with it cannot be replayed.
func NewCryptoSource() Source {
	return cryptoSource{stream: suite.RandomStream()}
}

func (s cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("deck: invalid argument to IntN")
	}
	return int(random.Int(big.NewInt(int64(n)), s.stream).Int64())
}

// NewSeededSource returns a deterministic Source: two decks shuffled with
// sources built from the same seed end up in the same order.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes the deck in place with a Fisher-Yates walk from the last
// card down to the second one.
func (d *Deck) Shuffle() {
	if d.Len() < 2 {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.source.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
