package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// GenesisPrevHash is the previous hash of the first block.
const GenesisPrevHash = "0"

type Ledger[T any] struct {
	gameID string
	blocks []Block[T]
	now    func() time.Time
}

// New creates a ledger for the game gameID with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and a zero payload.
func New[T any](gameID string) *Ledger[T] {
	l := &Ledger[T]{
		gameID: gameID,
		blocks: make([]Block[T], 0),
		now:    time.Now,
	}

	genesis := Block[T]{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  GenesisPrevHash,
		Metadata:  Metadata{GameID: gameID},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)

	return l
}

// Append adds payload as a new block linked to the latest one. The extra
// parameter can optionally carry additional metadata.
func (l *Ledger[T]) Append(payload T, extra ...map[string]string) error {
	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := l.blocks[len(l.blocks)-1]

	newBlock := Block[T]{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		Payload:   payload,
		Metadata: Metadata{
			GameID: l.gameID,
			Extra:  extraMsg,
		},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	l.blocks = append(l.blocks, newBlock)
	return nil
}

// Latest returns the most recently added block.
func (l *Ledger[T]) Latest() Block[T] {
	return l.blocks[len(l.blocks)-1]
}

// ByIndex retrieves a block by its index in the chain.
func (l *Ledger[T]) ByIndex(index int) (Block[T], error) {
	if index < 0 || index >= len(l.blocks) {
		return Block[T]{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Len returns the number of blocks after genesis.
func (l *Ledger[T]) Len() int {
	return len(l.blocks) - 1
}

// Payloads returns the payloads of every block after genesis, oldest first.
func (l *Ledger[T]) Payloads() []T {
	out := make([]T, 0, l.Len())
	for _, b := range l.blocks[1:] {
		out = append(out, b.Payload)
	}
	return out
}

// Verify validates the whole chain: the genesis block, then index
// continuity, previous hash linkage and the hash of every block.
func (l *Ledger[T]) Verify() error {
	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	genesis := l.blocks[0]
	if genesis.PrevHash != GenesisPrevHash || genesis.Index != 0 {
		return fmt.Errorf("invalid genesis block")
	}
	if genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis hash")
	}

	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock[T any](current, previous Block[T]) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if current.Metadata.GameID != previous.Metadata.GameID {
		return fmt.Errorf("game id mismatch: expected %s, got %s", previous.Metadata.GameID, current.Metadata.GameID)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash, JSON encoded payload and metadata.
func calculateHash[T any](block Block[T]) string {
	payloadBytes, _ := json.Marshal(block.Payload)
	metaBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(payloadBytes),
		string(metaBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
