package ledger

// Block is one entry of the ledger.
type Block[T any] struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Payload   T        `json:"payload"`
	Metadata  Metadata `json:"metadata"`
}

type Metadata struct {
	GameID string            `json:"game_id"`
	Extra  map[string]string `json:"extra,omitempty"`
}
