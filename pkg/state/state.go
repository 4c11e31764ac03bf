package state

const (
	// ScoreKey is the key the score is stored under.
	ScoreKey = "score"
)

// Store provides shared access to the game state.
// Implementations must be thread-safe.
type Store interface {
	// UpdateScore adds points to the current score. An unset score counts as 0.
	UpdateScore(points int)
	// Score returns the current score, or 0 if it was never set.
	Score() int
	// Set stores an arbitrary value under key.
	Set(key string, value any)
	// Get returns the value stored under key.
	Get(key string) (any, bool)
	// Reset clears all state and sets the score to 0.
	Reset()
}
