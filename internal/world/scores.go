package world

// ScoreEntry is one finished run as it is recorded in the score table.
type ScoreEntry struct {
	Name  string
	Lines int
	Level int
	Score int
}

// ScoreKeeper decides whether a score earns a place in the table and records it.
type ScoreKeeper interface {
	Qualifies(score int) bool
	AddScore(entry ScoreEntry) error
}
