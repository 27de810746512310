package storage

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacetris/internal/world"
)

// Keeper records finished runs of one world preset into a Store.
type Keeper struct {
	store   *Store
	worldID string
	top     int
	logger  *log.Logger
}

var _ world.ScoreKeeper = (*Keeper)(nil)

// Keeper returns a score keeper for worldID holding top places.
func (s *Store) Keeper(worldID string, top int, logger *log.Logger) *Keeper {
	if top <= 0 {
		top = DefaultTop
	}
	return &Keeper{store: s, worldID: worldID, top: top, logger: logger}
}

// Qualifies reports whether score earns a place. Database errors count as no.
func (k *Keeper) Qualifies(score int) bool {
	ok, err := k.store.Qualifies(k.worldID, k.top, score)
	if err != nil {
		if k.logger != nil {
			k.logger.Warn("could not check score table", "world", k.worldID, "error", err)
		}
		return false
	}
	return ok
}

// AddScore records a finished run. Rejected entries are not an error.
func (k *Keeper) AddScore(e world.ScoreEntry) error {
	_, err := k.store.AddScore(k.top, ScoreEntry{
		WorldID: k.worldID,
		Name:    e.Name,
		Lines:   e.Lines,
		Level:   e.Level,
		Score:   e.Score,
	})
	if errors.Is(err, ErrRejected) {
		return nil
	}
	return err
}
