package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// SavedProgress represents the data stored on disk between runs
type SavedProgress struct {
	HighScore  int    `json:"highScore"`
	LastLevel  string `json:"lastLevel"`
	GamesTotal int    `json:"gamesTotal"`
}

// ItemStore is the key/value backend progress is saved to. *gdata.Manager
// satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const progressKey = "progress"

var progressStore ItemStore

// InitPersistence opens the per-user data directory for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	progressStore = m
	return nil
}

// UseStore swaps the persistence backend; nil disables saving.
func UseStore(s ItemStore) {
	progressStore = s
}

// LoadProgress loads saved progress. Without a store or a save it returns
// zero progress and no error.
func LoadProgress() (SavedProgress, error) {
	var progress SavedProgress
	if progressStore == nil {
		return progress, nil
	}

	data, err := progressStore.LoadItem(progressKey)
	if err != nil {
		return progress, fmt.Errorf("load progress: %w", err)
	}
	if data == nil {
		// Nothing saved yet
		return progress, nil
	}
	if err := json.Unmarshal(data, &progress); err != nil {
		return SavedProgress{}, fmt.Errorf("parse progress: %w", err)
	}
	return progress, nil
}

// SaveProgress writes progress to the store.
func SaveProgress(p SavedProgress) error {
	if progressStore == nil {
		return nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := progressStore.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// RecordGame folds a finished game into the saved progress and returns the
// updated record.
func RecordGame(score int, level string) (SavedProgress, error) {
	p, err := LoadProgress()
	if err != nil {
		return p, err
	}
	p.GamesTotal++
	p.LastLevel = level
	if score > p.HighScore {
		p.HighScore = score
	}
	return p, SaveProgress(p)
}
