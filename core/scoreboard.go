package core

import (
	"sync"

	"github.com/automoto/digdug/components"
	cfg "github.com/automoto/digdug/config"
	"github.com/rs/zerolog"
)

// ScoreBoard tallies points from simulation events and tracks the high score.
type ScoreBoard struct {
	mu        sync.Mutex
	log       zerolog.Logger
	score     int
	highScore int
	kills     map[components.KillMethod]int
	dug       int
	livesLost int
}

func NewScoreBoard(log zerolog.Logger) *ScoreBoard {
	return &ScoreBoard{
		log:       log,
		highScore: cfg.Score.InitialHighScore,
		kills:     make(map[components.KillMethod]int),
	}
}

func (b *ScoreBoard) Handle(ev components.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch ev.Kind {
	case components.EventTileDug:
		b.dug++
		b.add(ev.Score)
	case components.EventEnemyKilled:
		b.kills[ev.Method]++
		b.add(ev.Score)
		b.log.Debug().Stringer("method", ev.Method).Int("points", ev.Score).Msg("enemy killed")
	case components.EventPlayerLostLife:
		b.livesLost++
		b.log.Info().Stringer("cause", ev.Method).Int("score", b.score).Msg("player lost a life")
	}
}

func (b *ScoreBoard) add(points int) {
	b.score += points
	if b.score > b.highScore {
		b.highScore = b.score
	}
}

func (b *ScoreBoard) Score() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.score
}

func (b *ScoreBoard) HighScore() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.highScore
}

// Kills returns how many enemies died by method.
func (b *ScoreBoard) Kills(method components.KillMethod) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kills[method]
}

func (b *ScoreBoard) TilesDug() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dug
}

func (b *ScoreBoard) LivesLost() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.livesLost
}

// RaiseHighScore carries a high score over from an earlier run.
func (b *ScoreBoard) RaiseHighScore(v int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v > b.highScore {
		b.highScore = v
	}
}
