package game

import (
	"fmt"
	"math/rand"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/events"

	"github.com/sirupsen/logrus"
)

// BatchResult sums up a run of AI-only games.
type BatchResult struct {
	Games              int
	Players            int
	WinsBySeat         []int // seat 0 moves first
	CorrectAccusations int
	WrongAccusations   int
	Unfinished         int
	TotalTurns         int
}

// AverageTurns is the mean game length, unfinished games included.
func (r *BatchResult) AverageTurns() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Games)
}

// RunBatch plays games headless simulations with players AI players each.
func RunBatch(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand, games, players int) (*BatchResult, error) {
	if games < 1 {
		return nil, fmt.Errorf("need at least one game, got %d", games)
	}
	if players < 2 || players > len(cfg.Suspects) {
		return nil, fmt.Errorf("invalid number of players: %d", players)
	}
	result := &BatchResult{Players: players, WinsBySeat: make([]int, players)}

	for i := 0; i < games; i++ {
		builder := NewBuilder(cfg, logger, rand).WithAIPlayers(players)
		builder.EventManager().Subscribe(events.ListenerFunc(func(e events.Event) {
			if acc, ok := e.(events.AccusationResolvedEvent); ok {
				if acc.IsCorrect {
					result.CorrectAccusations++
				} else {
					result.WrongAccusations++
				}
			}
		}))

		g, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build game %d: %w", i+1, err)
		}
		winner, won := g.RunSimulation()
		result.Games++
		result.TotalTurns += g.Turns()
		if !won {
			result.Unfinished++
			continue
		}
		for seat, p := range g.Players {
			if p.Name() == winner {
				result.WinsBySeat[seat]++
			}
		}
	}
	return result, nil
}
