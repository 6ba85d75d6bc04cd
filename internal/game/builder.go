package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"cluedo-toolbox/internal/ai"
	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/player"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	prompter     player.Prompter
	numHumans    int
	numAI        int
	maxTurns     int
	turnDelay    time.Duration
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		maxTurns:     cfg.MaxTurns,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

func (b *GameBuilder) WithHumanPlayers(n int) *GameBuilder {
	b.numHumans = n
	return b
}

func (b *GameBuilder) WithAIPlayers(n int) *GameBuilder {
	b.numAI = n
	return b
}

// WithPrompter sets who takes the decisions of human players.
func (b *GameBuilder) WithPrompter(p player.Prompter) *GameBuilder {
	b.prompter = p
	return b
}

// WithTurnDelay pauses after every AI turn so a watcher can follow along.
func (b *GameBuilder) WithTurnDelay(d time.Duration) *GameBuilder {
	b.turnDelay = d
	return b
}

// WithMaxTurns overrides the configured turn limit.
func (b *GameBuilder) WithMaxTurns(n int) *GameBuilder {
	b.maxTurns = n
	return b
}

// Build constructs the Game object after all options have been configured.
func (b *GameBuilder) Build() (*Game, error) {
	totalPlayers := b.numHumans + b.numAI
	if totalPlayers < 2 || totalPlayers > len(b.cfg.Suspects) {
		return nil, errors.New("invalid number of players")
	}

	// 1. Pick and shuffle player names
	playerNames := append([]string(nil), b.cfg.Suspects[:totalPlayers]...)
	b.rand.Shuffle(len(playerNames), func(i, j int) { playerNames[i], playerNames[j] = playerNames[j], playerNames[i] })

	// 2. Create the Game object
	id, err := uuid.NewRandomFromReader(b.rand)
	if err != nil {
		return nil, fmt.Errorf("failed to create game id: %w", err)
	}
	log := b.log.WithField("game", id.String())
	game := newGame(id.String(), b.cfg, b.eventManager, log, b.rand)
	if b.maxTurns > 0 {
		game.maxTurns = b.maxTurns
	}
	game.turnDelay = b.turnDelay

	// 3. Create players, inject dependencies, and subscribe them to events
	handSizes := b.cfg.HandSizes(totalPlayers)
	for i, name := range playerNames {
		var p player.Player
		if i < b.numHumans {
			human, err := player.NewHumanPlayer(b.eventManager, b.prompter, log)
			if err != nil {
				return nil, err
			}
			p = human
		} else {
			// Each AI gets its own random source
			aiRand := rand.New(rand.NewSource(b.rand.Int63()))
			p = ai.NewAdvancedAIBrain(log, aiRand, ai.NewRandomChooser(aiRand))
		}

		// AI players suggest cards from their own hand.
		err := p.Setup(player.Table{
			Config:     b.cfg.DeepCopy(),
			Players:    append([]string(nil), playerNames...),
			Me:         name,
			HandSizes:  handSizes,
			AllowBluff: b.cfg.AllowBluff || b.numAI > 0,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seat %s: %w", name, err)
		}

		game.Players = append(game.Players, p)
		b.eventManager.Subscribe(p)
	}

	// 4. Deal the cards
	game.deal()

	b.eventManager.Publish(events.GameReadyEvent{GameID: game.ID, Players: game.Players})

	return game, nil
}
