package game

import (
	"math/rand"
	"testing"

	"cluedo-toolbox/internal/ai"
	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/deduction"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/player"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	goldenSolution = map[config.CardCategory]string{
		config.CategorySuspect: "Mrs. White",
		config.CategoryWeapon:  "Lead Pipe",
		config.CategoryRoom:    "Kitchen",
	}
	goldenOrder = []string{"Miss Scarlett", "Mr. Green", "Colonel Mustard"}
	goldenHands = map[string][]string{
		"Miss Scarlett":   {"Colonel Mustard", "Mrs. Peacock", "Rope", "Ballroom", "Dining Room", "Lounge"},
		"Mr. Green":       {"Professor Plum", "Hall", "Conservatory", "Mr. Green", "Study", "Billiard Room"},
		"Colonel Mustard": {"Miss Scarlett", "Dagger", "Candlestick", "Wrench", "Revolver", "Library"},
	}
)

// setupDeterministicGoldenGame manually constructs a fixed game state so the
// run does not depend on the deal.
func setupDeterministicGoldenGame(t *testing.T) *Game {
	t.Helper()

	cfg := loadConfig(t)
	log := quietLogger()
	// For debugging this test, uncomment the line below:
	// log.SetLevel(logrus.DebugLevel)

	// The rand source only drives the AIs' own choices.
	seededRand := rand.New(rand.NewSource(1))

	game := newGame("golden", cfg, events.NewManager(), log, seededRand)
	game.Solution = goldenSolution

	for _, name := range goldenOrder {
		aiRand := rand.New(rand.NewSource(seededRand.Int63()))
		brain := ai.NewAdvancedAIBrain(log, aiRand, &ai.DeterministicChooser{})
		require.NoError(t, brain.Setup(player.Table{
			Config:     cfg.DeepCopy(),
			Players:    goldenOrder,
			Me:         name,
			HandSizes:  cfg.HandSizes(len(goldenOrder)),
			AllowBluff: true,
		}))
		brain.ReceiveHand(goldenHands[name])
		game.Players = append(game.Players, brain)
		game.EventManager.Subscribe(brain)
	}

	return game
}

func TestFullSimulation_GoldenRun(t *testing.T) {
	// GIVEN a game constructed with a fixed deal
	game := setupDeterministicGoldenGame(t)
	var over []events.GameOverEvent
	game.EventManager.Subscribe(events.ListenerFunc(func(e events.Event) {
		if o, ok := e.(events.GameOverEvent); ok {
			over = append(over, o)
		}
	}))

	// WHEN we run the entire simulation to its conclusion
	winnerName, isCorrect := game.RunSimulation()

	// THEN somebody deduces the solution before the turn limit
	t.Run("it produces a winner", func(t *testing.T) {
		assert.Contains(t, goldenOrder, winnerName)
	})

	t.Run("the accusation was correct", func(t *testing.T) {
		assert.True(t, isCorrect)
		require.Len(t, over, 1)
		assert.Equal(t, goldenSolution, over[0].Accusation)
		assert.Equal(t, game.Turns(), over[0].Turns)
	})

	t.Run("the game ended before the turn limit", func(t *testing.T) {
		assert.Less(t, game.Turns(), game.maxTurns)
	})

	t.Run("no player's notes contradict the deal", func(t *testing.T) {
		for _, p := range game.Players {
			nb := p.Notebook()
			require.NoError(t, nb.Engine().Err(), p.Name())
			assertConsistentWithDeal(t, nb, game)
		}
	})
}

func assertConsistentWithDeal(t *testing.T, nb *player.Notebook, game *Game) {
	t.Helper()
	reg := nb.Registry()
	truth := make(map[string]deduction.Holder)
	for _, card := range game.Solution {
		truth[card] = deduction.Envelope
	}
	for i, p := range game.Players {
		for _, card := range p.Hand() {
			truth[card] = deduction.Holder(i)
		}
	}
	for name, holder := range truth {
		assert.Contains(t, nb.Engine().PossibleHolders(reg.MustCard(name)), holder,
			"%s thinks %s cannot hold %s", nb.Owner(), reg.HolderName(holder), name)
	}
}

// scriptedPrompter plays a human who makes one fixed suggestion and accuses
// as soon as asked.
type scriptedPrompter struct {
	accusation map[config.CardCategory]string
	shown      []string
}

func (s *scriptedPrompter) PromptSuggestion(*player.HumanPlayer) map[config.CardCategory]string {
	return goldenSolution
}

func (s *scriptedPrompter) PromptAccusation(*player.HumanPlayer) map[config.CardCategory]string {
	return s.accusation
}

func (s *scriptedPrompter) PromptCardToShow(_ *player.HumanPlayer, options []string) string {
	s.shown = append(s.shown, options...)
	return options[0]
}

func TestWrongAccusationEliminatesThePlayer(t *testing.T) {
	// GIVEN a human who names the wrong room in an accusation on their first turn
	prompter := &scriptedPrompter{}
	builder := NewBuilder(loadConfig(t), quietLogger(), rand.New(rand.NewSource(11))).
		WithHumanPlayers(1).
		WithAIPlayers(2).
		WithPrompter(prompter)

	var eliminated []string
	var accusations []events.AccusationResolvedEvent
	builder.EventManager().Subscribe(events.ListenerFunc(func(e events.Event) {
		switch ev := e.(type) {
		case events.PlayerEliminatedEvent:
			eliminated = append(eliminated, ev.PlayerName)
		case events.AccusationResolvedEvent:
			accusations = append(accusations, ev)
		}
	}))
	game, err := builder.Build()
	require.NoError(t, err)

	human := game.Players[0]
	require.True(t, human.IsHuman())
	prompter.accusation = wrongAccusation(game)

	// WHEN the game is played out
	winner, won := game.RunSimulation()

	// THEN the human is out and an AI wins
	assert.Equal(t, []string{human.Name()}, eliminated)
	assert.True(t, game.IsEliminated(human.Name()))
	require.NotEmpty(t, accusations)
	assert.False(t, accusations[0].IsCorrect)
	if won {
		assert.NotEqual(t, human.Name(), winner)
	}

	t.Run("every notebook agrees with the deal", func(t *testing.T) {
		for _, p := range game.Players {
			require.NoError(t, p.Notebook().Engine().Err(), p.Name())
			assertConsistentWithDeal(t, p.Notebook(), game)
		}
	})
}

// wrongAccusation swaps the solution's room for another one.
func wrongAccusation(game *Game) map[config.CardCategory]string {
	acc := map[config.CardCategory]string{
		config.CategorySuspect: game.Solution[config.CategorySuspect],
		config.CategoryWeapon:  game.Solution[config.CategoryWeapon],
	}
	for _, room := range game.Config.Rooms {
		if room != game.Solution[config.CategoryRoom] {
			acc[config.CategoryRoom] = room
			break
		}
	}
	return acc
}

func TestRunBatch(t *testing.T) {
	result, err := RunBatch(loadConfig(t), quietLogger(), rand.New(rand.NewSource(5)), 4, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Games)
	assert.Zero(t, result.WrongAccusations)
	assert.Equal(t, result.Games, result.CorrectAccusations+result.Unfinished)

	wins := 0
	for _, w := range result.WinsBySeat {
		wins += w
	}
	assert.Equal(t, result.CorrectAccusations, wins)
	assert.Greater(t, result.AverageTurns(), 0.0)

	t.Run("bad arguments", func(t *testing.T) {
		_, err := RunBatch(loadConfig(t), quietLogger(), rand.New(rand.NewSource(5)), 0, 3)
		assert.Error(t, err)
		_, err = RunBatch(loadConfig(t), quietLogger(), rand.New(rand.NewSource(5)), 1, 1)
		assert.Error(t, err)
	})
}
