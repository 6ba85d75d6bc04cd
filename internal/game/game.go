package game

import (
	"math/rand"
	"sort"
	"time"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/player"

	"github.com/sirupsen/logrus"
)

// Game represents the state and logic of a single Cluedo game.
type Game struct {
	ID           string
	Config       *config.GameConfig
	Players      []player.Player
	Solution     map[config.CardCategory]string
	EventManager *events.Manager
	turn         int
	maxTurns     int
	turnDelay    time.Duration
	eliminated   map[string]bool
	log          logrus.FieldLogger
	rand         *rand.Rand
}

func newGame(id string, cfg *config.GameConfig, em *events.Manager, log logrus.FieldLogger, rand *rand.Rand) *Game {
	return &Game{
		ID:           id,
		Config:       cfg,
		EventManager: em,
		Solution:     make(map[config.CardCategory]string),
		maxTurns:     config.DefaultMaxTurns,
		eliminated:   make(map[string]bool),
		log:          log,
		rand:         rand,
	}
}

// Turns returns how many turns have been played.
func (g *Game) Turns() int { return g.turn }

// IsEliminated reports whether name has made a wrong accusation.
func (g *Game) IsEliminated(name string) bool { return g.eliminated[name] }

// deal initializes the solution and deals the remaining cards to players.
func (g *Game) deal() {
	deck := make([]string, len(g.Config.AllCards))
	copy(deck, g.Config.AllCards)
	g.rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	dealtCategories := make(map[config.CardCategory]bool)
	var cardsToDeal []string
	for i := len(deck) - 1; i >= 0; i-- {
		card := deck[i]
		category := g.Config.CardToType[card]
		if _, exists := dealtCategories[category]; !exists {
			g.Solution[category] = card
			dealtCategories[category] = true
		} else {
			cardsToDeal = append(cardsToDeal, card)
		}
	}
	sort.Strings(cardsToDeal)

	hands := make([][]string, len(g.Players))
	for i, card := range cardsToDeal {
		playerIndex := i % len(g.Players)
		hands[playerIndex] = append(hands[playerIndex], card)
	}

	for i, p := range g.Players {
		p.ReceiveHand(hands[i])
		g.log.Debugf("%s Hand: %v", p.Name(), hands[i])
	}
	g.log.Debugf("Ground Truth Initialized. Solution: %+v", g.Solution)
}

// handleSuggestion asks each player clockwise from the suggester to disprove,
// eliminated players included, and returns the first who can.
func (g *Game) handleSuggestion(suggester player.Player, suggestion map[config.CardCategory]string) (string, string) {
	suggesterIdx := -1
	for i, p := range g.Players {
		if p.Name() == suggester.Name() {
			suggesterIdx = i
			break
		}
	}

	for i := 1; i < len(g.Players); i++ {
		p := g.Players[(suggesterIdx+i)%len(g.Players)]
		cardShown := p.ChooseCardToShow(suggestion)
		if cardShown == "" {
			continue
		}
		if !g.canShow(p, suggestion, cardShown) {
			g.log.Warnf("%s tried to show '%s', which they cannot; showing a valid card instead.", p.Name(), cardShown)
			cardShown = g.anyShowable(p, suggestion)
		}
		return p.Name(), cardShown
	}
	return "", ""
}

func (g *Game) canShow(p player.Player, suggestion map[config.CardCategory]string, card string) bool {
	if suggestion[g.Config.CardToType[card]] != card {
		return false
	}
	for _, held := range p.Hand() {
		if held == card {
			return true
		}
	}
	return false
}

func (g *Game) anyShowable(p player.Player, suggestion map[config.CardCategory]string) string {
	for _, cat := range config.Categories {
		if g.canShow(p, suggestion, suggestion[cat]) {
			return suggestion[cat]
		}
	}
	return ""
}

// RunSimulation is a "headless" game loop. It runs until an accusation is
// correct, every player is eliminated, or the turn limit is reached, and
// returns the winner's name and whether the game was won.
func (g *Game) RunSimulation() (string, bool) {
	for seat := 0; g.turn < g.maxTurns; seat = (seat + 1) % len(g.Players) {
		currentPlayer := g.Players[seat]
		if g.eliminated[currentPlayer.Name()] {
			continue
		}
		g.EventManager.Publish(events.TurnStartEvent{TurnNumber: g.turn + 1, PlayerName: currentPlayer.Name()})

		if accusation := currentPlayer.ShouldAccuse(); accusation != nil {
			isCorrect := g.checkAccusation(accusation)
			g.EventManager.Publish(events.AccusationResolvedEvent{
				AccuserName: currentPlayer.Name(),
				Accusation:  accusation,
				IsCorrect:   isCorrect,
			})
			g.turn++
			if isCorrect {
				g.publishGameOver(currentPlayer.Name(), accusation, true)
				return currentPlayer.Name(), true
			}

			g.eliminated[currentPlayer.Name()] = true
			g.log.Infof("%s accused wrongly and is out of the game.", currentPlayer.Name())
			g.EventManager.Publish(events.PlayerEliminatedEvent{PlayerName: currentPlayer.Name()})
			if len(g.eliminated) == len(g.Players) {
				g.publishGameOver("", accusation, false)
				return "", false
			}
			continue
		}

		suggestion := currentPlayer.MakeSuggestion()
		if !g.validSuggestion(suggestion) {
			g.log.Warnf("%s made an invalid suggestion %v; skipping the turn.", currentPlayer.Name(), suggestion)
			g.turn++
			continue
		}
		g.EventManager.Publish(events.SuggestionMadeEvent{PlayerName: currentPlayer.Name(), Suggestion: suggestion})
		disproverName, revealedCard := g.handleSuggestion(currentPlayer, suggestion)

		if disproverName != "" {
			g.EventManager.Publish(events.DisprovalEvent{SuggesterName: currentPlayer.Name(), DisproverName: disproverName, RevealedCard: revealedCard})
		} else {
			g.EventManager.Publish(events.NoDisprovalEvent{})
		}

		// Notify all players for their internal logic.
		// Each player only gets to see the revealed card if they are the suggester.
		for _, p := range g.Players {
			logicEvent := events.TurnResolvedEvent{
				SuggesterName: currentPlayer.Name(),
				Suggestion:    suggestion,
				DisproverName: disproverName,
			}
			if p.Name() == currentPlayer.Name() {
				logicEvent.RevealedCard = revealedCard
			}
			p.HandleEvent(logicEvent)
		}

		g.turn++
		if !currentPlayer.IsHuman() && g.turnDelay > 0 {
			time.Sleep(g.turnDelay)
		}
	}

	// Game ended on turn limit
	g.publishGameOver("", nil, false)
	return "", false
}

func (g *Game) publishGameOver(winner string, accusation map[config.CardCategory]string, isCorrect bool) {
	g.EventManager.Publish(events.GameOverEvent{
		GameID:     g.ID,
		Winner:     winner,
		Solution:   g.Solution,
		Accusation: accusation,
		IsCorrect:  isCorrect,
		Turns:      g.turn,
	})
}

func (g *Game) validSuggestion(s map[config.CardCategory]string) bool {
	if len(s) != len(config.Categories) {
		return false
	}
	for cat, card := range s {
		if t, ok := g.Config.CardToType[card]; !ok || t != cat {
			return false
		}
	}
	return true
}

func (g *Game) checkAccusation(accusation map[config.CardCategory]string) bool {
	if len(accusation) != len(config.Categories) {
		return false
	}
	for cat, card := range accusation {
		if g.Solution[cat] != card {
			return false
		}
	}
	return true
}
