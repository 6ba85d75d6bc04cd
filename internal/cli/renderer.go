package cli

import (
	"fmt"
	"strings"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/player"
)

// SimulationRenderer implements the events.Listener interface to print game state to the console.
type SimulationRenderer struct{}

// HandleEvent is the central dispatcher for rendering events.
func (r *SimulationRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GameReadyEvent:
		C.Header.Printf("--- Starting Game %s: Initial State ---\n", event.GameID)
		players, ok := event.Players.([]player.Player)
		if !ok {
			return
		}
		// Show the first AI player's initial notes.
		for _, p := range players {
			if !p.IsHuman() {
				DisplayNotes(p)
				break
			}
		}
	case events.HumanHandRevealedEvent:
		var cardParts []string
		for _, card := range event.Hand {
			cardParts = append(cardParts, ColorizeCard(card))
		}
		C.Info.Printf("\n%s's hand: %s\n", ColorizeCard(event.PlayerName), strings.Join(cardParts, ", "))
	case events.TurnStartEvent:
		C.Header.Printf("\n--- Turn %d: %s ---\n", event.TurnNumber, ColorizeCard(event.PlayerName))
	case events.SuggestionMadeEvent:
		C.Info.Printf("%s suggests: %s\n", ColorizeCard(event.PlayerName), formatTriple(event.Suggestion))
	case events.DisprovalEvent:
		C.Info.Printf("-> %s shows a card to %s.\n", ColorizeCard(event.DisproverName), ColorizeCard(event.SuggesterName))
	case events.NoDisprovalEvent:
		C.Info.Println("-> No player could show a card.")
	case events.AccusationResolvedEvent:
		C.Info.Printf("%s ACCUSES with: %s\n", ColorizeCard(event.AccuserName), formatTriple(event.Accusation))
		if event.IsCorrect {
			C.Yes.Println("-> The accusation is CORRECT!")
		} else {
			C.No.Println("-> The accusation is INCORRECT!")
		}
	case events.PlayerEliminatedEvent:
		C.No.Printf("%s is out of the game, but will still show cards.\n", ColorizeCard(event.PlayerName))
	case events.GameOverEvent:
		r.renderGameResult(event)
	}
}

func (r *SimulationRenderer) renderGameResult(event events.GameOverEvent) {
	C.Header.Printf("\n--- GAME OVER after %d turns ---\n", event.Turns)
	switch {
	case event.IsCorrect:
		C.Yes.Printf("%s wins!\n", ColorizeCard(event.Winner))
	case event.Accusation != nil:
		C.Warn.Println("Every player has been eliminated.")
	default:
		C.Warn.Println("Game ended without a correct accusation.")
	}

	solutionForPrinting := make(map[string]string)
	for _, cat := range config.Categories {
		solutionForPrinting[cat.String()] = event.Solution[cat]
	}
	C.Info.Printf("The correct solution was: %v\n", solutionForPrinting)
}

// DisplayNotes renders the current notes of any player.
func DisplayNotes(p player.Player) {
	nb := p.Notebook()
	if nb == nil {
		return
	}
	fmt.Println()
	C.Header.Printf("--- Notes for %s ---\n", ColorizeCard(p.Name()))
	RenderNotes(nb)
}
