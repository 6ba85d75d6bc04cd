package cli

import (
	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/player"
)

// The CLI asks the person at the terminal to decide for human players.
var _ player.Prompter = (*CLI)(nil)

func (c *CLI) PromptSuggestion(p *player.HumanPlayer) map[config.CardCategory]string {
	C.Header.Printf("\n--- Your turn, %s ---\n", ColorizeCard(p.Name()))
	RenderNotes(p.Notebook())
	return c.promptForTriple(p.Config(), "do you suggest")
}

func (c *CLI) PromptAccusation(p *player.HumanPlayer) map[config.CardCategory]string {
	if solution, ok := p.Notebook().SolutionIfKnown(); ok {
		C.Yes.Printf("Your notes point to: %s\n", formatTriple(solution))
	}
	if !c.promptForYesNo(ColorizeCard(p.Name()) + ", do you want to make an accusation?") {
		return nil
	}
	return c.promptForTriple(p.Config(), "do you accuse")
}

func (c *CLI) PromptCardToShow(p *player.HumanPlayer, options []string) string {
	return c.promptForSelection(ColorizeCard(p.Name())+", which card will you show?", options)
}
