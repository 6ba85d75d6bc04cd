package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"cluedo-toolbox/internal/ai"
	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/game"
	"cluedo-toolbox/internal/player"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const noOne = "No One"

// aiTurnDelay paces simulations so they can be followed on screen.
const aiTurnDelay = 50 * time.Millisecond

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Close restores the terminal.
func (c *CLI) Close() error {
	return c.line.Close()
}

// RunSimulation plays a game between numHumans people at this terminal and
// numAI AI players.
func (c *CLI) RunSimulation(cfg *config.GameConfig, numHumans, numAI int, rand *rand.Rand) error {
	C.Header.Println("--- Running Fast Simulation ---")

	// Create a builder and subscribe our renderer to it.
	builder := game.NewBuilder(cfg, c.log, rand).
		WithHumanPlayers(numHumans).
		WithAIPlayers(numAI).
		WithPrompter(c).
		WithTurnDelay(aiTurnDelay)
	builder.EventManager().Subscribe(&SimulationRenderer{})

	g, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	winnerName, _ := g.RunSimulation()

	// If there was a winner, display their notes
	for _, p := range g.Players {
		if p.Name() == winnerName {
			DisplayNotes(p)
			break
		}
	}
	return nil
}

// RunBench plays games AI-only simulations and prints the statistics.
func (c *CLI) RunBench(cfg *config.GameConfig, games, players int, rand *rand.Rand) error {
	C.Header.Printf("--- Benchmarking %d games ---\n", games)
	result, err := game.RunBatch(cfg, c.log, rand, games, players)
	if err != nil {
		return err
	}
	RenderBench(result)
	return nil
}

// RunDetective runs the AI co-pilot for a real-life game.
func (c *CLI) RunDetective(cfg *config.GameConfig) error {
	C.Info.Println("\n--- Starting Detective Mode Co-Pilot ---")
	numPlayers := c.promptForInt(fmt.Sprintf("How many players are in the real game? (2-%d): ", len(cfg.Suspects)), 2, len(cfg.Suspects))
	var playerNames []string
	for len(playerNames) < numPlayers {
		name := c.promptForString(fmt.Sprintf("Enter name for Player %d (in turn order): ", len(playerNames)+1))
		if contains(playerNames, name) {
			C.Warn.Printf("'%s' is already seated.\n", name)
			continue
		}
		playerNames = append(playerNames, name)
	}
	myPlayerName := c.promptForSelection("Which player are you?", playerNames)
	C.Info.Println("\nSelect the cards in your hand. Type 'done' when finished.")
	myHand := c.promptForCards(cfg, true, 0)

	var handSizes []int
	if c.promptForYesNo(fmt.Sprintf("Were the cards dealt one at a time starting with %s?", playerNames[0])) {
		handSizes = cfg.HandSizes(numPlayers)
	}

	// The co-pilot only reads its notes; its random source never matters.
	seeded := rand.New(rand.NewSource(1))
	brain := ai.NewAdvancedAIBrain(c.log, seeded, ai.NewRandomChooser(seeded))
	err := brain.Setup(player.Table{
		Config:     cfg.DeepCopy(),
		Players:    playerNames,
		Me:         myPlayerName,
		HandSizes:  handSizes,
		AllowBluff: cfg.AllowBluff,
	})
	if err != nil {
		return fmt.Errorf("failed to set up notes: %w", err)
	}
	if err := brain.Notebook().ReceiveHand(myHand); err != nil {
		return fmt.Errorf("failed to record hand: %w", err)
	}

	C.Info.Println("\nDetective Mode is active! Your co-pilot is ready.")
	RenderNotes(brain.Notebook())
	c.printDetectiveHelp()

	// Main command loop for detective mode
	for {
		input, err := c.line.Prompt("(detective) ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				C.Info.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		cmd := strings.ToLower(strings.Fields(input)[0])

		switch cmd {
		case "log", "l":
			c.handleLogCommand(brain)
		case "reveal", "r":
			c.handleRevealCommand(brain)
		case "accuse", "a":
			c.handleAccuseCommand(brain)
		case "suggest", "s":
			c.handleSuggestCommand(brain)
		case "notes", "n":
			RenderNotes(brain.Notebook())
		case "history", "hi":
			RenderHistory(brain.Notebook())
		case "hand", "ha":
			c.handleHandCommand(brain)
		case "help", "h":
			c.printDetectiveHelp()
		case "quit", "q":
			C.Info.Println("Exiting detective mode.")
			return nil
		default:
			C.Warn.Printf("Unknown command '%s'. Type 'help' for a list of commands.\n", cmd)
		}
	}
}

// record applies a logged event and reports what came of it.
func (c *CLI) record(brain *ai.AdvancedAIBrain, event events.Event) {
	nb := brain.Notebook()
	if err := nb.Apply(event); err != nil {
		C.No.Printf("Could not log that: %v\n", err)
		return
	}
	C.Info.Println("Logged. Here are your updated notes:")
	RenderNotes(nb)
	if solution, ok := nb.SolutionIfKnown(); ok {
		C.Yes.Printf("Solved! Accuse with: %s\n", formatTriple(solution))
	}
}

func (c *CLI) handleLogCommand(brain *ai.AdvancedAIBrain) {
	C.Info.Println("\n--- Log a Game Turn ---")
	suggester := c.promptForSelection("Who made the suggestion?", brain.Players())
	suggestion := c.promptForTriple(brain.Config(), "was suggested")

	var disproverOptions []string
	for _, p := range brain.Players() {
		if p != suggester {
			disproverOptions = append(disproverOptions, p)
		}
	}
	disprover := c.promptForSelection("Who disproved the suggestion?", append(disproverOptions, noOne))

	event := events.TurnResolvedEvent{SuggesterName: suggester, Suggestion: suggestion}
	if disprover != noOne {
		event.DisproverName = disprover
		if suggester == brain.Name() {
			event.RevealedCard = c.promptForSelection("What card were you shown?", []string{
				suggestion[config.CategorySuspect],
				suggestion[config.CategoryWeapon],
				suggestion[config.CategoryRoom],
			})
		}
	}
	c.record(brain, event)
}

func (c *CLI) handleRevealCommand(brain *ai.AdvancedAIBrain) {
	C.Info.Println("\n--- Log a Revealed Card ---")
	pName := c.promptForSelection("Which player revealed a card?", brain.Players())
	C.Info.Println("Which card did they reveal?")
	revealedCards := c.promptForCards(brain.Config(), true, 1)
	if len(revealedCards) == 0 {
		return
	}
	c.record(brain, events.CardRevealedEvent{HolderName: pName, Card: revealedCards[0]})
}

func (c *CLI) handleAccuseCommand(brain *ai.AdvancedAIBrain) {
	C.Info.Println("\n--- Log an Accusation ---")
	accuser := c.promptForSelection("Who made the accusation?", brain.Players())
	accusation := c.promptForTriple(brain.Config(), "was accused")
	correct := c.promptForYesNo("Was the accusation correct?")
	c.record(brain, events.AccusationResolvedEvent{AccuserName: accuser, Accusation: accusation, IsCorrect: correct})
}

func (c *CLI) handleSuggestCommand(brain *ai.AdvancedAIBrain) {
	C.Header.Println("\n--- AI Co-Pilot Suggestion ---")
	if solution := brain.ShouldAccuse(); solution != nil {
		C.Yes.Printf("You know the answer. Accuse with: %s\n", formatTriple(solution))
		return
	}
	C.Info.Printf("The AI suggests you propose: %s\n", formatTriple(brain.MakeSuggestion()))
}

func (c *CLI) handleHandCommand(p player.Player) {
	C.Header.Println("\n--- Your Hand ---")
	for _, card := range p.Hand() {
		C.Info.Println(" - " + ColorizeCard(card))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
