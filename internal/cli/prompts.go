package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cluedo-toolbox/internal/config"
	"cluedo-toolbox/internal/deduction"
	"cluedo-toolbox/internal/game"
	"cluedo-toolbox/internal/player"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// SuspectColors maps suspect names to specific colors for display.
var SuspectColors = map[string]*color.Color{
	"Miss Scarlett":   color.New(color.FgRed),
	"Colonel Mustard": color.New(color.FgYellow),
	"Mrs. White":      color.New(color.FgWhite),
	"Mr. Green":       color.New(color.FgGreen),
	"Mrs. Peacock":    color.New(color.FgBlue),
	"Professor Plum":  color.New(color.FgMagenta),
}

// ColorizeCard returns a card name as a colored string if it's a suspect.
func ColorizeCard(name string) string {
	if c, ok := SuspectColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// formatTriple prints a suggestion or accusation in category order.
func formatTriple(cards map[config.CardCategory]string) string {
	var parts []string
	for _, cat := range config.Categories {
		if card, ok := cards[cat]; ok {
			parts = append(parts, ColorizeCard(card))
		}
	}
	return strings.Join(parts, ", ")
}

// RenderNotes displays a notebook as a score sheet: one row per card, one
// column per player plus the envelope, followed by the open "holds one of"
// constraints.
func RenderNotes(nb *player.Notebook) {
	reg := nb.Registry()
	e := nb.Engine()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s's Detective Notes", nb.Owner()))
	header := table.Row{"ID", "Card", "Type"}
	for _, h := range reg.Holders() {
		header = append(header, ColorizeCard(reg.HolderName(h)))
	}
	t.AppendHeader(header)

	cards := reg.Cards()
	for i, card := range cards {
		if i > 0 && card.Category() != cards[i-1].Category() {
			t.AppendSeparator()
		}
		row := table.Row{i + 1, ColorizeCard(card.Name()), card.Category().String()}
		for _, h := range reg.Holders() {
			row = append(row, statusToSymbol(e.Status(card, h)))
		}
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()

	for _, d := range e.Disjunctions() {
		var names []string
		for _, c := range d.Cards {
			names = append(names, ColorizeCard(c.Name()))
		}
		C.Maybe.Printf(" %s holds one of: %s\n", ColorizeCard(reg.HolderName(d.Holder)), strings.Join(names, ", "))
	}
	if err := e.Err(); err != nil {
		C.No.Printf(" These notes contradict themselves: %v\n", err)
	}
}

func statusToSymbol(status deduction.CardStatus) string {
	switch status {
	case deduction.StatusYes:
		return C.Yes.Sprint("✔")
	case deduction.StatusNo:
		return C.No.Sprint("✖")
	default:
		return C.Maybe.Sprint("?")
	}
}

// RenderHistory lists every observation a notebook has recorded.
func RenderHistory(nb *player.Notebook) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Game History")
	t.AppendHeader(table.Row{"#", "Kind", "Event"})
	for i, o := range nb.Engine().History() {
		t.AppendRow(table.Row{i + 1, o.Kind.String(), nb.Describe(o)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// RenderBench prints the outcome of a batch of simulations.
func RenderBench(r *game.BatchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%d games, %d AI players", r.Games, r.Players))
	t.AppendHeader(table.Row{"Seat", "Wins", "Win %"})
	for seat, wins := range r.WinsBySeat {
		t.AppendRow(table.Row{seat + 1, wins, fmt.Sprintf("%.1f", 100*float64(wins)/float64(r.Games))})
	}
	t.AppendFooter(table.Row{"Correct accusations", r.CorrectAccusations, ""})
	t.AppendFooter(table.Row{"Wrong accusations", r.WrongAccusations, ""})
	t.AppendFooter(table.Row{"Unfinished games", r.Unfinished, ""})
	t.AppendFooter(table.Row{"Average turns", fmt.Sprintf("%.1f", r.AverageTurns()), ""})
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}, {Number: 3, Align: text.AlignRight}})
	t.Render()
}

// --- Prompting and Usage ---

func (c *CLI) printDetectiveHelp() {
	C.Header.Println("\n--- Detective Mode Help ---")
	fmt.Println("Log events from your real-life game, and the AI will track everything for you.")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"log", "l", "Log a full game turn (suggestion and result)."},
		{"reveal", "r", "Log a single card revealed by a player."},
		{"accuse", "a", "Log an accusation and whether it was correct."},
		{"suggest", "s", "Ask the AI co-pilot for a strategic suggestion."},
		{"notes", "n", "Display the AI's current detective notes grid."},
		{"history", "hi", "List every event logged so far."},
		{"hand", "ha", "Display the cards currently in your hand."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Exit detective mode."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()

	C.Prompt.Print("\nEnter a command: ")
}

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Println("\nGoodbye!")
			c.line.Close()
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

func (c *CLI) promptForInt(prompt string, min, max int) int {
	for {
		input := c.promptForString(prompt)
		num, err := strconv.Atoi(input)
		if err != nil || num < min || num > max {
			C.Warn.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return num
	}
}

func (c *CLI) promptForYesNo(prompt string) bool {
	for {
		switch strings.ToLower(c.promptForString(prompt + " (y/n): ")) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		C.Warn.Println("Please answer 'y' or 'n'.")
	}
}

func (c *CLI) promptForSelection(prompt string, options []string) string {
	for {
		C.Header.Println("\n" + prompt)
		for i, opt := range options {
			fmt.Printf(" %2d: %s\n", i+1, ColorizeCard(opt))
		}
		input := c.promptForString("Enter number or name: ")
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return options[num-1]
		}
		for _, opt := range options {
			if strings.EqualFold(opt, input) {
				return opt
			}
		}
		C.Warn.Println("Invalid selection.")
	}
}

// promptForTriple asks for one card of each category.
func (c *CLI) promptForTriple(cfg *config.GameConfig, verb string) map[config.CardCategory]string {
	triple := make(map[config.CardCategory]string)
	for _, cat := range config.Categories {
		triple[cat] = c.promptForSelection(fmt.Sprintf("Which of the %s %s?", cat, verb), cfg.CardListForCategory(cat))
	}
	return triple
}

func (c *CLI) promptForCards(cfg *config.GameConfig, requireAtLeastOne bool, exactCount int) []string {
	var cards []string
	cardSet := make(map[string]struct{})
	C.Header.Println("\n--- Card List ---")
	for i, card := range cfg.AllCards {
		fmt.Printf("%2d: %-18s", i+1, card)
		if (i+1)%3 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()

	for {
		if exactCount > 0 && len(cards) == exactCount {
			break
		}
		prompt := "Enter card name/number"
		if exactCount > 0 {
			prompt = fmt.Sprintf("Enter card %d of %d", len(cards)+1, exactCount)
		} else {
			prompt += " (or 'done')"
		}
		input := c.promptForString(prompt + ": ")
		if exactCount == 0 && strings.ToLower(input) == "done" {
			if requireAtLeastOne && len(cards) == 0 {
				C.Warn.Println("Please enter at least one card.")
				continue
			}
			break
		}
		var foundCard string
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(cfg.AllCards) {
			foundCard = cfg.AllCards[num-1]
		} else {
			for _, card := range cfg.AllCards {
				if strings.EqualFold(card, input) {
					foundCard = card
					break
				}
			}
		}
		if foundCard == "" {
			C.Warn.Printf("Error: Card '%s' not found.\n", input)
		} else if _, exists := cardSet[foundCard]; exists {
			C.Warn.Printf("You have already entered '%s'.\n", foundCard)
		} else {
			cards = append(cards, foundCard)
			cardSet[foundCard] = struct{}{}
			C.Info.Printf(" -> Added: %s\n", ColorizeCard(foundCard))
		}
	}
	return cards
}
