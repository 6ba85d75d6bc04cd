package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultMaxTurns is used when a config file does not set max_turns.
const DefaultMaxTurns = 50

// CardCategory defines the type of a card using a typed enum.
type CardCategory int

const (
	CategorySuspect CardCategory = iota
	CategoryWeapon
	CategoryRoom
)

// Categories lists every category in display order.
var Categories = []CardCategory{CategorySuspect, CategoryWeapon, CategoryRoom}

func (cc CardCategory) String() string {
	return []string{"suspects", "weapons", "rooms"}[cc]
}

// GameConfig holds the static definitions for a game of Cluedo.
type GameConfig struct {
	Suspects []string `json:"suspects" yaml:"suspects" validate:"required,min=1,unique,dive,required"`
	Weapons  []string `json:"weapons" yaml:"weapons" validate:"required,min=1,unique,dive,required"`
	Rooms    []string `json:"rooms" yaml:"rooms" validate:"required,min=1,unique,dive,required"`
	MaxTurns int      `json:"max_turns" yaml:"max_turns" validate:"gte=0"`
	// AllowBluff keeps an unanswered suggestion from proving the envelope
	// when the suggester may hold its cards. Games seating AI players always
	// allow it, since they pad suggestions with their own cards.
	AllowBluff bool                    `json:"allow_bluff" yaml:"allow_bluff"`
	AllCards   []string                `json:"-" yaml:"-"`
	CardToType map[string]CardCategory `json:"-" yaml:"-"`
}

var validate = validator.New()

// Load reads, parses, and prepares the game configuration from a file.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg GameConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.prepare(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// New builds a validated configuration from in-memory card lists.
func New(suspects, weapons, rooms []string) (*GameConfig, error) {
	cfg := &GameConfig{
		Suspects: append([]string(nil), suspects...),
		Weapons:  append([]string(nil), weapons...),
		Rooms:    append([]string(nil), rooms...),
	}
	if err := cfg.prepare(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *GameConfig) prepare() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.MaxTurns == 0 {
		c.MaxTurns = DefaultMaxTurns
	}

	c.AllCards = nil
	c.CardToType = make(map[string]CardCategory)
	sort.Strings(c.Suspects)
	sort.Strings(c.Weapons)
	sort.Strings(c.Rooms)

	for _, cat := range Categories {
		for _, card := range c.CardListForCategory(cat) {
			if prev, dup := c.CardToType[card]; dup {
				return fmt.Errorf("card %q listed in both %s and %s", card, prev, cat)
			}
			c.AllCards = append(c.AllCards, card)
			c.CardToType[card] = cat
		}
	}
	return nil
}

// DeepCopy creates a new GameConfig with all slices copied to prevent shared state.
func (c *GameConfig) DeepCopy() *GameConfig {
	newCfg := &GameConfig{
		MaxTurns:   c.MaxTurns,
		AllowBluff: c.AllowBluff,
		CardToType: make(map[string]CardCategory),
	}
	newCfg.Suspects = make([]string, len(c.Suspects))
	copy(newCfg.Suspects, c.Suspects)
	newCfg.Weapons = make([]string, len(c.Weapons))
	copy(newCfg.Weapons, c.Weapons)
	newCfg.Rooms = make([]string, len(c.Rooms))
	copy(newCfg.Rooms, c.Rooms)
	newCfg.AllCards = make([]string, len(c.AllCards))
	copy(newCfg.AllCards, c.AllCards)
	for k, v := range c.CardToType {
		newCfg.CardToType[k] = v
	}
	return newCfg
}

// CardListForCategory is a helper to get the correct card list from the config.
func (c *GameConfig) CardListForCategory(cat CardCategory) []string {
	switch cat {
	case CategorySuspect:
		return c.Suspects
	case CategoryWeapon:
		return c.Weapons
	case CategoryRoom:
		return c.Rooms
	default:
		return nil
	}
}

// HandSizes returns how many cards each seat receives when the non-solution
// cards are dealt round-robin starting at seat 0.
func (c *GameConfig) HandSizes(players int) []int {
	if players <= 0 {
		return nil
	}
	dealt := len(c.AllCards) - len(Categories)
	sizes := make([]int, players)
	for i := range sizes {
		sizes[i] = dealt / players
		if i < dealt%players {
			sizes[i]++
		}
	}
	return sizes
}
