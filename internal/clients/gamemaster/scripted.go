package gamemaster

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.uber.org/zap"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
)

// Scripted odds, rolled on a d100
const (
	specifiedRewardChance = 5
	commonRewardChance    = 45
	statBuffChance        = 1
)

type encounter struct {
	title       string
	description string
	monster     string
	choices     []greedisland.Choice
}

var encounters = []encounter{
	{
		title:       "Bubble Horse Sighting",
		description: "A horse made of soap bubbles trots across the path. One wrong touch and it will pop.",
		monster:     "Bubble Horse",
		choices: []greedisland.Choice{
			{ID: "catch", Text: "Try to catch it gently", Type: greedisland.ChoiceRisky},
			{ID: "follow", Text: "Follow it from a distance", Type: greedisland.ChoiceNeutral},
		},
	},
	{
		title:       "Bandit Ambush",
		description: "Three card thieves step out from behind the rocks and demand your binder.",
		choices: []greedisland.Choice{
			{ID: "fight", Text: "Fight them head-on", Type: greedisland.ChoiceAggressive},
			{ID: "guard", Text: "Guard your binder and back away", Type: greedisland.ChoiceDefensive},
			{ID: "bluff", Text: "Bluff about a stronger partner nearby", Type: greedisland.ChoiceRisky},
		},
	},
	{
		title:       "Wandering Merchant",
		description: "An old merchant waves you over, offering to trade a rumor for a little of your time.",
		choices: []greedisland.Choice{
			{ID: "listen", Text: "Listen to the rumor", Type: greedisland.ChoiceNeutral},
			{ID: "haggle", Text: "Haggle for something better", Type: greedisland.ChoiceRisky},
		},
	},
	{
		title:       "Stone Golem",
		description: "The ground shakes as a stone golem rises from the hillside, eyes glowing.",
		monster:     "Stone Golem",
		choices: []greedisland.Choice{
			{ID: "strike", Text: "Strike at its core", Type: greedisland.ChoiceAggressive},
			{ID: "brace", Text: "Brace and wait for an opening", Type: greedisland.ChoiceDefensive},
			{ID: "flee", Text: "Run for the trees", Type: greedisland.ChoiceNeutral},
		},
	},
	{
		title:       "Hidden Cave",
		description: "Behind a waterfall you spot the mouth of a cave. Something glitters inside.",
		choices: []greedisland.Choice{
			{ID: "explore", Text: "Explore the cave", Type: greedisland.ChoiceRisky},
			{ID: "search", Text: "Search the entrance carefully", Type: greedisland.ChoiceNeutral},
		},
	},
	{
		title:       "Lizard Swarm",
		description: "Dozens of fire lizards pour out of the grass and surround you.",
		monster:     "Fire Lizard",
		choices: []greedisland.Choice{
			{ID: "burst", Text: "Burst through the swarm", Type: greedisland.ChoiceAggressive},
			{ID: "shield", Text: "Shield yourself with Ren", Type: greedisland.ChoiceDefensive},
		},
	},
}

var commonItems = []struct {
	name        string
	rank        greedisland.Rank
	description string
}{
	{name: "Healing Herb", rank: greedisland.RankG, description: "A bitter leaf that closes small wounds."},
	{name: "Traveler's Ration", rank: greedisland.RankH, description: "Dry bread and jerky. Better than nothing."},
	{name: "Glowing Pebble", rank: greedisland.RankF, description: "It hums faintly when danger is near."},
}

var commonMonsters = []struct {
	name        string
	rank        greedisland.Rank
	description string
}{
	{name: "Bubble Horse", rank: greedisland.RankC, description: "A horse of soap bubbles. Fragile and fast."},
	{name: "Fire Lizard", rank: greedisland.RankE, description: "A small lizard that sneezes sparks."},
	{name: "Stone Golem", rank: greedisland.RankD, description: "Slow, heavy and very stubborn."},
}

var numberPattern = regexp.MustCompile(`\d+`)

// ScriptedConfig configures the offline game master
type ScriptedConfig struct {
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	Logger *zap.Logger
}

// Scripted is an offline Client that rolls encounters and outcomes with dice
// instead of calling a model
type Scripted struct {
	roller dice.Roller
	logger *zap.Logger
}

var _ Client = (*Scripted)(nil)

// NewScripted creates the offline game master
func NewScripted(cfg *ScriptedConfig) (*Scripted, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scripted{roller: roller, logger: logger}, nil
}

// rolls keeps the first roller error of one request
type rolls struct {
	roller dice.Roller
	err    error
}

func (r *rolls) d(size int) int {
	if r.err != nil || size <= 0 {
		return 0
	}
	value, err := r.roller.Roll(size)
	if err != nil {
		r.err = err
		return 0
	}
	return value
}

// index rolls a zero-based index below n
func (r *rolls) index(n int) int {
	value := r.d(n)
	if value < 1 || value > n {
		return 0
	}
	return value - 1
}

func (r *rolls) sum(count, size int) int {
	if r.err != nil || count <= 0 || size <= 0 {
		return 0
	}
	values, err := r.roller.RollN(count, size)
	if err != nil {
		r.err = err
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// RequestScenario implements Client
func (s *Scripted) RequestScenario(_ context.Context, input *ScenarioInput) (*greedisland.Scenario, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r := &rolls{roller: s.roller}
	picked := encounters[r.index(len(encounters))]
	if r.err != nil {
		return nil, errors.Wrap(r.err, "failed to roll encounter")
	}

	choices := make([]greedisland.Choice, len(picked.choices))
	copy(choices, picked.choices)

	return &greedisland.Scenario{
		Title:       picked.title,
		Description: fmt.Sprintf("%s (%s)", picked.description, input.Player.LocationName),
		Choices:     choices,
		MonsterName: picked.monster,
	}, nil
}

// RequestResolution implements Client. A d20 plus level is checked against
// 10 plus the location difficulty; the choice type shifts the check, the
// damage and the reward odds.
func (s *Scripted) RequestResolution(
	_ context.Context, input *ResolutionInput,
) (*greedisland.ActionResolution, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p := input.Player
	difficulty := p.Difficulty
	if difficulty < 1 {
		difficulty = 1
	}

	r := &rolls{roller: s.roller}
	check := r.d(20) + p.Level
	target := 10 + difficulty
	rewardRoll := 0

	switch input.ChoiceType {
	case greedisland.ChoiceAggressive:
		check += p.Attack / 10
	case greedisland.ChoiceRisky:
		check -= 3
	}
	success := check >= target

	resolution := &greedisland.ActionResolution{}

	damage := 0
	if success {
		if input.ChoiceType == greedisland.ChoiceAggressive {
			damage = r.d(difficulty*3) - p.Defense/2
		}
	} else {
		damage = r.sum(difficulty, 6) - p.Defense/2
	}
	if input.ChoiceType == greedisland.ChoiceDefensive {
		damage /= 2
	}
	resolution.DamageTaken = nonNegative(damage)

	if success {
		resolution.XPGained = 10*difficulty + r.d(10)
		if input.ChoiceType == greedisland.ChoiceNeutral {
			resolution.HPRestored = r.d(10)
		}

		rewardRoll = r.d(100)
		if input.ChoiceType == greedisland.ChoiceRisky {
			rewardRoll = (rewardRoll + 1) / 2
		}
		resolution.RewardCard = s.reward(r, rewardRoll)

		if r.d(100) <= statBuffChance {
			resolution.StatBuff = s.buff(r)
		}
	}

	if r.err != nil {
		return nil, errors.Wrap(r.err, "failed to roll resolution")
	}

	resolution.Narrative = narrate(input, success, resolution)
	s.logger.Debug("scripted resolution",
		zap.Bool("success", success),
		zap.Int("check", check),
		zap.Int("target", target),
		zap.Int("reward_roll", rewardRoll))

	return resolution, nil
}

func (s *Scripted) reward(r *rolls, roll int) *greedisland.RewardDescriptor {
	switch {
	case roll <= specifiedRewardChance:
		number := r.d(greedisland.SpecifiedSlotCount) - 1
		card := greedisland.ResolveSpecifiedCard(number, "")
		return &greedisland.RewardDescriptor{
			Name:        card.Name,
			Rank:        card.Rank,
			Type:        greedisland.CardTypeSpecified,
			Description: card.Description,
			Number:      number,
			HasNumber:   true,
		}
	case roll <= commonRewardChance:
		if r.d(2) == 1 {
			item := commonItems[r.index(len(commonItems))]
			return &greedisland.RewardDescriptor{
				Name:        item.name,
				Rank:        item.rank,
				Type:        greedisland.CardTypeItem,
				Description: item.description,
			}
		}
		monster := commonMonsters[r.index(len(commonMonsters))]
		return &greedisland.RewardDescriptor{
			Name:        monster.name,
			Rank:        monster.rank,
			Type:        greedisland.CardTypeMonster,
			Description: monster.description,
		}
	default:
		return nil
	}
}

func (s *Scripted) buff(r *rolls) *greedisland.StatBuff {
	stats := []greedisland.Stat{greedisland.StatAttack, greedisland.StatDefense, greedisland.StatMaxHP}
	stat := stats[r.index(len(stats))]
	return &greedisland.StatBuff{
		Stat:       stat,
		Amount:     r.d(3) + 1,
		SourceName: "Hermit's Charm",
	}
}

func narrate(input *ResolutionInput, success bool, resolution *greedisland.ActionResolution) string {
	var b strings.Builder
	if success {
		fmt.Fprintf(&b, "You chose to %s. It works out.", strings.ToLower(input.ChoiceText))
	} else {
		fmt.Fprintf(&b, "You chose to %s. Things go badly.", strings.ToLower(input.ChoiceText))
	}
	if resolution.DamageTaken > 0 {
		fmt.Fprintf(&b, " You take %d damage.", resolution.DamageTaken)
	}
	if resolution.RewardCard != nil {
		fmt.Fprintf(&b, " Something drops at your feet: %s.", resolution.RewardCard.Name)
	}
	return b.String()
}

// ConsultBook implements Client. Specified card numbers and location names
// are answered from the static catalog.
func (s *Scripted) ConsultBook(_ context.Context, query string) (string, error) {
	lower := strings.ToLower(query)

	if match := numberPattern.FindString(query); match != "" {
		if number, err := strconv.Atoi(match); err == nil && number >= 0 && number < greedisland.SpecifiedSlotCount {
			card := greedisland.ResolveSpecifiedCard(number, "")
			return fmt.Sprintf("%s, rank %s. %s", card.Label(), card.Rank, card.Description), nil
		}
	}

	for _, location := range greedisland.Locations {
		if strings.Contains(lower, strings.ToLower(location.ID)) {
			return fmt.Sprintf("%s: %s Danger level %d.", location.Name, location.Description, location.Difficulty), nil
		}
	}

	return "Collect all 100 specified cards to clear Greed Island. Spell cards can be bought in Masadora.", nil
}
