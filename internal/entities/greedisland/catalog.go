package greedisland

import "fmt"

const (
	// SpecifiedCardLimit is the default limit for catalog specified cards
	SpecifiedCardLimit = 10

	// GeneratedCardLimit is the default limit for cards built from a reward descriptor
	GeneratedCardLimit = 20

	// placeholderRank is used for specified numbers the catalog does not define
	placeholderRank = RankB
)

// CatalogEntry is the canonical data for one specified card
type CatalogEntry struct {
	Name        string
	Rank        Rank
	Description string
}

// SpecifiedCatalog is sparse: numbers missing here resolve to a placeholder
var SpecifiedCatalog = map[int]CatalogEntry{
	0:  {Name: "Ruler's Blessing", Rank: RankSS, Description: "Awarded to whoever collects cards 001-099 and wins the quiz."},
	1:  {Name: "Patch of Forest", Rank: RankSS, Description: "The entrance to a vast forest."},
	2:  {Name: "Patch of Shore", Rank: RankSS, Description: "An undersea cave leading to the sea god's dwelling."},
	3:  {Name: "Fountain Pot", Rank: RankA, Description: "A pot that endlessly wells up with clear water."},
	4:  {Name: "Beauty Spa Hot Spring", Rank: RankA, Description: "Thirty minutes a day leaves your skin as soft as a baby's."},
	6:  {Name: "Wine Spring", Rank: RankA, Description: "Water drawn from this spring turns to wine after a week."},
	7:  {Name: "Pregnancy Stone", Rank: RankS, Description: "Carry this 3kg stone for a month and anyone can become pregnant."},
	17: {Name: "Breath of Archangel", Rank: RankSS, Description: "A single breath that heals any wound or illness. Must be used all at once."},
	25: {Name: "Risky Dice", Rank: RankB, Description: "A great misfortune on a bad roll, tremendous luck on a good one."},
	38: {Name: "Mad Scientist's Muscle Enhancer", Rank: RankA, Description: "Drink daily to become incredibly strong, but you can never stop."},
	45: {Name: "Reply Ant", Rank: RankB, Description: "Hand it a letter and it always returns with the reply."},
	57: {Name: "Floating Stone", Rank: RankS, Description: "A one-carat stone that lets its bearer float in the air."},
	75: {Name: "Miracle Alexandrite", Rank: RankA, Description: "Its owner meets fortune no one else ever will."},
	84: {Name: "Holy Knight's Necklace", Rank: RankD, Description: "Reflects spells and lifts curses from cards."},
	85: {Name: "Blue Planet", Rank: RankSS, Description: "A blue ore that forms only in a specific atmosphere, like Earth seen from space."},
	95: {Name: "Cloak of Secrecy", Rank: RankA, Description: "Wearing it hides your form completely."},
}

// ResolveSpecifiedCard builds the specified card for number with a fresh id.
// It is total: undefined numbers produce a placeholder card.
func ResolveSpecifiedCard(number int, id string) *Card {
	if entry, ok := SpecifiedCatalog[number]; ok {
		return &Card{
			ID:          id,
			Number:      number,
			Name:        entry.Name,
			Description: entry.Description,
			Rank:        entry.Rank,
			Type:        CardTypeSpecified,
			Limit:       SpecifiedCardLimit,
		}
	}

	return &Card{
		ID:          id,
		Number:      number,
		Name:        fmt.Sprintf("Mysterious Item No.%d", number),
		Description: "A rare item found somewhere on Greed Island.",
		Rank:        placeholderRank,
		Type:        CardTypeSpecified,
		Limit:       SpecifiedCardLimit,
	}
}

// Initial spell names. Only SpellAccompany grants travel.
const (
	SpellAnalysis      = "Analysis"
	SpellAccompany     = "Accompany"
	SpellMagneticForce = "Magnetic Force"
)

// InitialSpells returns the spell cards every new player starts with
func InitialSpells() []*Card {
	return []*Card{
		{ID: "spell-1", Number: 1001, Name: SpellAnalysis, Rank: RankG, Type: CardTypeSpell,
			Description: "Reveals detailed information about a target card or player.", Limit: 50},
		{ID: "spell-2", Number: 1002, Name: SpellAccompany, Rank: RankF, Type: CardTypeSpell,
			Description: "Fly to a chosen player or town, even one never visited.", Limit: 40},
		{ID: "spell-3", Number: 1003, Name: SpellMagneticForce, Rank: RankF, Type: CardTypeSpell,
			Description: "Fly to a player or town you have met or visited.", Limit: 80},
	}
}
