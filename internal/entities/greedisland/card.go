// Package greedisland holds the Greed Island game entities: cards, locations,
// the player aggregate and the ephemeral encounter types.
package greedisland

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Rank is a card rarity. Ranks are ordered from SS (rarest) down to H.
type Rank string

// Card ranks, highest to lowest
const (
	RankSS Rank = "SS"
	RankS  Rank = "S"
	RankA  Rank = "A"
	RankB  Rank = "B"
	RankC  Rank = "C"
	RankD  Rank = "D"
	RankE  Rank = "E"
	RankF  Rank = "F"
	RankG  Rank = "G"
	RankH  Rank = "H"
)

// Ranks lists every rank from highest to lowest
var Ranks = []Rank{RankSS, RankS, RankA, RankB, RankC, RankD, RankE, RankF, RankG, RankH}

// Order returns the position of the rank in Ranks (0 is highest), or -1 when unknown
func (r Rank) Order() int {
	for i, rank := range Ranks {
		if rank == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the known ranks
func (r Rank) Valid() bool {
	return r.Order() >= 0
}

// Higher reports whether r outranks other
func (r Rank) Higher(other Rank) bool {
	return r.Valid() && other.Valid() && r.Order() < other.Order()
}

// CardType decides which binder container a card is routed to
type CardType string

// Card types
const (
	CardTypeSpecified CardType = "SPECIFIED"
	CardTypeSpell     CardType = "SPELL"
	CardTypeItem      CardType = "ITEM"
	CardTypeMonster   CardType = "MONSTER"
)

// CardTypes lists every card type
var CardTypes = []CardType{CardTypeSpecified, CardTypeSpell, CardTypeItem, CardTypeMonster}

// Valid reports whether t is one of the known card types
func (t CardType) Valid() bool {
	for _, known := range CardTypes {
		if known == t {
			return true
		}
	}
	return false
}

const (
	// SpecifiedSlotCount is the number of numbered specified slots (0-99)
	SpecifiedSlotCount = 100

	// MaxFreeSlots bounds the free slot container
	MaxFreeSlots = 50

	// EntityTypeCard is returned by Card.GetType
	EntityTypeCard = "card"
)

// Card is an immutable collectible. Containers replace or remove cards, they
// never modify one in place.
type Card struct {
	ID          string   `json:"id"`
	Number      int      `json:"number"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rank        Rank     `json:"rank"`
	Type        CardType `json:"type"`
	Limit       int      `json:"limit"`
}

var _ core.Entity = (*Card)(nil)

// GetID implements core.Entity
func (c *Card) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Card) GetType() string {
	return EntityTypeCard
}

// IsSpecifiedNumber reports whether the card number addresses a specified slot
func (c *Card) IsSpecifiedNumber() bool {
	return c.Number >= 0 && c.Number < SpecifiedSlotCount
}

// Label is the display form used in the game log, e.g. "[No.017] Breath of Archangel"
func (c *Card) Label() string {
	if c.Type == CardTypeSpecified && c.IsSpecifiedNumber() {
		return fmt.Sprintf("[No.%03d] %s", c.Number, c.Name)
	}
	return c.Name
}
