package engine

import (
	"fmt"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

// ItemHealAmount is the HP restored by using an item card
const ItemHealAmount = 20

// InsertOutcome names the branch InsertCard took
type InsertOutcome string

// Insert outcomes
const (
	OutcomeSpecifiedSlotted   InsertOutcome = "specified_slotted"
	OutcomeDuplicateToFree    InsertOutcome = "duplicate_to_free"
	OutcomeDuplicateDiscarded InsertOutcome = "duplicate_discarded"
	OutcomeSpellCollected     InsertOutcome = "spell_collected"
	OutcomeFreeCollected      InsertOutcome = "free_collected"
	OutcomeFreeDiscarded      InsertOutcome = "free_discarded"
)

// InsertResult records where an acquired card ended up
type InsertResult struct {
	Outcome InsertOutcome
	Card    *greedisland.Card
}

// Stored reports whether the card landed in a container
func (r *InsertResult) Stored() bool {
	return r.Outcome != OutcomeDuplicateDiscarded && r.Outcome != OutcomeFreeDiscarded
}

// Narrative is the single game log line for the outcome
func (r *InsertResult) Narrative() string {
	switch r.Outcome {
	case OutcomeSpecifiedSlotted:
		return fmt.Sprintf("Card %s stored in the specified slots!", r.Card.Label())
	case OutcomeDuplicateToFree:
		return fmt.Sprintf("Duplicate specified card [No.%03d] found. Moved to the free slots.", r.Card.Number)
	case OutcomeDuplicateDiscarded:
		return fmt.Sprintf("Duplicate specified card [No.%03d] found, but the free slots are full! The card crumbled to dust.", r.Card.Number)
	case OutcomeSpellCollected:
		return fmt.Sprintf("Obtained spell card: %s.", r.Card.Name)
	case OutcomeFreeCollected:
		return fmt.Sprintf("%s card %s stored in the free slots.", cardKind(r.Card), r.Card.Name)
	default:
		return "The free slots are full! The card crumbled to dust."
	}
}

func cardKind(card *greedisland.Card) string {
	switch card.Type {
	case greedisland.CardTypeMonster:
		return "Monster"
	case greedisland.CardTypeSpecified:
		return "Specified"
	default:
		return "Item"
	}
}

// InsertCard is the single entry point for card acquisition. A specified card
// goes to its numbered slot when that slot is empty; an occupied slot is never
// overwritten and the duplicate falls through to the free slots. Spells are
// always collected. Everything else goes to the free slots while they have room.
func InsertCard(player *greedisland.PlayerState, card *greedisland.Card) *InsertResult {
	if card.Type == greedisland.CardTypeSpecified && card.IsSpecifiedNumber() {
		if player.SpecifiedSlots[card.Number] == nil {
			player.SpecifiedSlots[card.Number] = card
			return &InsertResult{Outcome: OutcomeSpecifiedSlotted, Card: card}
		}
		if appendFree(player, card) {
			return &InsertResult{Outcome: OutcomeDuplicateToFree, Card: card}
		}
		return &InsertResult{Outcome: OutcomeDuplicateDiscarded, Card: card}
	}

	if card.Type == greedisland.CardTypeSpell {
		player.SpellCards = append(player.SpellCards, card)
		return &InsertResult{Outcome: OutcomeSpellCollected, Card: card}
	}

	if appendFree(player, card) {
		return &InsertResult{Outcome: OutcomeFreeCollected, Card: card}
	}
	return &InsertResult{Outcome: OutcomeFreeDiscarded, Card: card}
}

func appendFree(player *greedisland.PlayerState, card *greedisland.Card) bool {
	if len(player.FreeSlots) >= greedisland.MaxFreeSlots {
		return false
	}
	player.FreeSlots = append(player.FreeSlots, card)
	return true
}

// SpellUse describes a spell card that was consumed
type SpellUse struct {
	Card *greedisland.Card
	// Destination is set when the spell granted travel
	Destination *greedisland.Location
}

// UseSpellCard removes the spell with cardID. A travel-granting spell also
// advances the location. It returns nil when the card is not held.
func UseSpellCard(player *greedisland.PlayerState, cardID string) *SpellUse {
	card := player.FindSpellCard(cardID)
	if card == nil {
		return nil
	}

	use := &SpellUse{Card: card}
	if IsTravelSpell(card) {
		destination := AdvanceLocation(player)
		use.Destination = &destination
	}

	player.SpellCards = removeCard(player.SpellCards, cardID)
	return use
}

// IsTravelSpell reports whether using the spell moves the player
func IsTravelSpell(card *greedisland.Card) bool {
	return card.Type == greedisland.CardTypeSpell && card.Name == greedisland.SpellAccompany
}

// UseItemCard heals ItemHealAmount and removes the item card from the free
// slots. It returns nil when the free slots hold no such item card.
func UseItemCard(player *greedisland.PlayerState, cardID string) *greedisland.Card {
	card := player.FindFreeCard(cardID)
	if card == nil || card.Type != greedisland.CardTypeItem {
		return nil
	}

	ApplyHeal(player, ItemHealAmount)
	player.FreeSlots = removeCard(player.FreeSlots, cardID)
	return card
}

func removeCard(cards []*greedisland.Card, cardID string) []*greedisland.Card {
	kept := make([]*greedisland.Card, 0, len(cards))
	for _, card := range cards {
		if card.ID != cardID {
			kept = append(kept, card)
		}
	}
	return kept
}
