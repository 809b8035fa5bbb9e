package greedisland

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeLocation is returned by Location.GetType
const EntityTypeLocation = "location"

// Location is a static place on the island. Difficulty (1-10) is only passed
// to the game master as context; nothing in the engine enforces it.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
	ImageURL    string `json:"image_url"`
}

var _ core.Entity = (*Location)(nil)

// GetID implements core.Entity
func (l *Location) GetID() string {
	return l.ID
}

// GetType implements core.Entity
func (l *Location) GetType() string {
	return EntityTypeLocation
}

// Locations is the fixed travel order. Travel wraps from the last back to the first.
var Locations = []Location{
	{
		ID:          "start",
		Name:        "Start (Grassland)",
		Description: "A wide grassland where new players arrive. A gentle breeze blows across it.",
		Difficulty:  1,
		ImageURL:    "https://picsum.photos/seed/grassland_hxh/800/600",
	},
	{
		ID:          "antokiba",
		Name:        "Antokiba (City of Prizes)",
		Description: "A busy market town full of bounty hunters that hosts monthly contests.",
		Difficulty:  2,
		ImageURL:    "https://picsum.photos/seed/market_town_hxh/800/600",
	},
	{
		ID:          "masadora",
		Name:        "Masadora (City of Magic)",
		Description: "A giant city of rock, famous for its spell card shops.",
		Difficulty:  4,
		ImageURL:    "https://picsum.photos/seed/rock_city_magic/800/600",
	},
	{
		ID:          "soufrabi",
		Name:        "Soufrabi (Port City)",
		Description: "A coastal city overrun with pirates. Its lighthouse hides a secret.",
		Difficulty:  7,
		ImageURL:    "https://picsum.photos/seed/pirate_port_hxh/800/600",
	},
	{
		ID:          "aiai",
		Name:        "Aiai (City of Romance)",
		Description: "A pink city of love and encounters where high-level monsters lurk.",
		Difficulty:  9,
		ImageURL:    "https://picsum.photos/seed/romantic_city_pink/800/600",
	},
	{
		ID:          "forest",
		Name:        "Great Forest",
		Description: "An untouched primeval forest, home to many rare monsters.",
		Difficulty:  6,
		ImageURL:    "https://picsum.photos/seed/jungle_deep/800/600",
	},
}

// LocationIndex returns the index of the location with id, or -1
func LocationIndex(id string) int {
	for i := range Locations {
		if Locations[i].ID == id {
			return i
		}
	}
	return -1
}
