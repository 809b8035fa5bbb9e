package engine

import (
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

// AdvanceLocation moves the player to the next location in the fixed order,
// wrapping from the last back to the first, and returns the new location.
func AdvanceLocation(player *greedisland.PlayerState) greedisland.Location {
	current := greedisland.LocationIndex(player.CurrentLocation.ID)
	next := greedisland.Locations[(current+1)%len(greedisland.Locations)]
	player.CurrentLocation = next
	return next
}
