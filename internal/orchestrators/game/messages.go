package game

// Game log lines
const (
	msgWelcome          = "Welcome to Greed Island. Current location: %s"
	msgExploring        = "Setting out to explore..."
	msgConnectionLost   = "Connection interrupted."
	msgResolutionFailed = "An error occurred while judging the outcome."
	msgDamage           = "Took %d damage!"
	msgHeal             = "Restored %d HP."
	msgXP               = "Gained %d XP."
	msgLevelUp          = "Level up! Lv.%d!! HP fully restored, stats increased."
	msgStatBuff         = "Stat boost: %s (%s +%d)"
	msgCardGained       = "GAIN! Obtained card: %s"
	msgMoved            = "Moved to %s."
	msgUsedSpell        = "Used spell: %s"
	msgUsedItem         = "Used %s and recovered some HP."
	msgVictory          = "Congratulations! You have collected every specified card!"
	msgGameOver         = "Your HP has run out. Game over."
	msgChooseRewards    = "Choose %d cards to take home."
	msgSummary          = "Congratulations! You brought back: %s. Game over!"
)
