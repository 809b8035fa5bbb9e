package engine

import (
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

// Level-up growth
const (
	LevelUpMaxHP   = 20
	LevelUpAttack  = 5
	LevelUpDefense = 2

	// maxXPGrowthNum/maxXPGrowthDen is the 1.5x max XP multiplier
	maxXPGrowthNum = 3
	maxXPGrowthDen = 2
)

// Score weights
const (
	ScorePerSpecifiedCard = 100
	ScorePerLevel         = 500
)

// ApplyDamage lowers hp by amount. Only the upper bound is clamped: hp may go
// below zero and stays there until EvaluateEnding sees it.
func ApplyDamage(player *greedisland.PlayerState, amount int) {
	adjustHP(player, -amount)
}

// ApplyHeal raises hp by amount, clamped to max hp
func ApplyHeal(player *greedisland.PlayerState, amount int) {
	adjustHP(player, amount)
}

func adjustHP(player *greedisland.PlayerState, delta int) {
	hp := player.HP + delta
	if hp > player.MaxHP {
		hp = player.MaxHP
	}
	player.HP = hp
}

// LevelUp describes a level gained by ApplyXP
type LevelUp struct {
	Level int
	MaxHP int
	MaxXP int
}

// ApplyXP adds amount to xp. Non-positive amounts are ignored. A single
// level-up is checked per call, so a large gain can leave xp >= max xp until
// the next call.
func ApplyXP(player *greedisland.PlayerState, amount int) *LevelUp {
	if amount <= 0 {
		return nil
	}

	player.XP += amount
	if player.XP < player.MaxXP {
		return nil
	}

	player.XP -= player.MaxXP
	player.Level++
	player.MaxXP = player.MaxXP * maxXPGrowthNum / maxXPGrowthDen
	player.MaxHP += LevelUpMaxHP
	player.HP = player.MaxHP
	player.Attack += LevelUpAttack
	player.Defense += LevelUpDefense

	return &LevelUp{
		Level: player.Level,
		MaxHP: player.MaxHP,
		MaxXP: player.MaxXP,
	}
}

// ApplyStatBuff adds the buff amount to the named stat. It reports false for
// an unknown stat and leaves the player untouched.
func ApplyStatBuff(player *greedisland.PlayerState, buff *greedisland.StatBuff) bool {
	if buff == nil {
		return false
	}

	switch buff.Stat {
	case greedisland.StatAttack:
		player.Attack += buff.Amount
	case greedisland.StatDefense:
		player.Defense += buff.Amount
	case greedisland.StatMaxHP:
		player.MaxHP += buff.Amount
	default:
		return false
	}

	return true
}

// ComputeScore is 100 per collected specified card, plus xp, plus 500 per level
func ComputeScore(player *greedisland.PlayerState) int {
	return ScorePerSpecifiedCard*player.SpecifiedCount() + player.XP + ScorePerLevel*player.Level
}
