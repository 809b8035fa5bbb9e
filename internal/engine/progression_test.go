package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/greed-island/internal/engine"
	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
)

type ProgressionTestSuite struct {
	suite.Suite
	player *greedisland.PlayerState
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) SetupTest() {
	s.player = greedisland.NewPlayerState("Gon")
}

func (s *ProgressionTestSuite) TestApplyDamage() {
	engine.ApplyDamage(s.player, 30)
	s.Equal(70, s.player.HP)

	s.Run("hp is allowed below zero", func() {
		engine.ApplyDamage(s.player, 500)
		s.Equal(-430, s.player.HP)
	})
}

func (s *ProgressionTestSuite) TestApplyHeal() {
	s.player.HP = 50
	engine.ApplyHeal(s.player, 30)
	s.Equal(80, s.player.HP)

	engine.ApplyHeal(s.player, 30)
	s.Equal(100, s.player.HP, "heal clamps to max hp")

	s.Run("idempotent at the ceiling", func() {
		for i := 0; i < 5; i++ {
			engine.ApplyHeal(s.player, 10)
		}
		s.Equal(s.player.MaxHP, s.player.HP)
	})
}

func (s *ProgressionTestSuite) TestApplyXP_LevelUp() {
	s.player.XP = 90
	s.player.HP = 40

	result := engine.ApplyXP(s.player, 15)

	s.Require().NotNil(result)
	s.Equal(5, s.player.XP)
	s.Equal(2, s.player.Level)
	s.Equal(150, s.player.MaxXP)
	s.Equal(120, s.player.MaxHP)
	s.Equal(120, s.player.HP, "level-up fully heals")
	s.Equal(15, s.player.Attack)
	s.Equal(7, s.player.Defense)
	s.Equal(2, result.Level)
}

func (s *ProgressionTestSuite) TestApplyXP_NoLevelUp() {
	result := engine.ApplyXP(s.player, 40)

	s.Nil(result)
	s.Equal(40, s.player.XP)
	s.Equal(1, s.player.Level)
}

func (s *ProgressionTestSuite) TestApplyXP_IgnoresNonPositive() {
	s.Nil(engine.ApplyXP(s.player, 0))
	s.Nil(engine.ApplyXP(s.player, -10))
	s.Equal(0, s.player.XP)
}

func (s *ProgressionTestSuite) TestApplyXP_SingleLevelPerCall() {
	result := engine.ApplyXP(s.player, 400)

	s.Require().NotNil(result)
	s.Equal(2, s.player.Level, "only one level is gained per call")
	s.Equal(300, s.player.XP)
	s.Equal(150, s.player.MaxXP)

	s.Run("the next gain levels again", func() {
		result := engine.ApplyXP(s.player, 1)
		s.Require().NotNil(result)
		s.Equal(3, s.player.Level)
		s.Equal(151, s.player.XP)
		s.Equal(225, s.player.MaxXP)
	})
}

func (s *ProgressionTestSuite) TestApplyStatBuff() {
	testCases := []struct {
		name   string
		buff   *greedisland.StatBuff
		ok     bool
		verify func(p *greedisland.PlayerState)
	}{
		{
			name: "attack",
			buff: &greedisland.StatBuff{Stat: greedisland.StatAttack, Amount: 3},
			ok:   true,
			verify: func(p *greedisland.PlayerState) {
				s.Equal(13, p.Attack)
			},
		},
		{
			name: "defense",
			buff: &greedisland.StatBuff{Stat: greedisland.StatDefense, Amount: 4},
			ok:   true,
			verify: func(p *greedisland.PlayerState) {
				s.Equal(9, p.Defense)
			},
		},
		{
			name: "max hp leaves hp alone",
			buff: &greedisland.StatBuff{Stat: greedisland.StatMaxHP, Amount: 10},
			ok:   true,
			verify: func(p *greedisland.PlayerState) {
				s.Equal(110, p.MaxHP)
				s.Equal(100, p.HP)
			},
		},
		{
			name: "unknown stat",
			buff: &greedisland.StatBuff{Stat: "luck", Amount: 10},
			ok:   false,
			verify: func(p *greedisland.PlayerState) {
				s.Equal(greedisland.NewPlayerState("Gon"), p)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			player := greedisland.NewPlayerState("Gon")
			s.Equal(tc.ok, engine.ApplyStatBuff(player, tc.buff))
			tc.verify(player)
		})
	}
}

func (s *ProgressionTestSuite) TestComputeScore() {
	for _, number := range []int{1, 2, 3} {
		s.player.SpecifiedSlots[number] = greedisland.ResolveSpecifiedCard(number, "card")
	}
	s.player.XP = 50
	s.player.Level = 2

	s.Equal(1350, engine.ComputeScore(s.player))
}
