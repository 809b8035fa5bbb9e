package gamemaster

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/greed-island/internal/entities/greedisland"
	"github.com/KirkDiggler/greed-island/internal/errors"
)

// Scenario choice bounds
const (
	MinChoices = 2
	MaxChoices = 3
)

type scenarioPayload struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	MonsterName *string         `json:"monsterName"`
	Choices     []choicePayload `json:"choices"`
}

type choicePayload struct {
	ID   *string `json:"id"`
	Text *string `json:"text"`
	Type string  `json:"type"`
}

type resolutionPayload struct {
	Narrative   *string        `json:"narrative"`
	DamageTaken *int           `json:"damageTaken"`
	XPGained    *int           `json:"xpGained"`
	HPRestored  *int           `json:"hpRestored"`
	RewardCard  *rewardPayload `json:"rewardCard"`
	NewStatBuff *buffPayload   `json:"newStatBuff"`
}

type rewardPayload struct {
	Name        *string `json:"name"`
	Rank        string  `json:"rank"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Number      *int    `json:"number"`
}

type buffPayload struct {
	Stat       string `json:"stat"`
	Amount     int    `json:"amount"`
	SourceName string `json:"sourceName"`
}

// DecodeScenario validates a raw game master scenario. Missing text fields or
// a choice count outside 2..3 is an error; an unknown choice type becomes NEUTRAL.
func DecodeScenario(raw string) (*greedisland.Scenario, error) {
	var payload scenarioPayload
	if err := json.Unmarshal([]byte(stripFence(raw)), &payload); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "malformed scenario")
	}

	vb := errors.NewValidationBuilder()
	if blank(payload.Title) {
		vb.RequiredField("title")
	}
	if blank(payload.Description) {
		vb.RequiredField("description")
	}
	if n := len(payload.Choices); n < MinChoices || n > MaxChoices {
		vb.Fieldf("choices", "expected %d to %d choices, got %d", MinChoices, MaxChoices, n)
	}
	for i, choice := range payload.Choices {
		if blank(choice.Text) {
			vb.RequiredField(fmt.Sprintf("choices[%d].text", i))
		}
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid scenario")
	}

	scenario := &greedisland.Scenario{
		Title:       strings.TrimSpace(*payload.Title),
		Description: strings.TrimSpace(*payload.Description),
		Choices:     make([]greedisland.Choice, 0, len(payload.Choices)),
	}
	if !blank(payload.MonsterName) {
		scenario.MonsterName = strings.TrimSpace(*payload.MonsterName)
	}

	seen := make(map[string]bool, len(payload.Choices))
	for i, choice := range payload.Choices {
		var id string
		if !blank(choice.ID) && !seen[*choice.ID] {
			id = *choice.ID
		} else {
			for n := i + 1; id == "" || seen[id]; n++ {
				id = fmt.Sprintf("choice-%d", n)
			}
		}
		seen[id] = true

		choiceType := greedisland.ChoiceType(strings.ToUpper(choice.Type))
		if !choiceType.Valid() {
			choiceType = greedisland.ChoiceNeutral
		}

		scenario.Choices = append(scenario.Choices, greedisland.Choice{
			ID:   id,
			Text: strings.TrimSpace(*choice.Text),
			Type: choiceType,
		})
	}

	return scenario, nil
}

// DecodeResolution validates a raw game master resolution. Negative effects
// are clamped to zero. A reward without a name and a buff on an unknown stat
// are dropped; an unknown reward rank becomes B and an unknown type ITEM.
func DecodeResolution(raw string) (*greedisland.ActionResolution, error) {
	var payload resolutionPayload
	if err := json.Unmarshal([]byte(stripFence(raw)), &payload); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "malformed resolution")
	}

	vb := errors.NewValidationBuilder()
	if blank(payload.Narrative) {
		vb.RequiredField("narrative")
	}
	if payload.DamageTaken == nil {
		vb.RequiredField("damageTaken")
	}
	if payload.XPGained == nil {
		vb.RequiredField("xpGained")
	}
	if payload.HPRestored == nil {
		vb.RequiredField("hpRestored")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid resolution")
	}

	resolution := &greedisland.ActionResolution{
		Narrative:   strings.TrimSpace(*payload.Narrative),
		DamageTaken: nonNegative(*payload.DamageTaken),
		XPGained:    nonNegative(*payload.XPGained),
		HPRestored:  nonNegative(*payload.HPRestored),
		RewardCard:  decodeReward(payload.RewardCard),
		StatBuff:    decodeBuff(payload.NewStatBuff),
	}

	return resolution, nil
}

func decodeReward(payload *rewardPayload) *greedisland.RewardDescriptor {
	if payload == nil || blank(payload.Name) {
		return nil
	}

	rank := greedisland.Rank(strings.ToUpper(payload.Rank))
	if !rank.Valid() {
		rank = greedisland.RankB
	}
	cardType := greedisland.CardType(strings.ToUpper(payload.Type))
	if !cardType.Valid() {
		cardType = greedisland.CardTypeItem
	}

	reward := &greedisland.RewardDescriptor{
		Name:        strings.TrimSpace(*payload.Name),
		Rank:        rank,
		Type:        cardType,
		Description: strings.TrimSpace(payload.Description),
	}
	if payload.Number != nil {
		reward.Number = *payload.Number
		reward.HasNumber = true
	}

	return reward
}

func decodeBuff(payload *buffPayload) *greedisland.StatBuff {
	if payload == nil {
		return nil
	}

	stat := greedisland.Stat(payload.Stat)
	if !stat.Valid() || payload.Amount <= 0 {
		return nil
	}

	return &greedisland.StatBuff{
		Stat:       stat,
		Amount:     payload.Amount,
		SourceName: strings.TrimSpace(payload.SourceName),
	}
}

// stripFence removes a markdown code fence some models wrap JSON in
func stripFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
