package gamemaster

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

const scenarioPromptTemplate = `You are the Game Master of "Greed Island", the card game inside the world of Hunter x Hunter.

Player:
- Name: %s (Lv.%d)
- Location: %s (difficulty %d of 10)
- Status: HP %d/%d, ATK %d, DEF %d

Write one interactive RPG encounter for this player.
- It may be a monster encounter, an NPC interaction or a mysterious discovery.
- Offer 2 to 3 actions (for example "Fight", "Flee", "Negotiate", "Steal", "Investigate").
- The actions must carry different risks and potential rewards.

Return JSON only.`

const resolutionPromptTemplate = `I am the player.
Current scene: %s
My stats: Lv.%d, HP %d, ATK %d, DEF %d. Location difficulty %d.

I chose: "%s".

Judge the outcome as the Game Master:
1. Narrate what happens (narrative).
2. Compute damageTaken from the enemy strength and my defense. A failed escape also hurts.
3. Compute xpGained for resolving the event.
4. rewardCard:
   - 5%% chance of a SPECIFIED card (number 0-99).
   - 40%% chance of an ITEM or MONSTER card.
   - No reward on failure.
5. newStatBuff: a very low (1%%) chance of a stat boosting item.

Return JSON only.`

const bookPromptTemplate = `You are the Book of Greed Island, the binder every player carries. Answer this query briefly in the voice of an electronic guide: %s`

func scenarioPrompt(input *ScenarioInput) string {
	p := input.Player
	return fmt.Sprintf(scenarioPromptTemplate,
		p.Name, p.Level, p.LocationName, p.Difficulty, p.HP, p.MaxHP, p.Attack, p.Defense)
}

func resolutionPrompt(input *ResolutionInput) string {
	p := input.Player
	return fmt.Sprintf(resolutionPromptTemplate,
		input.ScenarioDescription, p.Level, p.HP, p.Attack, p.Defense, p.Difficulty, input.ChoiceText)
}

func bookPrompt(query string) string {
	return fmt.Sprintf(bookPromptTemplate, query)
}

func scenarioSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString, Description: "Scenario title"},
			"description": {Type: genai.TypeString, Description: "Scenario description"},
			"monsterName": {Type: genai.TypeString, Nullable: true},
			"choices": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":   {Type: genai.TypeString},
						"text": {Type: genai.TypeString, Description: "Action text, e.g. 'Attack head-on'"},
						"type": {Type: genai.TypeString, Enum: []string{"AGGRESSIVE", "DEFENSIVE", "NEUTRAL", "RISKY"}},
					},
					Required: []string{"id", "text", "type"},
				},
			},
		},
		Required: []string{"title", "description", "choices"},
	}
}

func resolutionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"narrative":   {Type: genai.TypeString},
			"damageTaken": {Type: genai.TypeInteger},
			"xpGained":    {Type: genai.TypeInteger},
			"hpRestored":  {Type: genai.TypeInteger},
			"rewardCard": {
				Type:     genai.TypeObject,
				Nullable: true,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"rank":        {Type: genai.TypeString, Enum: []string{"SS", "S", "A", "B", "C", "D", "E", "F", "G", "H"}},
					"type":        {Type: genai.TypeString, Enum: []string{"SPECIFIED", "ITEM", "MONSTER", "SPELL"}},
					"description": {Type: genai.TypeString},
					"number":      {Type: genai.TypeInteger},
				},
				Required: []string{"name", "rank", "type", "description", "number"},
			},
			"newStatBuff": {
				Type:     genai.TypeObject,
				Nullable: true,
				Properties: map[string]*genai.Schema{
					"stat":       {Type: genai.TypeString, Enum: []string{"attack", "defense", "maxHp"}},
					"amount":     {Type: genai.TypeInteger},
					"sourceName": {Type: genai.TypeString},
				},
			},
		},
		Required: []string{"narrative", "damageTaken", "xpGained", "hpRestored"},
	}
}
