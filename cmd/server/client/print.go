package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/greed-island/internal/handlers/greedisland/v1alpha1"
)

// DefaultLogTail is how many log lines PrintSession shows
const DefaultLogTail = 8

// PrintSession writes a readable view of the session
func PrintSession(w io.Writer, view *v1alpha1.SessionView, logTail int) {
	if view == nil {
		return
	}

	fmt.Fprintf(w, "Session %s [%s]", view.ID, view.State)
	if view.Loading {
		fmt.Fprint(w, " (waiting for the game master)")
	}
	fmt.Fprintln(w)

	if p := view.Player; p != nil {
		fmt.Fprintf(w, "%s Lv.%d  HP %d/%d  XP %d/%d  ATK %d  DEF %d\n",
			p.Name, p.Level, p.HP, p.MaxHP, p.XP, p.MaxXP, p.Attack, p.Defense)
		fmt.Fprintf(w, "Location: %s\n", p.Location.Name)
		fmt.Fprintf(w, "Specified: %d/%d  Score: %d\n", view.SpecifiedCount, view.SpecifiedTotal, view.Score)

		if len(p.SpellCards) > 0 {
			fmt.Fprintln(w, "Spells:")
			for _, card := range p.SpellCards {
				fmt.Fprintf(w, "  %s  %s\n", card.ID, card.Name)
			}
		}
		if len(p.FreeSlots) > 0 {
			fmt.Fprintf(w, "Free slots (%d):\n", len(p.FreeSlots))
			for _, card := range p.FreeSlots {
				fmt.Fprintf(w, "  %s  %s [%s %s]\n", card.ID, card.Name, card.Rank, card.Type)
			}
		}
	}

	if s := view.Scenario; s != nil {
		fmt.Fprintf(w, "\n== %s ==\n%s\n", s.Title, s.Description)
		if s.MonsterName != "" {
			fmt.Fprintf(w, "Enemy: %s\n", s.MonsterName)
		}
		for i, c := range s.Choices {
			fmt.Fprintf(w, "  %d) [%s] %s (%s)\n", i+1, c.ID, c.Text, strings.ToLower(c.Type))
		}
	}

	if len(view.EndingSelection) > 0 {
		fmt.Fprintf(w, "Kept cards: %s\n", strings.Join(view.EndingSelection, ", "))
	}

	logs := view.Logs
	if logTail > 0 && len(logs) > logTail {
		logs = logs[len(logs)-logTail:]
	}
	if len(logs) > 0 {
		fmt.Fprintln(w)
		for _, entry := range logs {
			fmt.Fprintf(w, "%-6s %s\n", entry.Sender, entry.Text)
		}
	}
}

// PrintResolution writes the outcome of a choice
func PrintResolution(w io.Writer, r *v1alpha1.ResolutionView) {
	if r == nil {
		return
	}

	fmt.Fprintf(w, "%s\n", r.Narrative)
	if r.DamageTaken > 0 {
		fmt.Fprintf(w, "  damage taken: %d\n", r.DamageTaken)
	}
	if r.HPRestored > 0 {
		fmt.Fprintf(w, "  hp restored: %d\n", r.HPRestored)
	}
	if r.XPGained > 0 {
		fmt.Fprintf(w, "  xp gained: %d\n", r.XPGained)
	}
	if r.RewardCard != nil {
		fmt.Fprintf(w, "  card: %s [%s %s]\n", r.RewardCard.Name, r.RewardCard.Rank, r.RewardCard.Type)
	}
	if r.StatBuff != nil {
		fmt.Fprintf(w, "  buff: %s +%d (%s)\n", r.StatBuff.Stat, r.StatBuff.Amount, r.StatBuff.SourceName)
	}
}

// PrintSummary writes the end of game summary
func PrintSummary(w io.Writer, s *v1alpha1.SummaryView) {
	if s == nil {
		return
	}

	fmt.Fprintf(w, "%s\n", s.Message)
	fmt.Fprintf(w, "Player: %s  Level: %d  Score: %d  Collected: %d\n",
		s.PlayerName, s.Level, s.Score, s.CollectedCount)
	for _, card := range s.KeptCards {
		fmt.Fprintf(w, "  kept %s %s\n", card.Label, card.Name)
	}
}
