package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/greed-island/cmd/server/client"
	"github.com/KirkDiggler/greed-island/internal/config"
	"github.com/KirkDiggler/greed-island/internal/handlers/greedisland/v1alpha1"
	"github.com/KirkDiggler/greed-island/internal/orchestrators/game"
	"github.com/KirkDiggler/greed-island/internal/pkg/logging"
)

var playName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game in the terminal",
	Long:  `Play runs the game in-process with an in-memory session. Type "help" for commands.`,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playName, "name", "", "Player name")
}

const playHelp = `Commands:
  look              show the session
  explore           search the area for an encounter
  choose <n|id>     pick a choice in the current encounter
  travel            move to the next location
  use <card-id>     use a spell or item card
  book <question>   ask the Book
  rewards           open reward selection after a victory
  keep <card-id>    toggle a card to take home
  finish            leave the island with three cards
  retry             start over
  quit              exit`

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.Session.Store = config.StoreMemory
	cfg.Game.ResolveDelay = -1

	// Keep the terminal for the game
	logger, err := logging.New("error", true)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync() // nolint:errcheck // stderr sync fails on some platforms
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	application, err := buildApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = application.Close()
	}()

	t := &terminal{games: application.games, out: cmd.OutOrStdout()}
	if err := t.start(ctx, playName); err != nil {
		return err
	}
	return t.run(ctx, cmd.InOrStdin())
}

// terminal drives one session from line commands
type terminal struct {
	games     game.Service
	out       io.Writer
	sessionID string
	last      *v1alpha1.SessionView
}

func (t *terminal) start(ctx context.Context, name string) error {
	out, err := t.games.CreateSession(ctx, &game.CreateSessionInput{PlayerName: name})
	if err != nil {
		return err
	}
	t.sessionID = out.Snapshot.Session.ID
	t.show(out.Snapshot, true)
	fmt.Fprintln(t.out, `Type "help" for commands.`)
	return nil
}

func (t *terminal) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(t.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(t.out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		quit, err := t.handle(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(t.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (t *terminal) handle(ctx context.Context, line string) (bool, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	id := t.sessionID

	switch strings.ToLower(verb) {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(t.out, playHelp)
	case "look", "status":
		out, err := t.games.GetSession(ctx, &game.GetSessionInput{SessionID: id})
		if err != nil {
			return false, err
		}
		t.show(out.Snapshot, true)
	case "explore":
		out, err := t.games.Explore(ctx, &game.ExploreInput{SessionID: id})
		if err != nil {
			return false, err
		}
		t.applied(out.Applied)
		t.show(out.Snapshot, false)
	case "choose":
		out, err := t.games.Choose(ctx, &game.ChooseInput{SessionID: id, ChoiceID: t.choiceID(arg)})
		if err != nil {
			return false, err
		}
		t.applied(out.Applied)
		client.PrintResolution(t.out, v1alpha1.NewResolutionView(out.Resolution))
		t.show(out.Snapshot, false)
	case "travel":
		out, err := t.games.Travel(ctx, &game.TravelInput{SessionID: id})
		if err != nil {
			return false, err
		}
		t.applied(out.Applied)
		t.show(out.Snapshot, false)
	case "use":
		out, err := t.games.UseCard(ctx, &game.UseCardInput{SessionID: id, CardID: arg})
		if err != nil {
			return false, err
		}
		t.applied(out.Applied)
		t.show(out.Snapshot, false)
	case "book":
		out, err := t.games.ConsultBook(ctx, &game.ConsultBookInput{SessionID: id, Query: arg})
		if err != nil {
			return false, err
		}
		fmt.Fprintf(t.out, "Book: %s\n", out.Answer)
	case "rewards":
		out, err := t.games.ProceedToRewards(ctx, &game.ProceedToRewardsInput{SessionID: id})
		if err != nil {
			return false, err
		}
		t.applied(out.Applied)
		t.show(out.Snapshot, false)
	case "keep":
		out, err := t.games.ToggleEndingSelection(ctx, &game.ToggleEndingSelectionInput{SessionID: id, CardID: arg})
		if err != nil {
			return false, err
		}
		t.applied(out.Applied)
		t.show(out.Snapshot, false)
	case "finish":
		out, err := t.games.FinishGame(ctx, &game.FinishGameInput{SessionID: id})
		if err != nil {
			return false, err
		}
		t.applied(out.Applied)
		client.PrintSummary(t.out, v1alpha1.NewSummaryView(out.Summary))
		t.show(out.Snapshot, false)
	case "retry":
		out, err := t.games.Retry(ctx, &game.RetryInput{SessionID: id})
		if err != nil {
			return false, err
		}
		t.show(out.Snapshot, false)
	default:
		fmt.Fprintf(t.out, "unknown command %q\n", verb)
	}
	return false, nil
}

// choiceID maps a 1-based choice number from the last view to its id
func (t *terminal) choiceID(arg string) string {
	n, err := strconv.Atoi(arg)
	if err != nil || t.last == nil || t.last.Scenario == nil {
		return arg
	}
	if n < 1 || n > len(t.last.Scenario.Choices) {
		return arg
	}
	return t.last.Scenario.Choices[n-1].ID
}

func (t *terminal) applied(ok bool) {
	if !ok {
		fmt.Fprintln(t.out, "That is not possible right now.")
	}
}

func (t *terminal) show(snapshot *game.Snapshot, full bool) {
	view := v1alpha1.NewSessionView(snapshot)
	t.last = view

	tail := 3
	if full {
		tail = client.DefaultLogTail
	}
	client.PrintSession(t.out, view, tail)
}
