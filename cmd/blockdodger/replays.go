package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/hsmto25519/block-game/internal/config"
	"github.com/hsmto25519/block-game/internal/games/dodger"
	"github.com/hsmto25519/block-game/internal/storage"
)

var flagLimit int

// errReplayMismatch is returned by "replays show" when a run does not
// reproduce its stored outcome.
var errReplayMismatch = errors.New("replay does not match the recorded outcome")

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Inspect recorded runs",
	Long: `Runs recorded with --record keep their seed, configuration and every
move, so they can be re-simulated exactly.

Examples:
  blockdodger replays list
  blockdodger replays show 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  blockdodger replays delete 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
}

var replaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runReplaysList,
}

var replaysShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Re-simulate a recorded run and check its outcome",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysShow,
}

var replaysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysDelete,
}

func init() {
	replaysListCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of runs to show")

	replaysCmd.AddCommand(replaysListCmd)
	replaysCmd.AddCommand(replaysShowCmd)
	replaysCmd.AddCommand(replaysDeleteCmd)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func runReplaysList(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs yet. Play with --record to store one.")
		return nil
	}

	fmt.Fprintln(out, runsTable(runs))
	return nil
}

// runsTable renders runs as a bordered table.
func runsTable(runs []storage.Run) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			difficulty,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level + 1),
			strconv.FormatUint(r.Ticks, 10),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "Date", "Difficulty", "Score", "Level", "Ticks").
		Rows(rows...)
	return t.String()
}

func runReplaysShow(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Run "+run.ID))
	fmt.Fprintf(out, "  Recorded:   %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "  Seed:       %d\n", run.Seed)
	fmt.Fprintf(out, "  Difficulty: %s\n", run.Difficulty)
	fmt.Fprintf(out, "  Outcome:    score %d, level %d, %d ticks\n", run.Score, run.Level+1, run.Ticks)

	snap, err := replayRun(*run)
	if err != nil {
		return err
	}
	logger.Debug("replayed run", "id", run.ID, "score", snap.Score, "ticks", snap.Tick)

	fmt.Fprintf(out, "  Replayed:   score %d, level %d, %d ticks\n", snap.Score, snap.Level+1, snap.Tick)
	if !replayMatches(*run, snap) {
		fmt.Fprintln(out, failStyle.Render("  MISMATCH"))
		return errReplayMismatch
	}
	fmt.Fprintln(out, okStyle.Render("  Replay matches"))
	return nil
}

// replayRun re-simulates a stored run from its seed, config and journal.
func replayRun(run storage.Run) (dodger.Snapshot, error) {
	cfg, err := config.Parse([]byte(run.ConfigYAML))
	if err != nil {
		return dodger.Snapshot{}, fmt.Errorf("run %s: %w", run.ID, err)
	}
	journal, err := dodger.ParseJournal(run.Journal)
	if err != nil {
		return dodger.Snapshot{}, fmt.Errorf("run %s: %w", run.ID, err)
	}
	return dodger.Replay(cfg, run.Seed, journal, run.Ticks)
}

// replayMatches reports whether a replay reached the stored outcome.
func replayMatches(run storage.Run, snap dodger.Snapshot) bool {
	return snap.Score == run.Score &&
		snap.Tick == run.Ticks &&
		snap.Level == run.Level &&
		snap.GameOver() == run.GameOver
}

func runReplaysDelete(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteRun(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
	return nil
}
