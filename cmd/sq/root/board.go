package root

import (
	"context"

	"github.com/spf13/cobra"

	"studyquest/internal/logging"
	"studyquest/internal/schedule"
	"studyquest/internal/tui"
)

// logToasts routes notifications into the log file while the TUI owns the
// terminal.
type logToasts struct {
	log *logging.Logger
}

func (n logToasts) Toast(msg string) {
	n.log.Printf("toast: %s", msg)
}

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			sched := schedule.New(a.store, logToasts{log: a.log}, a.cfg)
			sched.Start(ctx)
			defer sched.Stop()

			return tui.RunBoard(ctx, a.store, a.planner, cmd.OutOrStdout())
		},
	}

	return cmd
}
