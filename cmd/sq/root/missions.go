package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"studyquest/internal/progress"
	"studyquest/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "Show daily and weekly missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			st := a.store.State()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Missions"))
			fmt.Fprintln(out, ui.H2.Render("Daily"))
			printMissions(out, st.DailyMissions)
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("Weekly"))
			printMissions(out, st.WeeklyMissions)
			return nil
		},
	}

	return cmd
}

func printMissions(out io.Writer, list []progress.Mission) {
	for _, m := range list {
		status := ui.MissionStatus(m.Completed, m.Claimed)
		fmt.Fprintf(out, "- %s %s %s %s\n",
			ui.Key.Render(m.ID),
			fmt.Sprintf("%d/%d", m.Progress, m.Total),
			ui.Muted.Render(fmt.Sprintf("(+%dP +%dXP)", m.Reward.Points, m.Reward.XP)),
			status,
		)
		fmt.Fprintf(out, "  %s\n", ui.Dim.Render(m.Description))
	}
}
