package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, points, streak and slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			st := a.store.State()
			lp := a.store.LevelProgress()
			title := a.store.CurrentTitle()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconBook, "StudyQuest Status"))
			fmt.Fprintln(out, ui.LabelValue("Title", ui.Gold.Render(title.Name)))
			fmt.Fprintln(out, ui.LabelValue("Level", st.Level))
			fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render("XP:"), ui.XPBar(lp.Current, lp.Required, 20), ui.Muted.Render(fmt.Sprintf("%d/%d (%d%%)", lp.Current, lp.Required, lp.Percentage)))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%dP", st.Points)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, st.Streak)))
			if st.CheckedToday {
				fmt.Fprintln(out, ui.LabelValue("Attendance", ui.Good.Render("checked in today")))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Attendance", ui.Warn.Render("not yet — run `sq checkin`")))
			}

			owned, unused, price := a.store.DdayInfo()
			fmt.Fprintln(out, ui.LabelValue("D-Day slots", fmt.Sprintf("%d owned, %d unused (next: %dP)", owned, unused, price)))
			fmt.Fprintln(out, ui.LabelValue("Tasks completed", st.CompletedTasks))
			if st.PerfectDays > 0 {
				fmt.Fprintln(out, ui.LabelValue("Perfect days", st.PerfectDays))
			}

			for _, u := range a.store.RecentUnlocks() {
				fmt.Fprintf(out, "%s %s %s\n", ui.IconSparkle, ui.Gold.Render("Unlocked:"), u.Name)
			}
			return nil
		},
	}

	return cmd
}
