package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newCheckinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if !a.store.CheckAttendance(ctx) {
				fmt.Fprintln(out, ui.Muted.Render("Already checked in today."))
				return nil
			}

			st := a.store.State()
			fmt.Fprintln(out, ui.Heading(ui.IconFlame, fmt.Sprintf("Checked in! %d-day streak", st.Streak)))
			fmt.Fprintln(out, ui.Muted.Render(a.store.Summary()))
			return nil
		},
	}

	return cmd
}
