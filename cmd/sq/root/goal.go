package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newGoalCmd() *cobra.Command {
	var date string

	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal with a target date",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return errors.New("--date is required (YYYY-MM-DD)")
			}
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := a.planner.AddGoal(ctx, args[0], date)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.IconTarget, ui.Good.Render("Goal added:"), g.Title, ui.Muted.Render(dday(g.DaysLeft(time.Now()))))
			return nil
		},
	}
	addCmd.Flags().StringVar(&date, "date", "", "target date (YYYY-MM-DD)")

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage D-Day goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			goals, err := a.planner.Goals(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Goals"))
			if len(goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No goals yet. `sq goal add <title> --date YYYY-MM-DD`"))
				return nil
			}
			for _, g := range goals {
				fmt.Fprintf(out, "- %s %s %s\n", ui.Gold.Render(dday(g.DaysLeft(time.Now()))), g.Title, ui.Muted.Render(g.TargetDate))
			}
			return nil
		},
	}
	cmd.AddCommand(addCmd)

	return cmd
}

func dday(left int) string {
	switch {
	case left < 0:
		return fmt.Sprintf("D+%d", -left)
	case left == 0:
		return "D-Day"
	default:
		return fmt.Sprintf("D-%d", left)
	}
}
