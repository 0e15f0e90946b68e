package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/planner"
	"studyquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		date       string
		start      string
		end        string
		category   string
		subject    string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a study task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := a.planner.AddTask(ctx, planner.Task{
				Title:      args[0],
				Date:       date,
				StartTime:  start,
				EndTime:    end,
				Category:   category,
				Subject:    subject,
				Difficulty: difficulty,
			})
			if err != nil {
				return err
			}

			a.store.HandleTaskAdded(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconPlus, ui.Good.Render(fmt.Sprintf("Task #%d added:", t.ID)), t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "end time (HH:MM)")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&subject, "subject", "", "subject")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy|medium|hard")

	return cmd
}
