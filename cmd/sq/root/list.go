package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			tasks, err := a.planner.TasksOn(ctx, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCal, "Tasks · "+date))
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing planned. `sq add <title>` to start."))
				return nil
			}

			for _, t := range tasks {
				mark := ui.Muted.Render("[ ]")
				if t.Completed {
					mark = ui.Good.Render("[x]")
				}
				line := fmt.Sprintf("%s #%d %s", mark, t.ID, t.Title)
				if t.StartTime != "" {
					line += ui.Muted.Render(" " + t.StartTime)
					if t.EndTime != "" {
						line += ui.Muted.Render("–" + t.EndTime)
					}
				}
				if t.Category != "" {
					line += " " + ui.Dim.Render("("+t.Category+")")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")

	return cmd
}
