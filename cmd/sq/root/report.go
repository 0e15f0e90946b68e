package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studyquest/internal/planner"
	"studyquest/internal/report"
	"studyquest/internal/ui"
)

func newReportCmd() *cobra.Command {
	var weekly bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate today's (or this week's) feedback report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			var r report.Report
			if weekly {
				monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
				var tasks []planner.Task
				for i := 0; i < 7; i++ {
					day := monday.AddDate(0, 0, i).Format("2006-01-02")
					dayTasks, err := a.planner.TasksOn(ctx, day)
					if err != nil {
						return err
					}
					tasks = append(tasks, dayTasks...)
				}
				r = report.Weekly(monday.Format("2006-01-02"), tasks)
			} else {
				today := now.Format("2006-01-02")
				tasks, err := a.planner.TasksOn(ctx, today)
				if err != nil {
					return err
				}
				r = report.Daily(today, tasks)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Feedback Report"))
			fmt.Fprint(out, report.Render(r))
			return nil
		},
	}

	cmd.Flags().BoolVar(&weekly, "weekly", false, "report on the current week")

	return cmd
}
