package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"studyquest/internal/progress"
	"studyquest/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Revert a task completion",
		Args:  requireIntArg("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.Atoi(args[0])
			task, err := a.planner.UndoTask(ctx, id)
			if err != nil {
				return err
			}

			a.store.UndoTaskCompletion(ctx, progress.TaskInfo{
				ID:         strconv.Itoa(task.ID),
				Title:      task.Title,
				Date:       task.Date,
				StartTime:  task.StartTime,
				EndTime:    task.EndTime,
				Category:   task.Category,
				Subject:    task.Subject,
				Difficulty: task.Difficulty,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.IconWarn, ui.Warn.Render("Undone:"), task.Title)
			fmt.Fprintln(out, ui.Muted.Render(a.store.Summary()))
			return nil
		},
	}

	return cmd
}
