package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"studyquest/internal/progress"
	"studyquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task and collect the reward",
		Args:  requireIntArg("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.Atoi(args[0])
			task, err := a.planner.CompleteTask(ctx, id)
			if err != nil {
				return err
			}

			completed, err := a.planner.CompletedOn(ctx, task.Date)
			if err != nil {
				completed = 0
			}

			reward, ok := a.store.RewardTaskCompletion(ctx, progress.TaskInfo{
				ID:             strconv.Itoa(task.ID),
				Title:          task.Title,
				Date:           task.Date,
				StartTime:      task.StartTime,
				EndTime:        task.EndTime,
				Category:       task.Category,
				Subject:        task.Subject,
				Difficulty:     task.Difficulty,
				TodayCompleted: completed,
			})
			if !ok {
				return errors.New("reward could not be saved; see the log")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.IconDone, ui.Good.Render("Done:"), task.Title)
			fmt.Fprintf(out, "%s +%dP +%dXP\n", ui.IconBolt, reward.Points, reward.XP)

			if allDone, err := a.planner.AllDoneOn(ctx, task.Date); err == nil && allDone {
				a.store.HandleAllTasksCompleted(ctx, task.Date)
			}

			for _, u := range a.store.RecentUnlocks() {
				fmt.Fprintf(out, "%s %s %s %s\n", ui.IconTrophy, ui.Gold.Render("Unlocked:"), u.Icon, u.Name)
			}
			fmt.Fprintln(out, ui.Muted.Render(a.store.Summary()))
			return nil
		},
	}

	return cmd
}

func requireIntArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New(name + " is required")
		}
		if _, err := strconv.Atoi(args[0]); err != nil {
			return errors.New(name + " must be an integer")
		}
		return nil
	}
}
