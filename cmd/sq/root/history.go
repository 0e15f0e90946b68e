package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent point history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := a.history.List(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Point History"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing yet."))
				return nil
			}
			for _, e := range entries {
				amount := ui.Good.Render(fmt.Sprintf("%+d", e.Amount))
				if e.Amount < 0 {
					amount = ui.Bad.Render(fmt.Sprintf("%+d", e.Amount))
				}
				fmt.Fprintf(out, "%s %s %s %s\n", ui.Muted.Render(e.CreatedAt.Format("01-02 15:04")), amount, e.Description, ui.Dim.Render("("+e.Category+")"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries")

	return cmd
}
