package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show earned badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Badges"))

			earned := 0
			for _, b := range a.store.Badges() {
				if b.Earned {
					earned++
				}
				if !b.Earned && !all {
					continue
				}
				mark := ui.Good.Render("✔")
				if !b.Earned {
					mark = ui.Muted.Render("·")
				}
				fmt.Fprintf(out, "%s %s %s %s\n", mark, b.Icon, b.Name, ui.RarityText(b.Rarity.Name))
				fmt.Fprintf(out, "   %s\n", ui.Dim.Render(b.Description))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d earned", earned)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include locked badges")

	return cmd
}
