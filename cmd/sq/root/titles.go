package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newTitlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titles [set <id>]",
		Short: "List titles or set the active one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 2 && args[0] == "set" {
				a, cleanup, err := openApp(ctx, false)
				if err != nil {
					return err
				}
				defer cleanup()

				if !a.store.SetActiveTitle(ctx, args[1]) {
					return fmt.Errorf("title %q is unknown or locked", args[1])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconCrown, ui.Gold.Render("Active title:"), a.store.CurrentTitle().Name)
				return nil
			}
			if len(args) != 0 {
				return fmt.Errorf("usage: sq titles [set <id>]")
			}

			a, cleanup, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCrown, "Titles"))
			for _, t := range a.store.Titles() {
				switch {
				case t.Active:
					fmt.Fprintf(out, "%s %s %s\n", ui.Gold.Render("★"), t.Name, ui.Muted.Render("("+t.ID+", active)"))
				case t.Unlocked:
					fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render("✔"), t.Name, ui.Muted.Render("("+t.ID+")"))
				default:
					req := ""
					if t.Requirement.Level > 0 {
						req = fmt.Sprintf(" lvl %d", t.Requirement.Level)
					}
					if len(t.Requirement.Badges) > 0 {
						req += fmt.Sprintf(" +%d badge(s)", len(t.Requirement.Badges))
					}
					fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render("·"), ui.Muted.Render(t.Name), ui.Dim.Render("(needs"+req+")"))
				}
			}
			return nil
		},
	}

	return cmd
}
