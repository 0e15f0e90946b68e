package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim <mission-id>",
		Short: "Claim a completed mission's reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("mission id is required")
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

			if !a.store.ClaimMissionReward(ctx, args[0]) {
				return fmt.Errorf("mission %q is not claimable (unknown, incomplete, or already claimed)", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.IconGift, ui.Gold.Render("Claimed:"), args[0])
			fmt.Fprintln(out, ui.Muted.Render(a.store.Summary()))
			return nil
		},
	}

	return cmd
}
