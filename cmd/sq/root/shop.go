package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newShopCmd() *cobra.Command {
	var buy bool

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Show the D-Day slot shop, --buy to purchase",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			owned, unused, price := a.store.DdayInfo()
			st := a.store.State()

			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "D-Day Slot Shop"))
			fmt.Fprintln(out, ui.LabelValue("Owned", owned))
			fmt.Fprintln(out, ui.LabelValue("Unused", unused))
			fmt.Fprintln(out, ui.LabelValue("Next slot", fmt.Sprintf("%dP (you have %dP)", price, st.Points)))

			if !buy {
				fmt.Fprintln(out, ui.Muted.Render("Run `sq shop --buy` to purchase."))
				return nil
			}

			if !a.store.PurchaseDDaySlot(ctx) {
				return errors.New("purchase failed: not enough points")
			}
			owned, unused, price = a.store.DdayInfo()
			fmt.Fprintf(out, "%s %s now %d owned, %d unused (next: %dP)\n", ui.IconDone, ui.Good.Render("Purchased!"), owned, unused, price)
			return nil
		},
	}

	cmd.Flags().BoolVar(&buy, "buy", false, "buy the next slot")

	return cmd
}
