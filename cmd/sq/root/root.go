package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sq",
	Short:         "StudyQuest — gamified study planner",
	Long:          "StudyQuest is a local-first CLI/TUI study planner with points, XP, badges, streaks and missions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newCheckinCmd(),
		newAddCmd(),
		newDoCmd(),
		newUndoCmd(),
		newListCmd(),
		newMissionsCmd(),
		newClaimCmd(),
		newBadgesCmd(),
		newTitlesCmd(),
		newShopCmd(),
		newGoalCmd(),
		newHistoryCmd(),
		newReportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
