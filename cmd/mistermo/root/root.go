package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"misterMoAPI/internal/ui"
)

const Version = "0.1.0"

const (
	EnvAPIURL     = "MISTERMO_API_URL"
	defaultAPIURL = "https://morachkovskiyapp.com"
)

// NewRootCmd builds the mistermo command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mistermo",
		Short:         "MisterMo daily schedule and progress tracker",
		Long:          "mistermo signs in with your Telegram init data, shows today's schedule and records your progress.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	apiURL := os.Getenv(EnvAPIURL)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	rootCmd.PersistentFlags().String("api", apiURL, "API base URL (env "+EnvAPIURL+")")
	rootCmd.PersistentFlags().String("state", "", "local state database (env MISTERMO_STATE_DB, default ~/.mistermo.db)")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newWeekCmd(),
		newScheduleCmd(),
		newToggleCmd(),
		newWeightCmd(),
		newWaterCmd(),
		newFoodCmd(),
		newMeasureCmd(),
		newContentCmd(),
		newTierCmd(),
		newSupplementCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
