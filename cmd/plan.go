package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skstress.dev/pkg/skstress/internal/domain"
	m "skstress.dev/pkg/skstress/internal/model"
)

var planModeFlag string
var planPageFlag string
var planParallelFlag int
var planDetailedFlag bool
var planArgsFlag []string

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [documents...]",
		Short: "Show the request sequences workers would issue",
		Long:  planLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := parsePageFlag(planPageFlag)
			if err != nil {
				return err
			}

			plans, err := planner.PlanFiles(cmd.Context(), parsePaths(args), domain.PlanArgs{
				Mode: m.RewriteMode(viper.GetString(planModeConfigKey)),
				Page: page,
				Args: viper.GetStringSlice(planArgsConfigKey),
			}, viper.GetInt(planParallelConfigKey))
			if err != nil {
				return err
			}

			return ui.DisplayPlans(cmd.Context(), plans, planDetailedFlag)
		},
	}

	configurePlanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func configurePlanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&planModeFlag, planModeFlagName, "m", viper.GetString(planModeConfigKey), "rewrite mode: none, basic, concurrent, or insideOut")
	bindFlagToConfig(cmd.Flags().Lookup(planModeFlagName), planModeConfigKey)

	cmd.Flags().IntVarP(&planParallelFlag, planParallelFlagName, "p", viper.GetInt(planParallelConfigKey), "number of documents planned in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(planParallelFlagName), planParallelConfigKey)

	cmd.Flags().StringArrayVar(&planArgsFlag, planArgsFlagName, viper.GetStringSlice(planArgsConfigKey), "compiler argument attached to every request (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(planArgsFlagName), planArgsConfigKey)

	cmd.Flags().StringVar(&planPageFlag, planPageFlagName, "", "plan only one page of positions, in the format NUMBER/COUNT (e.g., 1/3)")
	cmd.Flags().BoolVarP(&planDetailedFlag, planDetailedFlagName, "d", false, "print every planned request, not just the summary")
}
