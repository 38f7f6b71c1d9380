// Package cmd provides the root command and CLI setup for skstress.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"skstress.dev/pkg/skstress/internal/adapter"
	"skstress.dev/pkg/skstress/internal/controller"
	"skstress.dev/pkg/skstress/internal/domain"
	m "skstress.dev/pkg/skstress/internal/model"
)

var fsAdapter adapter.DocumentFSAdapter
var failureStore adapter.FailureStore
var planner *domain.Planner
var simpleUI *controller.SimpleUI
var ui controller.UI

// outputStreamFlag is a root-level flag naming the failure stream that
// commands read or write by default.
var outputStreamFlag string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	simpleUI = controller.NewSimpleUI(rootCmd, controller.IsTTY(os.Stdout))
	ui = simpleUI
	fsAdapter = adapter.NewLocalDocumentFSAdapter()
	failureStore = adapter.NewFailureStore()
	planner = domain.NewPlanner(fsAdapter)
}

const rootLongDescription = `skstress stress-tests a SourceKit-style code-intelligence backend by
replaying editor operations against tracked documents. Worker processes
report every detected backend failure as one JSON message per line; this
tool plans the request sequences workers issue and turns recorded failure
streams back into human-readable reports.`

const planLongDescription = `Show the request sequence a stress worker would issue for each document:
an editorOpen, query and rewrite probes over every token position, and an
editorClose. Use --page INDEX/COUNT to restrict planning to one worker's
share of the position space.`

const reportLongDescription = `Decode a recorded failure stream (one JSON message per line) and print a
human-readable report for every detected failure. Undecodable lines are
skipped, so streams interleaved with unrelated worker output are fine.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skstress",
		Short: "Stress-testing harness tooling for SourceKit-style backends",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputStreamFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"failure stream read or written by default",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// parsePageFlag parses a page selector in the format NUMBER/COUNT (1-based).
// An empty selector means the whole sequence as one page.
func parsePageFlag(page string) (m.Page, error) {
	if page == "" {
		return m.SinglePage(), nil
	}

	var number, count int

	if _, err := fmt.Sscanf(page, "%d/%d", &number, &count); err != nil {
		return m.Page{}, fmt.Errorf("page selector %q is not in NUMBER/COUNT format", page)
	}

	return m.NewPage(number, count)
}
