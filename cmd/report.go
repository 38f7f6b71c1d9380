package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skstress.dev/pkg/skstress/internal/controller"
	m "skstress.dev/pkg/skstress/internal/model"
	"skstress.dev/pkg/skstress/internal/render"
)

var reportTUIFlag bool
var reportDiffFlag bool

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [stream]",
		Short: "Render human-readable reports from a failure stream",
		Long:  reportLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			streamPath := m.Path(viper.GetString(outputFlagName))
			if len(args) == 1 {
				streamPath = m.Path(args[0])
			}

			failures, skipped, err := failureStore.LoadFailures(streamPath)
			if err != nil {
				return err
			}

			if skipped > 0 {
				slog.Debug("dropped undecodable lines", "stream", streamPath, "skipped", skipped)
			}

			if err := ui.DisplaySummary(cmd.Context(), failures); err != nil {
				return err
			}

			reports := make([]string, 0, len(failures))
			for _, failure := range failures {
				reports = append(reports, renderFailure(failure, reportDiffFlag))
			}

			out := ui
			if reportTUIFlag {
				out = controller.NewTUI(simpleUI, os.Stdout)
			}

			return out.DisplayReports(cmd.Context(), reports)
		},
	}

	configureReportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&reportTUIFlag, reportTUIFlagName, false, "page through reports interactively")
	cmd.Flags().BoolVar(&reportDiffFlag, reportDiffFlagName, false, "append a diff of the on-disk document against its modification")
}

// renderFailure formats one failure's report, optionally followed by a
// unified diff of the document on disk against its modified content.
func renderFailure(failure m.Message, withDiff bool) string {
	report := render.ReportMessage(failure)

	if !withDiff {
		return report
	}

	detected, ok := failure.(m.DetectedMessage)
	if !ok {
		return report
	}

	doc := detected.Error.Request().Document()
	if doc.Modification == nil {
		return report
	}

	original, err := fsAdapter.ReadFile(doc.Path)
	if err != nil {
		slog.Debug("skipping diff, document unreadable", "path", doc.Path, "error", err)
		return report
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(doc.Modification.Content),
		FromFile: string(doc.Path),
		ToFile:   fmt.Sprintf("%s (modified, %s)", doc.Path, doc.Modification.Mode),
		Context:  3,
	})
	if err != nil {
		slog.Debug("skipping diff", "path", doc.Path, "error", err)
		return report
	}

	return report + diff
}
