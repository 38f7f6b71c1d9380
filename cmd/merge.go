package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "skstress.dev/pkg/skstress/internal/model"
	"skstress.dev/pkg/skstress/internal/wire"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [streams...]",
		Short: "Merge worker failure streams into a single stream",
		Long: `Merge the failure streams written by sharded stress workers into the
output stream, dropping duplicate failures and keeping the order of first
sight.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			outputPath := m.Path(viper.GetString(outputFlagName))
			return mergeStreams(parsePaths(args), outputPath)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func mergeStreams(streams []m.Path, output m.Path) error {
	var merged []m.Message

	seen := make(map[string]struct{})
	skipped := 0

	for _, stream := range streams {
		failures, streamSkipped, err := failureStore.LoadFailures(stream)
		if err != nil {
			return err
		}

		skipped += streamSkipped

		for _, failure := range failures {
			// Re-encoding gives a canonical dedupe key: the codec emits the
			// same bytes for structurally equal messages.
			key := string(wire.EncodeMessage(failure))
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}

			merged = append(merged, failure)
		}
	}

	if err := failureStore.SaveFailures(output, merged); err != nil {
		return err
	}

	slog.Info("merged failure streams", "streams", len(streams), "failures", len(merged), "skipped", skipped, "output", output)

	return nil
}
