package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"skstress.dev/pkg/skstress/internal/domain"
	m "skstress.dev/pkg/skstress/internal/model"
	"skstress.dev/pkg/skstress/internal/render"
)

var headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd   *cobra.Command
	isTTY bool
}

// NewSimpleUI creates a new SimpleUI. Styling is applied only when the output
// is an interactive terminal.
func NewSimpleUI(cmd *cobra.Command, isTTY bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, isTTY: isTTY}
}

// DisplayPlans prints a per-document summary table and, when detailed is set,
// the description of every planned request.
func (s *SimpleUI) DisplayPlans(ctx context.Context, plans []domain.Plan, detailed bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPlanTable(plans))

	if !detailed {
		return nil
	}

	for _, plan := range plans {
		s.printf("\n%s:\n", plan.Document.Path)

		for _, req := range plan.Requests {
			s.printf("  %s\n", render.Describe(req))
		}
	}

	return nil
}

// DisplaySummary prints failure counts grouped by document and failure kind.
func (s *SimpleUI) DisplaySummary(ctx context.Context, failures []m.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := fmt.Sprintf("%d failure(s) detected", len(failures))
	if s.isTTY {
		title = headlineStyle.Render(title)
	}

	s.printf("%s\n\n%s", title, renderSummaryTable(failures))

	return nil
}

// DisplayReports prints each rendered report, blank-line separated.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, report := range reports {
		s.printf("%s\n", report)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}

func renderPlanTable(plans []domain.Plan) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Document", "Mode", "Requests"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, plan := range plans {
		mode := m.RewriteNone
		if plan.Document.Modification != nil {
			mode = plan.Document.Modification.Mode
		}

		table.Append([]string{string(plan.Document.Path), string(mode), fmt.Sprintf("%d", len(plan.Requests))})

		total += len(plan.Requests)
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(plans)), "", fmt.Sprintf("%d", total)})
	table.Render()

	return tableBuffer.String()
}

// failureKind is the summary label for an error variant: the crashed and
// timedOut tags, or the reason string for failed responses.
func failureKind(err m.SourceKitError) string {
	switch e := err.(type) {
	case m.CrashedError:
		return "crashed"
	case m.TimedOutError:
		return "timedOut"
	case m.FailedError:
		return string(e.Reason)
	}

	return fmt.Sprintf("%T", err)
}

func renderSummaryTable(failures []m.Message) string {
	type key struct {
		path string
		kind string
	}

	counts := make(map[key]int)

	for _, failure := range failures {
		detected, ok := failure.(m.DetectedMessage)
		if !ok {
			continue
		}

		k := key{
			path: string(detected.Error.Request().Document().Path),
			kind: failureKind(detected.Error),
		}
		counts[k]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].path != keys[j].path {
			return keys[i].path < keys[j].path
		}

		return keys[i].kind < keys[j].kind
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Document", "Failure", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, k := range keys {
		table.Append([]string{k.path, k.kind, fmt.Sprintf("%d", counts[k])})
	}

	table.SetFooter([]string{"", "Total", fmt.Sprintf("%d", len(failures))})
	table.Render()

	return tableBuffer.String()
}
