// Package controller provides output adapters for displaying request plans
// and failure reports.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"

	"skstress.dev/pkg/skstress/internal/domain"
	m "skstress.dev/pkg/skstress/internal/model"
)

// UI defines the interface for displaying plans and failure reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayPlans shows the planned request sequences. When detailed is set,
	// every request's one-line description is printed after the summary.
	DisplayPlans(ctx context.Context, plans []domain.Plan, detailed bool) error

	// DisplaySummary shows failure counts grouped by document and kind.
	DisplaySummary(ctx context.Context, failures []m.Message) error

	// DisplayReports shows fully rendered failure reports.
	DisplayReports(ctx context.Context, reports []string) error
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
