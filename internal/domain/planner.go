// Package domain generates the request sequences stress workers issue
// against the backend. Planning is deterministic: the same document, mode,
// and page always yield the same sequence, so sharded workers can split the
// position space without coordination.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"skstress.dev/pkg/skstress/internal/adapter"
	m "skstress.dev/pkg/skstress/internal/model"
)

// refactoringKind is the refactoring probed at each position.
const refactoringKind = "rename"

// PlanArgs selects what to plan.
type PlanArgs struct {
	Mode m.RewriteMode
	Page m.Page
	// Args are passed through to every request that carries an argument list
	// (compiler arguments for the document, typically).
	Args []string
}

// Plan is the ordered request sequence for one document.
type Plan struct {
	Document m.DocumentInfo
	Requests []m.RequestInfo
}

// Planner builds request plans from documents on disk.
type Planner struct {
	fs adapter.DocumentFSAdapter
}

// NewPlanner creates a Planner reading documents through fs.
func NewPlanner(fs adapter.DocumentFSAdapter) *Planner {
	return &Planner{fs: fs}
}

// PlanDocument builds the request sequence for the document at path: an
// editorOpen, per-position query and rewrite probes over the selected page of
// token positions, and an editorClose.
func (p *Planner) PlanDocument(path m.Path, args PlanArgs) (Plan, error) {
	if !args.Mode.Valid() {
		return Plan{}, fmt.Errorf("unknown rewrite mode %q", args.Mode)
	}

	data, err := p.fs.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read document: %w", err)
	}

	content := string(data)

	doc := m.DocumentInfo{Path: path}
	if args.Mode != m.RewriteNone {
		doc.Modification = &m.DocumentModification{Mode: args.Mode, Content: content}
	}

	spans := tokenSpans(content)
	lo, hi := pageBounds(len(spans), args.Page)
	page := spans[lo:hi]

	requests := make([]m.RequestInfo, 0, 3*len(page)+2)
	requests = append(requests, m.EditorOpenRequest{Doc: doc})

	for _, s := range page {
		requests = append(requests,
			m.CursorInfoRequest{Doc: doc, Offset: s.start, Args: args.Args},
			m.CodeCompleteRequest{Doc: doc, Offset: s.end, Args: args.Args},
			m.RangeInfoRequest{Doc: doc, Offset: s.start, Length: s.end - s.start, Args: args.Args},
		)
	}

	for _, i := range rewriteOrder(len(page), args.Mode) {
		s := page[i]
		requests = append(requests,
			m.EditorReplaceTextRequest{Doc: doc, Offset: s.start, Length: s.end - s.start, Text: content[s.start:s.end]},
			m.SemanticRefactoringRequest{Doc: doc, Offset: s.start, Kind: refactoringKind, Args: args.Args},
		)
	}

	requests = append(requests, m.EditorCloseRequest{Doc: doc})

	slog.Debug("planned document", "path", path, "mode", args.Mode, "page", args.Page, "requests", len(requests))

	return Plan{Document: doc, Requests: requests}, nil
}

// PlanFiles plans every path, fanning out across threads workers. Results
// keep the order of paths.
func (p *Planner) PlanFiles(ctx context.Context, paths []m.Path, args PlanArgs, threads int) ([]Plan, error) {
	if threads < 1 {
		threads = 1
	}

	plans := make([]Plan, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			plan, err := p.PlanDocument(path, args)
			if err != nil {
				return fmt.Errorf("plan %s: %w", path, err)
			}

			plans[i] = plan

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return plans, nil
}

// pageBounds slices n positions into page.Count near-equal chunks and
// returns the half-open bounds of page's chunk.
func pageBounds(n int, page m.Page) (int, int) {
	if page.Count < 1 {
		// Zero-value pages mean "everything"; validated pages never hit this.
		return 0, n
	}

	chunk := (n + page.Count - 1) / page.Count

	lo := page.Index() * chunk
	if lo > n {
		lo = n
	}

	hi := lo + chunk
	if hi > n {
		hi = n
	}

	return lo, hi
}
