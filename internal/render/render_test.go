package render

import (
	"strings"
	"testing"

	m "skstress.dev/pkg/skstress/internal/model"
)

func docWith(content string) m.DocumentInfo {
	return m.DocumentInfo{
		Path:         "a.swift",
		Modification: &m.DocumentModification{Mode: m.RewriteBasic, Content: content},
	}
}

func TestAnnotatedContent(t *testing.T) {
	t.Run("cursorInfo splits at the byte offset", func(t *testing.T) {
		req := m.CursorInfoRequest{Doc: docWith("let x = 1"), Offset: 4}

		got := AnnotatedContent(req)
		if got != "let "+CursorMarker+"x = 1" {
			t.Errorf("unexpected annotation: %q", got)
		}
	})

	t.Run("offsets are bytes, not characters", func(t *testing.T) {
		// "€" is three bytes; offset 3 points immediately after it.
		req := m.CursorInfoRequest{Doc: docWith("€abc"), Offset: 3}

		got := AnnotatedContent(req)
		if got != "€"+CursorMarker+"abc" {
			t.Errorf("marker not placed after the multi-byte character: %q", got)
		}
	})

	t.Run("codeComplete and refactoring use distinct markers", func(t *testing.T) {
		complete := AnnotatedContent(m.CodeCompleteRequest{Doc: docWith("ab"), Offset: 1})
		refactor := AnnotatedContent(m.SemanticRefactoringRequest{Doc: docWith("ab"), Offset: 1, Kind: "rename"})
		cursor := AnnotatedContent(m.CursorInfoRequest{Doc: docWith("ab"), Offset: 1})

		if complete == refactor || complete == cursor || refactor == cursor {
			t.Errorf("point markers must be distinguishable: %q %q %q", cursor, complete, refactor)
		}
	})

	t.Run("replaceText brackets exactly the replaced bytes", func(t *testing.T) {
		req := m.EditorReplaceTextRequest{Doc: docWith("let x = 1"), Offset: 4, Length: 1, Text: "y"}

		got := AnnotatedContent(req)
		want := "let " + ReplaceStartMarker + "x" + ReplaceEndMarker + " = 1"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("rangeInfo brackets multi-byte spans by byte length", func(t *testing.T) {
		// Span covers "€a": 4 bytes starting at offset 0.
		req := m.RangeInfoRequest{Doc: docWith("€abc"), Offset: 0, Length: 4}

		got := AnnotatedContent(req)
		want := RangeStartMarker + "€a" + RangeEndMarker + "bc"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("editorOpen returns the content unmarked", func(t *testing.T) {
		req := m.EditorOpenRequest{Doc: docWith("let x = 1")}

		if got := AnnotatedContent(req); got != "let x = 1" {
			t.Errorf("unexpected annotation: %q", got)
		}
	})

	t.Run("unmodified documents render the placeholder", func(t *testing.T) {
		doc := m.DocumentInfo{Path: "a.swift"}
		requests := []m.RequestInfo{
			m.EditorOpenRequest{Doc: doc},
			m.EditorCloseRequest{Doc: doc},
			m.CursorInfoRequest{Doc: doc, Offset: 4},
			m.CodeCompleteRequest{Doc: doc, Offset: 4},
			m.RangeInfoRequest{Doc: doc, Offset: 0, Length: 2},
			m.EditorReplaceTextRequest{Doc: doc, Offset: 0, Length: 2, Text: "x"},
			m.SemanticRefactoringRequest{Doc: doc, Offset: 0, Kind: "rename"},
		}

		for _, req := range requests {
			if got := AnnotatedContent(req); got != UnmodifiedPlaceholder {
				t.Errorf("%T: got %q, want placeholder", req, got)
			}
		}
	})
}

func TestDescribe(t *testing.T) {
	doc := docWith("let x = 1")

	cases := []struct {
		req  m.RequestInfo
		want string
	}{
		{m.EditorOpenRequest{Doc: doc}, "EditorOpen for a.swift"},
		{m.EditorCloseRequest{Doc: doc}, "EditorClose for a.swift"},
		{m.EditorReplaceTextRequest{Doc: doc, Offset: 4, Length: 1, Text: "y"}, "ReplaceText in a.swift at offset 4 for length 1"},
		{m.CursorInfoRequest{Doc: doc, Offset: 4, Args: []string{"-sdk", "macosx"}}, "CursorInfo in a.swift at offset 4 with args: -sdk macosx"},
		{m.CodeCompleteRequest{Doc: doc, Offset: 9}, "CodeComplete in a.swift at offset 9 with args: "},
		{m.RangeInfoRequest{Doc: doc, Offset: 4, Length: 5, Args: []string{"-v"}}, "RangeInfo in a.swift at offset 4 for length 5 with args: -v"},
		{m.SemanticRefactoringRequest{Doc: doc, Offset: 4, Kind: "rename"}, "SemanticRefactoring (rename) in a.swift at offset 4 with args: "},
	}

	for _, tt := range cases {
		if got := Describe(tt.req); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestReportError(t *testing.T) {
	t.Run("crashed report shape", func(t *testing.T) {
		report := ReportError(m.CrashedError{
			Req: m.CursorInfoRequest{Doc: docWith("let x = 1"), Offset: 4},
		})

		want := HeadlineCrashed + "\n" +
			"  request: CursorInfo in a.swift at offset 4 with args: \n" +
			ContentBegin + "\n" +
			"let " + CursorMarker + "x = 1\n" +
			ContentEnd + "\n"

		if report != want {
			t.Errorf("got:\n%q\nwant:\n%q", report, want)
		}
	})

	t.Run("failed report carries the response before the content", func(t *testing.T) {
		report := ReportError(m.FailedError{
			Reason:   m.ReasonErrorResponse,
			Req:      m.EditorOpenRequest{Doc: docWith("let x = 1")},
			Response: "unable to open document",
		})

		if !strings.Contains(report, Headline(m.ReasonErrorResponse)) {
			t.Errorf("missing headline: %q", report)
		}

		responseAt := strings.Index(report, "  response: unable to open document")
		contentAt := strings.Index(report, ContentBegin)

		if responseAt < 0 || contentAt < 0 || responseAt > contentAt {
			t.Errorf("response must precede the content block: %q", report)
		}
	})

	t.Run("every reason has a fixed headline", func(t *testing.T) {
		reasons := []m.SourceKitErrorReason{
			m.ReasonErrorResponse,
			m.ReasonErrorTypeInResponse,
			m.ReasonErrorDeserializingSyntaxTree,
			m.ReasonSourceAndSyntaxTreeMismatch,
		}

		seen := map[string]bool{}
		for _, reason := range reasons {
			headline := Headline(reason)
			if seen[headline] {
				t.Errorf("duplicate headline %q", headline)
			}
			seen[headline] = true
		}
	})

	t.Run("timedOut uses its own headline", func(t *testing.T) {
		report := ReportError(m.TimedOutError{Req: m.EditorOpenRequest{Doc: docWith("x")}})
		if !strings.HasPrefix(report, HeadlineTimedOut) {
			t.Errorf("unexpected report: %q", report)
		}
	})
}

func TestReportMessage(t *testing.T) {
	report := ReportMessage(m.DetectedMessage{Error: m.CrashedError{
		Req: m.CursorInfoRequest{Doc: docWith("let x = 1"), Offset: 4},
	}})

	if !strings.HasPrefix(report, MessagePrefix+HeadlineCrashed) {
		t.Errorf("unexpected report prefix: %q", report)
	}
}
