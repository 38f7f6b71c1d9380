// Package render turns requests and detected failures into the human-readable
// reports a developer reads when debugging a backend crash. The marker tokens
// and headline sentences are part of the observable contract; tests and log
// scrapers match them literally.
package render

import (
	"fmt"
	"strings"

	m "skstress.dev/pkg/skstress/internal/model"
)

// Marker tokens inserted into document content at the byte positions a
// request references. Each request kind gets its own token so reports stay
// distinguishable.
const (
	CursorMarker       = "<cursor-offset>"
	CompleteMarker     = "<complete-offset>"
	RefactoringMarker  = "<refactoring-offset>"
	ReplaceStartMarker = "<replace-start>"
	ReplaceEndMarker   = "<replace-end>"
	RangeStartMarker   = "<range-start>"
	RangeEndMarker     = "<range-end>"
)

// UnmodifiedPlaceholder stands in for document content when the document
// carries no modification.
const UnmodifiedPlaceholder = "<unmodified>"

// AnnotatedContent returns the modified content of the request's document
// with markers inserted at the position(s) the request references, or the
// unmodified placeholder when the document carries no modification.
//
// Offsets are UTF-8 byte offsets supplied by the caller; the renderer applies
// them on the byte representation directly and does not validate that they
// fall on character boundaries.
func AnnotatedContent(req m.RequestInfo) string {
	mod := req.Document().Modification
	if mod == nil {
		return UnmodifiedPlaceholder
	}

	content := mod.Content

	switch r := req.(type) {
	case m.EditorOpenRequest, m.EditorCloseRequest:
		return content
	case m.CursorInfoRequest:
		return markPoint(content, r.Offset, CursorMarker)
	case m.CodeCompleteRequest:
		return markPoint(content, r.Offset, CompleteMarker)
	case m.SemanticRefactoringRequest:
		return markPoint(content, r.Offset, RefactoringMarker)
	case m.EditorReplaceTextRequest:
		return markSpan(content, r.Offset, r.Length, ReplaceStartMarker, ReplaceEndMarker)
	case m.RangeInfoRequest:
		return markSpan(content, r.Offset, r.Length, RangeStartMarker, RangeEndMarker)
	}

	return content
}

// markPoint splits content at the byte offset and inserts marker between the
// halves.
func markPoint(content string, offset int, marker string) string {
	offset = clamp(offset, len(content))

	return content[:offset] + marker + content[offset:]
}

// markSpan brackets the bytes [offset, offset+length) with start and end
// markers, preserving the spanned text verbatim.
func markSpan(content string, offset, length int, start, end string) string {
	from := clamp(offset, len(content))
	to := clamp(offset+length, len(content))

	return content[:from] + start + content[from:to] + end + content[to:]
}

func clamp(offset, limit int) int {
	if offset < 0 {
		return 0
	}

	if offset > limit {
		return limit
	}

	return offset
}

// Describe returns the one-line description of a request: the operation, the
// document, the byte offset/length, and the joined argument list where the
// variant carries one.
func Describe(req m.RequestInfo) string {
	switch r := req.(type) {
	case m.EditorOpenRequest:
		return fmt.Sprintf("EditorOpen for %s", r.Doc.Path)
	case m.EditorCloseRequest:
		return fmt.Sprintf("EditorClose for %s", r.Doc.Path)
	case m.EditorReplaceTextRequest:
		return fmt.Sprintf("ReplaceText in %s at offset %d for length %d", r.Doc.Path, r.Offset, r.Length)
	case m.CursorInfoRequest:
		return fmt.Sprintf("CursorInfo in %s at offset %d with args: %s", r.Doc.Path, r.Offset, strings.Join(r.Args, " "))
	case m.CodeCompleteRequest:
		return fmt.Sprintf("CodeComplete in %s at offset %d with args: %s", r.Doc.Path, r.Offset, strings.Join(r.Args, " "))
	case m.RangeInfoRequest:
		return fmt.Sprintf("RangeInfo in %s at offset %d for length %d with args: %s", r.Doc.Path, r.Offset, r.Length, strings.Join(r.Args, " "))
	case m.SemanticRefactoringRequest:
		return fmt.Sprintf("SemanticRefactoring (%s) in %s at offset %d with args: %s", r.Kind, r.Doc.Path, r.Offset, strings.Join(r.Args, " "))
	}

	return fmt.Sprintf("unknown request %T", req)
}
