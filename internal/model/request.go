package model

// RequestInfo is one editor-like operation issued against a tracked document.
// It is a closed union: the only implementations live in this package.
type RequestInfo interface {
	// Document returns the document the request operates on.
	Document() DocumentInfo

	sealedRequest()
}

// EditorOpenRequest opens a document in the backend.
type EditorOpenRequest struct {
	Doc DocumentInfo
}

// EditorCloseRequest closes a previously opened document.
type EditorCloseRequest struct {
	Doc DocumentInfo
}

// EditorReplaceTextRequest replaces the Length bytes at Offset with Text.
type EditorReplaceTextRequest struct {
	Doc    DocumentInfo
	Offset int
	Length int
	Text   string
}

// CursorInfoRequest queries symbol information at a byte offset.
type CursorInfoRequest struct {
	Doc    DocumentInfo
	Offset int
	Args   []string
}

// CodeCompleteRequest requests completions at a byte offset.
type CodeCompleteRequest struct {
	Doc    DocumentInfo
	Offset int
	Args   []string
}

// RangeInfoRequest queries information about the byte range
// [Offset, Offset+Length).
type RangeInfoRequest struct {
	Doc    DocumentInfo
	Offset int
	Length int
	Args   []string
}

// SemanticRefactoringRequest invokes the refactoring Kind at a byte offset.
type SemanticRefactoringRequest struct {
	Doc    DocumentInfo
	Offset int
	Kind   string
	Args   []string
}

// Document implements RequestInfo.
func (r EditorOpenRequest) Document() DocumentInfo { return r.Doc }

// Document implements RequestInfo.
func (r EditorCloseRequest) Document() DocumentInfo { return r.Doc }

// Document implements RequestInfo.
func (r EditorReplaceTextRequest) Document() DocumentInfo { return r.Doc }

// Document implements RequestInfo.
func (r CursorInfoRequest) Document() DocumentInfo { return r.Doc }

// Document implements RequestInfo.
func (r CodeCompleteRequest) Document() DocumentInfo { return r.Doc }

// Document implements RequestInfo.
func (r RangeInfoRequest) Document() DocumentInfo { return r.Doc }

// Document implements RequestInfo.
func (r SemanticRefactoringRequest) Document() DocumentInfo { return r.Doc }

func (EditorOpenRequest) sealedRequest()          {}
func (EditorCloseRequest) sealedRequest()         {}
func (EditorReplaceTextRequest) sealedRequest()   {}
func (CursorInfoRequest) sealedRequest()          {}
func (CodeCompleteRequest) sealedRequest()        {}
func (RangeInfoRequest) sealedRequest()           {}
func (SemanticRefactoringRequest) sealedRequest() {}
