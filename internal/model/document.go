// Package model defines the value types exchanged between stress workers
// and the controlling process.
package model

// Path represents a file system path.
type Path string

// RewriteMode describes how a tracked document's content is progressively
// rewritten while it is being stressed.
type RewriteMode string

const (
	// RewriteNone leaves the document untouched.
	RewriteNone RewriteMode = "none"
	// RewriteBasic rewrites the document front to back.
	RewriteBasic RewriteMode = "basic"
	// RewriteConcurrent interleaves rewrites as concurrent editors would.
	RewriteConcurrent RewriteMode = "concurrent"
	// RewriteInsideOut rewrites outward from the middle of the document.
	RewriteInsideOut RewriteMode = "insideOut"
)

// RewriteModes lists every valid mode in wire order.
var RewriteModes = []RewriteMode{RewriteNone, RewriteBasic, RewriteConcurrent, RewriteInsideOut}

// Valid reports whether m is one of the named modes.
func (m RewriteMode) Valid() bool {
	switch m {
	case RewriteNone, RewriteBasic, RewriteConcurrent, RewriteInsideOut:
		return true
	}

	return false
}

// DocumentModification is a pending rewrite applied to a document. Content is
// the full rewritten text, not a delta.
type DocumentModification struct {
	Mode    RewriteMode
	Content string
}

// DocumentInfo identifies a tracked in-memory document. A nil Modification
// means the document is unmodified.
type DocumentInfo struct {
	Path         Path
	Modification *DocumentModification
}
