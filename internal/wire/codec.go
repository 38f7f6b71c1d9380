// Package wire implements the newline-delimited JSON protocol used to report
// detected backend failures to the controlling process.
//
// Every tagged union encodes as one JSON object carrying a discriminator
// field plus variant-specific payload fields. The tag strings and field names
// are the wire contract; independently written consumers depend on them
// byte for byte.
package wire

import (
	"encoding/json"
	"fmt"

	m "skstress.dev/pkg/skstress/internal/model"
)

// Request discriminator tags. Note that EditorReplaceTextRequest travels as
// "replaceText", not "editorReplaceText".
const (
	tagEditorOpen          = "editorOpen"
	tagEditorClose         = "editorClose"
	tagReplaceText         = "replaceText"
	tagCursorInfo          = "cursorInfo"
	tagCodeComplete        = "codeComplete"
	tagRangeInfo           = "rangeInfo"
	tagSemanticRefactoring = "semanticRefactoring"
)

// Error discriminator tags.
const (
	tagCrashed  = "crashed"
	tagTimedOut = "timedOut"
	tagFailed   = "failed"
)

// tagDetected is the only base message variant today.
const tagDetected = "detected"

type wireModification struct {
	Mode    string `json:"mode"`
	Content string `json:"content"`
}

type wireDocument struct {
	Path         string            `json:"path"`
	Modification *wireModification `json:"modification,omitempty"`
}

type wireRequest struct {
	Request  string       `json:"request"`
	Document wireDocument `json:"document"`
	Offset   *int         `json:"offset,omitempty"`
	Length   *int         `json:"length,omitempty"`
	Kind     *string      `json:"kind,omitempty"`
	Text     *string      `json:"text,omitempty"`
	Args     *[]string    `json:"args,omitempty"`
}

type wireError struct {
	Error    string          `json:"error"`
	Kind     *string         `json:"kind,omitempty"`
	Request  json.RawMessage `json:"request"`
	Response *string         `json:"response,omitempty"`
}

type wireMessage struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// mustMarshal serializes a wire struct. The encodable type set is closed, so
// a marshal failure is a logic defect, not a runtime condition.
func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("wire: marshal of closed type set failed: %v", err))
	}

	return data
}

func encodeDocument(doc m.DocumentInfo) wireDocument {
	w := wireDocument{Path: string(doc.Path)}
	if doc.Modification != nil {
		w.Modification = &wireModification{
			Mode:    string(doc.Modification.Mode),
			Content: doc.Modification.Content,
		}
	}

	return w
}

// argsField normalizes nil argument lists so variants that carry args always
// emit an "args" array on the wire.
func argsField(args []string) *[]string {
	if args == nil {
		args = []string{}
	}

	return &args
}

func intField(v int) *int { return &v }

func stringField(v string) *string { return &v }

// EncodeRequest renders req in its wire form.
func EncodeRequest(req m.RequestInfo) []byte {
	var w wireRequest

	switch r := req.(type) {
	case m.EditorOpenRequest:
		w = wireRequest{Request: tagEditorOpen, Document: encodeDocument(r.Doc)}
	case m.EditorCloseRequest:
		w = wireRequest{Request: tagEditorClose, Document: encodeDocument(r.Doc)}
	case m.EditorReplaceTextRequest:
		w = wireRequest{
			Request:  tagReplaceText,
			Document: encodeDocument(r.Doc),
			Offset:   intField(r.Offset),
			Length:   intField(r.Length),
			Text:     stringField(r.Text),
		}
	case m.CursorInfoRequest:
		w = wireRequest{
			Request:  tagCursorInfo,
			Document: encodeDocument(r.Doc),
			Offset:   intField(r.Offset),
			Args:     argsField(r.Args),
		}
	case m.CodeCompleteRequest:
		w = wireRequest{
			Request:  tagCodeComplete,
			Document: encodeDocument(r.Doc),
			Offset:   intField(r.Offset),
			Args:     argsField(r.Args),
		}
	case m.RangeInfoRequest:
		w = wireRequest{
			Request:  tagRangeInfo,
			Document: encodeDocument(r.Doc),
			Offset:   intField(r.Offset),
			Length:   intField(r.Length),
			Args:     argsField(r.Args),
		}
	case m.SemanticRefactoringRequest:
		w = wireRequest{
			Request:  tagSemanticRefactoring,
			Document: encodeDocument(r.Doc),
			Offset:   intField(r.Offset),
			Kind:     stringField(r.Kind),
			Args:     argsField(r.Args),
		}
	default:
		panic(fmt.Sprintf("wire: unknown request variant %T", req))
	}

	return mustMarshal(w)
}

// EncodeError renders err in its wire form.
func EncodeError(err m.SourceKitError) []byte {
	var w wireError

	switch e := err.(type) {
	case m.CrashedError:
		w = wireError{Error: tagCrashed, Request: EncodeRequest(e.Req)}
	case m.TimedOutError:
		w = wireError{Error: tagTimedOut, Request: EncodeRequest(e.Req)}
	case m.FailedError:
		w = wireError{
			Error:    tagFailed,
			Kind:     stringField(string(e.Reason)),
			Request:  EncodeRequest(e.Req),
			Response: stringField(e.Response),
		}
	default:
		panic(fmt.Sprintf("wire: unknown error variant %T", err))
	}

	return mustMarshal(w)
}

// EncodeMessage renders msg in its wire form, without a trailing newline.
// Encoding never fails for values of the closed model type set.
func EncodeMessage(msg m.Message) []byte {
	switch v := msg.(type) {
	case m.DetectedMessage:
		return mustMarshal(wireMessage{Message: tagDetected, Error: EncodeError(v.Error)})
	default:
		panic(fmt.Sprintf("wire: unknown message variant %T", msg))
	}
}

func decodeModification(w *wireModification) (*m.DocumentModification, error) {
	if w == nil {
		return nil, nil
	}

	mode := m.RewriteMode(w.Mode)
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown rewrite mode %q", w.Mode)
	}

	return &m.DocumentModification{Mode: mode, Content: w.Content}, nil
}

func decodeDocument(raw json.RawMessage) (m.DocumentInfo, error) {
	var w struct {
		Path         *string           `json:"path"`
		Modification *wireModification `json:"modification"`
	}

	if err := json.Unmarshal(raw, &w); err != nil {
		return m.DocumentInfo{}, err
	}

	if w.Path == nil || *w.Path == "" {
		return m.DocumentInfo{}, fmt.Errorf("document is missing a path")
	}

	mod, err := decodeModification(w.Modification)
	if err != nil {
		return m.DocumentInfo{}, err
	}

	return m.DocumentInfo{Path: m.Path(*w.Path), Modification: mod}, nil
}

// DecodeRequest parses one wire-encoded request. The discriminator is read
// first; an unknown tag or a missing required field fails the whole decode.
func DecodeRequest(data []byte) (m.RequestInfo, error) {
	var w struct {
		Request  *string         `json:"request"`
		Document json.RawMessage `json:"document"`
		Offset   *int            `json:"offset"`
		Length   *int            `json:"length"`
		Kind     *string         `json:"kind"`
		Text     *string         `json:"text"`
		Args     *[]string       `json:"args"`
	}

	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	if w.Request == nil {
		return nil, fmt.Errorf("request is missing its discriminator")
	}

	if w.Document == nil {
		return nil, fmt.Errorf("request %q is missing its document", *w.Request)
	}

	doc, err := decodeDocument(w.Document)
	if err != nil {
		return nil, err
	}

	switch *w.Request {
	case tagEditorOpen:
		return m.EditorOpenRequest{Doc: doc}, nil
	case tagEditorClose:
		return m.EditorCloseRequest{Doc: doc}, nil
	case tagReplaceText:
		if w.Offset == nil || w.Length == nil || w.Text == nil {
			return nil, fmt.Errorf("replaceText request is missing offset, length, or text")
		}

		return m.EditorReplaceTextRequest{Doc: doc, Offset: *w.Offset, Length: *w.Length, Text: *w.Text}, nil
	case tagCursorInfo:
		if w.Offset == nil || w.Args == nil {
			return nil, fmt.Errorf("cursorInfo request is missing offset or args")
		}

		return m.CursorInfoRequest{Doc: doc, Offset: *w.Offset, Args: *w.Args}, nil
	case tagCodeComplete:
		if w.Offset == nil || w.Args == nil {
			return nil, fmt.Errorf("codeComplete request is missing offset or args")
		}

		return m.CodeCompleteRequest{Doc: doc, Offset: *w.Offset, Args: *w.Args}, nil
	case tagRangeInfo:
		if w.Offset == nil || w.Length == nil || w.Args == nil {
			return nil, fmt.Errorf("rangeInfo request is missing offset, length, or args")
		}

		return m.RangeInfoRequest{Doc: doc, Offset: *w.Offset, Length: *w.Length, Args: *w.Args}, nil
	case tagSemanticRefactoring:
		if w.Offset == nil || w.Kind == nil || w.Args == nil {
			return nil, fmt.Errorf("semanticRefactoring request is missing offset, kind, or args")
		}

		return m.SemanticRefactoringRequest{Doc: doc, Offset: *w.Offset, Kind: *w.Kind, Args: *w.Args}, nil
	}

	return nil, fmt.Errorf("unknown request discriminator %q", *w.Request)
}

// DecodeError parses one wire-encoded error.
func DecodeError(data []byte) (m.SourceKitError, error) {
	var w struct {
		Error    *string         `json:"error"`
		Kind     *string         `json:"kind"`
		Request  json.RawMessage `json:"request"`
		Response *string         `json:"response"`
	}

	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	if w.Error == nil {
		return nil, fmt.Errorf("error is missing its discriminator")
	}

	if w.Request == nil {
		return nil, fmt.Errorf("error %q is missing its request", *w.Error)
	}

	req, err := DecodeRequest(w.Request)
	if err != nil {
		return nil, err
	}

	switch *w.Error {
	case tagCrashed:
		return m.CrashedError{Req: req}, nil
	case tagTimedOut:
		return m.TimedOutError{Req: req}, nil
	case tagFailed:
		if w.Kind == nil || w.Response == nil {
			return nil, fmt.Errorf("failed error is missing kind or response")
		}

		reason := m.SourceKitErrorReason(*w.Kind)
		if !reason.Valid() {
			return nil, fmt.Errorf("unknown failure reason %q", *w.Kind)
		}

		return m.FailedError{Reason: reason, Req: req, Response: *w.Response}, nil
	}

	return nil, fmt.Errorf("unknown error discriminator %q", *w.Error)
}

// DecodeMessage parses one wire-encoded message. Malformed input reports
// ok=false rather than an error: the byte source may contain unrelated or
// truncated data, and a caller must treat such lines as "no message here".
func DecodeMessage(data []byte) (m.Message, bool) {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, false
	}

	if w.Message != tagDetected || w.Error == nil {
		return nil, false
	}

	skErr, err := DecodeError(w.Error)
	if err != nil {
		return nil, false
	}

	return m.DetectedMessage{Error: skErr}, true
}
