package render

import (
	"fmt"
	"strings"

	m "skstress.dev/pkg/skstress/internal/model"
)

// Headline sentences, one per failure kind.
const (
	HeadlineCrashed  = "SourceKit crashed"
	HeadlineTimedOut = "SourceKit request timed out"
)

// Lines delimiting the annotated content block of a report.
const (
	ContentBegin = "-- begin content ----------"
	ContentEnd   = "-- end content ------------"
)

// MessagePrefix opens every rendered top-level message.
const MessagePrefix = "Failure detected: "

var reasonHeadlines = map[m.SourceKitErrorReason]string{
	m.ReasonErrorResponse:                "SourceKit returned an error response",
	m.ReasonErrorTypeInResponse:          "SourceKit returned an error type in its response",
	m.ReasonErrorDeserializingSyntaxTree: "SourceKit returned a syntax tree that failed to deserialize",
	m.ReasonSourceAndSyntaxTreeMismatch:  "SourceKit returned a syntax tree that does not match the document source",
}

// Headline returns the fixed human sentence for a failure reason.
func Headline(reason m.SourceKitErrorReason) string {
	if headline, ok := reasonHeadlines[reason]; ok {
		return headline
	}

	return fmt.Sprintf("SourceKit failed (%s)", reason)
}

// ReportError formats err as a multi-line human report: a headline, the
// triggering request, and the annotated document content. The failed variant
// additionally carries the raw backend response before the content block.
func ReportError(err m.SourceKitError) string {
	var b strings.Builder

	switch e := err.(type) {
	case m.CrashedError:
		b.WriteString(HeadlineCrashed)
	case m.TimedOutError:
		b.WriteString(HeadlineTimedOut)
	case m.FailedError:
		b.WriteString(Headline(e.Reason))
	default:
		fmt.Fprintf(&b, "unknown failure %T", err)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  request: %s\n", Describe(err.Request()))

	if failed, ok := err.(m.FailedError); ok {
		fmt.Fprintf(&b, "  response: %s\n", failed.Response)
	}

	b.WriteString(ContentBegin)
	b.WriteString("\n")
	b.WriteString(AnnotatedContent(err.Request()))
	b.WriteString("\n")
	b.WriteString(ContentEnd)
	b.WriteString("\n")

	return b.String()
}

// ReportMessage formats a top-level message.
func ReportMessage(msg m.Message) string {
	switch v := msg.(type) {
	case m.DetectedMessage:
		return MessagePrefix + ReportError(v.Error)
	default:
		return fmt.Sprintf("unknown message %T", msg)
	}
}
