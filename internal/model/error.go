package model

// SourceKitErrorReason explains why a backend response was judged invalid.
type SourceKitErrorReason string

const (
	// ReasonErrorResponse indicates the backend answered with an error response.
	ReasonErrorResponse SourceKitErrorReason = "errorResponse"
	// ReasonErrorTypeInResponse indicates the response body embedded an error type.
	ReasonErrorTypeInResponse SourceKitErrorReason = "errorTypeInResponse"
	// ReasonErrorDeserializingSyntaxTree indicates the returned syntax tree
	// could not be deserialized.
	ReasonErrorDeserializingSyntaxTree SourceKitErrorReason = "errorDeserializingSyntaxTree"
	// ReasonSourceAndSyntaxTreeMismatch indicates the returned syntax tree does
	// not reproduce the document source.
	ReasonSourceAndSyntaxTreeMismatch SourceKitErrorReason = "sourceAndSyntaxTreeMismatch"
)

// Valid reports whether r is one of the named reasons.
func (r SourceKitErrorReason) Valid() bool {
	switch r {
	case ReasonErrorResponse, ReasonErrorTypeInResponse,
		ReasonErrorDeserializingSyntaxTree, ReasonSourceAndSyntaxTreeMismatch:
		return true
	}

	return false
}

// SourceKitError is a detected backend failure. Every variant carries the
// request that triggered it.
type SourceKitError interface {
	// Request returns the request that was in flight when the failure occurred.
	Request() RequestInfo

	sealedError()
}

// CrashedError reports that the backend crashed while servicing Req.
type CrashedError struct {
	Req RequestInfo
}

// TimedOutError reports that the backend did not answer Req in time.
type TimedOutError struct {
	Req RequestInfo
}

// FailedError reports that the backend answered Req with an invalid response.
type FailedError struct {
	Reason   SourceKitErrorReason
	Req      RequestInfo
	Response string
}

// Request implements SourceKitError.
func (e CrashedError) Request() RequestInfo { return e.Req }

// Request implements SourceKitError.
func (e TimedOutError) Request() RequestInfo { return e.Req }

// Request implements SourceKitError.
func (e FailedError) Request() RequestInfo { return e.Req }

func (CrashedError) sealedError()  {}
func (TimedOutError) sealedError() {}
func (FailedError) sealedError()   {}

// Message is the transmissible envelope. Detected failures are the only
// variant today; the union is closed but expected to grow.
type Message interface {
	sealedMessage()
}

// DetectedMessage wraps a detected backend failure.
type DetectedMessage struct {
	Error SourceKitError
}

func (DetectedMessage) sealedMessage() {}
