package fax

import "fmt"

// Kind classifies a failed tool invocation.
type Kind string

const (
	// KindValidation marks a request rejected before any remote call.
	KindValidation Kind = "validation_error"
	// KindRemote marks a failure of the remote fax service or transport.
	KindRemote Kind = "remote_error"
)

// Result is the tagged outcome of a tool invocation.
// The plain-text string an agent receives is one serialization of this
// value; integrations that need to branch on the outcome can inspect
// OK and Kind instead of substring-matching the text.
type Result struct {
	OK      bool   `json:"ok"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

func (r *Result) String() string {
	return r.Message
}

// GetContent gets the content of the message for the chat history
func (r *Result) GetContent() string {
	return r.Message
}

func okResult(msg string) *Result {
	return &Result{
		OK:      true,
		Message: msg,
	}
}

func validationResult(msg string) *Result {
	return &Result{
		Kind:    KindValidation,
		Message: "Error: " + msg,
	}
}

func invalidJSONResult() *Result {
	return &Result{
		Kind:    KindValidation,
		Message: "Error: Invalid JSON input. Please provide a valid JSON object.",
	}
}

func remoteResult(format string, err error) *Result {
	return &Result{
		Kind:    KindRemote,
		Message: fmt.Sprintf(format, err.Error()),
	}
}

// ValidationError is a rejected request field, reported to the caller
// verbatim with the "Error:" prefix.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
