package analysis

import "fmt"

// ErrInvalidInput indicates malformed caller input (e.g. an empty
// transcript). Rejected before any remote call is made.
type ErrInvalidInput struct {
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// ErrMalformedOutput indicates the model returned output that could not
// be parsed into any structured form, even after fence stripping and
// balanced-delimiter recovery. Terminal for the attempt; not replayed
// as a fresh remote call.
type ErrMalformedOutput struct {
	Raw string
	Err error
}

func (e *ErrMalformedOutput) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *ErrMalformedOutput) Unwrap() error { return e.Err }

// ErrIncompleteExtraction indicates output that parsed but failed
// minimum-content validation, such as zero valid goals after filtering.
// Terminal, never retried.
type ErrIncompleteExtraction struct {
	Reason string
}

func (e *ErrIncompleteExtraction) Error() string {
	return fmt.Sprintf("incomplete extraction: %s", e.Reason)
}

// ErrExtraction is the failure surfaced at the Processor boundary when
// no usable result could be produced. Err carries the last underlying
// cause (transport exhaustion, malformed output, or incomplete
// extraction).
type ErrExtraction struct {
	Op  string // "trial" or "session"
	Err error
}

func (e *ErrExtraction) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", e.Op, e.Err)
}

func (e *ErrExtraction) Unwrap() error { return e.Err }
