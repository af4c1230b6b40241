package generator

import (
	"errors"

	"github.com/nakamasato/topicgraph/internal/graph"
)

var (
	// ErrMissingCredential indicates the API key is absent. No request is made.
	ErrMissingCredential = errors.New("missing credential")

	// ErrTransport indicates the API call failed: connectivity, rate limit,
	// authentication rejection or any other non-2xx reply.
	ErrTransport = errors.New("transport error")

	// ErrEmptyTopic indicates the topic is empty after trimming.
	ErrEmptyTopic = errors.New("topic is empty")
)

// Category names a failure class in user-facing output.
type Category string

const (
	CategoryNone              Category = ""
	CategoryMissingCredential Category = "MissingCredential"
	CategoryTransport         Category = "TransportError"
	CategoryMalformedResponse Category = "MalformedResponse"
	CategoryInvalidGraph      Category = "InvalidGraph"
	CategoryOther             Category = "Error"
)

// Exit codes per category. 1 covers usage and I/O failures.
const (
	ExitOK                = 0
	ExitOther             = 1
	ExitMissingCredential = 3
	ExitTransport         = 4
	ExitMalformedResponse = 5
	ExitInvalidGraph      = 6
)

// Categorize maps an error returned by this package to its category.
func Categorize(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrMissingCredential):
		return CategoryMissingCredential
	case errors.Is(err, ErrTransport):
		return CategoryTransport
	case errors.Is(err, graph.ErrMalformedResponse):
		return CategoryMalformedResponse
	case errors.Is(err, graph.ErrInvalidGraph):
		return CategoryInvalidGraph
	default:
		return CategoryOther
	}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	switch Categorize(err) {
	case CategoryNone:
		return ExitOK
	case CategoryMissingCredential:
		return ExitMissingCredential
	case CategoryTransport:
		return ExitTransport
	case CategoryMalformedResponse:
		return ExitMalformedResponse
	case CategoryInvalidGraph:
		return ExitInvalidGraph
	default:
		return ExitOther
	}
}
