package llm

import (
	"context"
	"errors"
)

type Client interface {
	// GenerateCompletion asks for a reply constrained to the given JSON schema.
	GenerateCompletion(ctx context.Context, messages []Message, schema Schema) (string, error)
	// GenerateCompletionSimple asks for a free-text reply.
	GenerateCompletionSimple(ctx context.Context, messages []Message) (string, error)
}

var (
	// ErrTruncated indicates the reply was cut off by the token limit.
	ErrTruncated = errors.New("completion truncated")

	// ErrEmptyResponse indicates the API returned no choices.
	ErrEmptyResponse = errors.New("no choices in completion")
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role   `json:"type"`
	Content string `json:"content"`
}

// DummyClient returns a canned reply without any network access.
type DummyClient struct {
	ReturnValue string
	Err         error
	// OnRequest, when set, observes every request. schema is nil for simple completions.
	OnRequest func(messages []Message, schema *Schema)
}

func (d DummyClient) GenerateCompletion(ctx context.Context, messages []Message, schema Schema) (string, error) {
	if d.OnRequest != nil {
		d.OnRequest(messages, &schema)
	}
	if d.Err != nil {
		return "", d.Err
	}
	if d.ReturnValue != "" {
		return d.ReturnValue, nil
	}
	return "dummy result", nil
}

func (d DummyClient) GenerateCompletionSimple(ctx context.Context, messages []Message) (string, error) {
	if d.OnRequest != nil {
		d.OnRequest(messages, nil)
	}
	if d.Err != nil {
		return "", d.Err
	}
	if d.ReturnValue != "" {
		return d.ReturnValue, nil
	}
	return "dummy simple result", nil
}
