package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nakamasato/topicgraph/internal/llm"
)

func TestGenerateCompletion(t *testing.T) {
	client := llm.DummyClient{ReturnValue: "test completion"}
	ctx := context.Background()
	messages := []llm.Message{}
	schema := llm.Schema{}

	result, err := client.GenerateCompletion(ctx, messages, schema)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "test completion" {
		t.Errorf("expected 'test completion', got %v", result)
	}
}

func TestGenerateCompletionSimple(t *testing.T) {
	client := llm.DummyClient{ReturnValue: "simple completion"}
	ctx := context.Background()
	messages := []llm.Message{}

	result, err := client.GenerateCompletionSimple(ctx, messages)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "simple completion" {
		t.Errorf("expected 'simple completion', got %v", result)
	}
}

func TestDummyClientError(t *testing.T) {
	wantErr := errors.New("boom")
	client := llm.DummyClient{ReturnValue: "ignored", Err: wantErr}

	if _, err := client.GenerateCompletionSimple(context.Background(), nil); !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
	if _, err := client.GenerateCompletion(context.Background(), nil, llm.Schema{}); !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

func TestDummyClientOnRequest(t *testing.T) {
	var gotSchema *llm.Schema
	var gotMessages []llm.Message
	client := llm.DummyClient{
		OnRequest: func(messages []llm.Message, schema *llm.Schema) {
			gotMessages = messages
			gotSchema = schema
		},
	}

	msgs := []llm.Message{{Role: llm.RoleUser, Content: "binary search trees"}}
	if _, err := client.GenerateCompletion(context.Background(), msgs, llm.Schema{Name: "graph"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotSchema == nil || gotSchema.Name != "graph" {
		t.Errorf("expected schema 'graph', got %v", gotSchema)
	}
	if len(gotMessages) != 1 || gotMessages[0].Content != "binary search trees" {
		t.Errorf("unexpected messages %v", gotMessages)
	}

	if _, err := client.GenerateCompletionSimple(context.Background(), msgs); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotSchema != nil {
		t.Errorf("expected nil schema for simple completion, got %v", gotSchema)
	}
}
