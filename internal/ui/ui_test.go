package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nakamasato/topicgraph/internal/generator"
	"github.com/nakamasato/topicgraph/internal/graph"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	doc := &graph.Document{
		Summary: "Ordered keys.",
		Nodes:   []graph.Node{{ID: "n1", Label: "BST"}, {ID: "n2", Label: "Insert"}},
		Edges:   []graph.Edge{{Source: "n1", Target: "n2"}},
	}
	out := Success("graph.json", doc)
	assert.Contains(t, out, "graph.json")
	assert.Contains(t, out, "2 nodes, 1 edges")
	assert.Contains(t, out, "Ordered keys.")
}

func TestFailure(t *testing.T) {
	assert.Empty(t, Failure(nil))

	out := Failure(fmt.Errorf("%w: OPENAI_API_KEY is not set", generator.ErrMissingCredential))
	assert.Contains(t, out, "MissingCredential:")
	assert.Contains(t, out, "OPENAI_API_KEY is not set")

	assert.Contains(t, Failure(&graph.ParseError{Msg: "empty response"}), "MalformedResponse:")
	assert.Contains(t, Failure(errors.New("boom")), "Error:")
}
