package generator

import (
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphSchemaParam_IsStrict(t *testing.T) {
	assert.Equal(t, "graph", GraphSchemaParam.Name)

	root, ok := GraphSchemaParam.Schema.(*jsonschema.Schema)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"summary", "nodes", "edges"}, root.Required)

	nodes, ok := root.Properties.Get("nodes")
	require.True(t, ok)
	require.NotNil(t, nodes.Items)
	assert.ElementsMatch(t, []string{"id", "label", "group", "source", "confidence"}, nodes.Items.Required)

	edges, ok := root.Properties.Get("edges")
	require.True(t, ok)
	require.NotNil(t, edges.Items)
	assert.ElementsMatch(t, []string{"source", "target", "label"}, edges.Items.Required)
}
