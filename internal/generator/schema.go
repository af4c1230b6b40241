package generator

import "github.com/nakamasato/topicgraph/internal/llm"

// graphResponse mirrors graph.Document for strict structured output, where
// every property must be required.
type graphResponse struct {
	Summary string         `json:"summary" jsonschema_description:"Short readable explanation of the graph"`
	Nodes   []nodeResponse `json:"nodes" jsonschema_description:"Vertices of the graph"`
	Edges   []edgeResponse `json:"edges" jsonschema_description:"Directed connections between nodes"`
}

type nodeResponse struct {
	ID         string  `json:"id" jsonschema_description:"Short unique node id, e.g. n1, c1, e2"`
	Label      string  `json:"label" jsonschema_description:"Human-readable content of the node"`
	Group      string  `json:"group" jsonschema_description:"Category of the node"`
	Source     string  `json:"source" jsonschema_description:"Optional provenance; empty string when unknown"`
	Confidence float64 `json:"confidence" jsonschema_description:"Confidence in [0,1]"`
}

type edgeResponse struct {
	Source string `json:"source" jsonschema_description:"Id of the source node"`
	Target string `json:"target" jsonschema_description:"Id of the target node"`
	Label  string `json:"label" jsonschema_description:"Relation between the nodes"`
}

var GraphSchemaParam = llm.GenerateSchema[graphResponse]("graph", "A graph of nodes and edges describing the topic")
