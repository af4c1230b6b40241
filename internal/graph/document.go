// Package graph defines the Graph Document written by the generator and read
// by the viewer, together with payload extraction and validation.
package graph

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Document is the nodes/edges structure serialized to the output file.
type Document struct {
	Summary string `json:"summary,omitempty" jsonschema_description:"Short readable explanation of the graph"`
	Nodes   []Node `json:"nodes" jsonschema_description:"Vertices of the graph"`
	Edges   []Edge `json:"edges" jsonschema_description:"Connections between nodes"`
}

// Node is a labeled vertex.
type Node struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Group      string   `json:"group,omitempty"`
	Source     string   `json:"source,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Edge connects two node ids.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// UnmarshalJSON also accepts the "text" and "type" node fields of the
// {"text": ..., "graph": {...}} output shape as label and group.
func (n *Node) UnmarshalJSON(data []byte) error {
	type plain Node
	var aux struct {
		plain
		Text string `json:"text"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*n = Node(aux.plain)
	if n.Label == "" {
		n.Label = aux.Text
	}
	if n.Group == "" {
		n.Group = aux.Type
	}
	return nil
}

// UnmarshalJSON accepts "type" as the edge label when "label" is absent.
func (e *Edge) UnmarshalJSON(data []byte) error {
	type plain Edge
	var aux struct {
		plain
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Edge(aux.plain)
	if e.Label == "" {
		e.Label = aux.Type
	}
	return nil
}

func (d Document) String() string {
	data, err := json.Marshal(d)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal document")
		return ""
	}
	return string(data)
}

// Normalize trims surrounding whitespace from node ids and edge endpoints.
// A missing edge list becomes empty so the file never holds "edges": null.
func (d *Document) Normalize() {
	if d.Edges == nil {
		d.Edges = []Edge{}
	}
	for i := range d.Nodes {
		d.Nodes[i].ID = strings.TrimSpace(d.Nodes[i].ID)
	}
	for i := range d.Edges {
		d.Edges[i].Source = strings.TrimSpace(d.Edges[i].Source)
		d.Edges[i].Target = strings.TrimSpace(d.Edges[i].Target)
	}
}

// Stats returns a one-line description used in logs and CLI output.
func (d Document) Stats() string {
	return fmt.Sprintf("%d nodes, %d edges", len(d.Nodes), len(d.Edges))
}

// Groups returns the distinct node groups in first-seen order.
func (d Document) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, n := range d.Nodes {
		if n.Group == "" || seen[n.Group] {
			continue
		}
		seen[n.Group] = true
		groups = append(groups, n.Group)
	}
	return groups
}
