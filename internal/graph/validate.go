package graph

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Vocabulary restricts node groups and edge labels. An empty set leaves the
// corresponding field unrestricted.
type Vocabulary struct {
	Groups []string
	Labels []string
}

// Validate checks the document invariants: at least one node, non-empty unique
// node ids, non-empty labels, confidence within [0,1] and no dangling edge
// references. Returns a *ValidationError on the first violation.
func Validate(d *Document) error {
	return ValidateWith(d, Vocabulary{})
}

// ValidateWith runs Validate and additionally enforces the vocabulary.
func ValidateWith(d *Document, vocab Vocabulary) error {
	if d == nil || len(d.Nodes) == 0 {
		return &ValidationError{Kind: KindEmpty, Msg: "graph has no nodes"}
	}

	groups := mapset.NewSet(vocab.Groups...)
	labels := mapset.NewSet(vocab.Labels...)

	ids := mapset.NewSetWithSize[string](len(d.Nodes))
	for i, n := range d.Nodes {
		if n.ID == "" {
			return &ValidationError{Kind: KindMissingField, Msg: fmt.Sprintf("node %d has an empty id", i)}
		}
		if strings.TrimSpace(n.Label) == "" {
			return &ValidationError{Kind: KindMissingField, Msg: fmt.Sprintf("node %q has an empty label", n.ID)}
		}
		if !ids.Add(n.ID) {
			return &ValidationError{Kind: KindDuplicateID, Msg: fmt.Sprintf("duplicate node id: %q", n.ID)}
		}
		if n.Confidence != nil && (*n.Confidence < 0 || *n.Confidence > 1) {
			return &ValidationError{Kind: KindOutOfRange, Msg: fmt.Sprintf("node %q confidence %v is outside [0,1]", n.ID, *n.Confidence)}
		}
		if groups.Cardinality() > 0 && !groups.Contains(n.Group) {
			return &ValidationError{Kind: KindUnknownGroup, Msg: fmt.Sprintf("node %q has group %q, want one of %v", n.ID, n.Group, vocab.Groups)}
		}
	}

	for i, e := range d.Edges {
		if !ids.Contains(e.Source) {
			return &ValidationError{Kind: KindDanglingEdge, Msg: fmt.Sprintf("edge %d source %q not found in nodes", i, e.Source)}
		}
		if !ids.Contains(e.Target) {
			return &ValidationError{Kind: KindDanglingEdge, Msg: fmt.Sprintf("edge %d target %q not found in nodes", i, e.Target)}
		}
		if labels.Cardinality() > 0 && !labels.Contains(e.Label) {
			return &ValidationError{Kind: KindUnknownLabel, Msg: fmt.Sprintf("edge %s->%s has label %q, want one of %v", e.Source, e.Target, e.Label, vocab.Labels)}
		}
	}

	return nil
}
