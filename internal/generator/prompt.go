package generator

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/nakamasato/topicgraph/config"
	"github.com/nakamasato/topicgraph/internal/graph"
	"github.com/nakamasato/topicgraph/internal/llm"
)

//go:embed templates/concept.tmpl
var conceptTemplate string

//go:embed templates/reasoning.tmpl
var reasoningTemplate string

const maxNodes = 20

// Mode is a prompt together with the vocabulary its answers must use.
type Mode struct {
	Name       string
	Template   string
	Vocabulary graph.Vocabulary
}

var modes = map[string]Mode{
	config.ModeConcept: {
		Name:     config.ModeConcept,
		Template: conceptTemplate,
	},
	config.ModeReasoning: {
		Name:     config.ModeReasoning,
		Template: reasoningTemplate,
		Vocabulary: graph.Vocabulary{
			Groups: []string{"Claim", "Evidence", "Assumption"},
			Labels: []string{"supports", "contradicts", "depends-on", "implies"},
		},
	},
}

// LookupMode returns the mode registered under name.
func LookupMode(name string) (Mode, error) {
	m, ok := modes[name]
	if !ok {
		return Mode{}, fmt.Errorf("unknown mode %q", name)
	}
	return m, nil
}

// SystemPrompt renders the mode's instructions.
func (m Mode) SystemPrompt() (string, error) {
	return makePrompt(m.Template, m.Vocabulary)
}

// Messages builds the request: instructions as the system message and the
// topic verbatim as the user message.
func (m Mode) Messages(topic string) ([]llm.Message, error) {
	system, err := m.SystemPrompt()
	if err != nil {
		return nil, err
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: topic},
	}, nil
}

func makePrompt(templatefile string, vocab graph.Vocabulary) (string, error) {
	tmplData := struct {
		Groups   []string
		Labels   []string
		MaxNodes int
	}{
		Groups:   vocab.Groups,
		Labels:   vocab.Labels,
		MaxNodes: maxNodes,
	}

	tmpl, err := template.New("template").Funcs(template.FuncMap{"join": strings.Join}).Parse(templatefile)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, tmplData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
