package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nakamasato/topicgraph/internal/generator"
	"github.com/nakamasato/topicgraph/internal/graph"
)

var (
	ColorGreen = lipgloss.Color("#8ec07c")
	ColorRed   = lipgloss.Color("#fb4934")
	ColorDim   = lipgloss.Color("#928374")
	ColorFg    = lipgloss.Color("#ebdbb2")
)

var (
	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRed   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold  = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Success renders the line printed after a graph is written, e.g.
// "✔ graph.json: 2 nodes, 1 edges".
func Success(path string, doc *graph.Document) string {
	line := fmt.Sprintf("%s %s: %s", StyleGreen.Render("✔"), StyleBold.Render(path), doc.Stats())
	if doc.Summary != "" {
		line += "\n" + StyleDim.Render(doc.Summary)
	}
	return line
}

// Failure renders err prefixed with its category, e.g.
// "MissingCredential: missing credential: OPENAI_API_KEY is not set".
func Failure(err error) string {
	category := generator.Categorize(err)
	if category == generator.CategoryNone {
		return ""
	}
	return fmt.Sprintf("%s %s", StyleRed.Render(string(category)+":"), err.Error())
}

// Serving renders the line printed when the viewer starts listening.
func Serving(url string) string {
	return fmt.Sprintf("%s serving graph viewer at %s", StyleGreen.Render("●"), StyleBold.Render(url))
}
