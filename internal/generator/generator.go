package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nakamasato/topicgraph/config"
	"github.com/nakamasato/topicgraph/internal/file"
	"github.com/nakamasato/topicgraph/internal/graph"
	"github.com/nakamasato/topicgraph/internal/llm"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Mode             string
	StructuredOutput bool
}

// Generator turns a topic into a validated graph document with one model call.
type Generator struct {
	llmClient llm.Client
	mode      Mode
	structure bool
	logger    logrus.FieldLogger
}

func New(llmClient llm.Client, opts Options, logger logrus.FieldLogger) (*Generator, error) {
	if opts.Mode == "" {
		opts.Mode = config.ModeConcept
	}
	mode, err := LookupMode(opts.Mode)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Generator{
		llmClient: llmClient,
		mode:      mode,
		structure: opts.StructuredOutput,
		logger:    logger,
	}, nil
}

// Generate sends the topic to the model and returns the parsed, validated
// document. Errors unwrap to ErrTransport, graph.ErrMalformedResponse or
// graph.ErrInvalidGraph.
func (g *Generator) Generate(ctx context.Context, topic string) (*graph.Document, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	messages, err := g.mode.Messages(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	var content string
	if g.structure {
		content, err = g.llmClient.GenerateCompletion(ctx, messages, GraphSchemaParam)
	} else {
		content, err = g.llmClient.GenerateCompletionSimple(ctx, messages)
	}
	if err != nil {
		return nil, completionError(err)
	}
	g.logger.WithField("bytes", len(content)).Debug("received completion")

	doc, err := graph.Parse(content, g.mode.Vocabulary)
	if err != nil {
		g.logger.WithError(err).Debugf("rejected completion: %s", content)
		return nil, err
	}
	return doc, nil
}

// GenerateToFile runs Generate and writes the document to outputPath. The
// file is only touched once the document is valid.
func (g *Generator) GenerateToFile(ctx context.Context, topic, outputPath string) (*graph.Document, error) {
	doc, err := g.Generate(ctx, topic)
	if err != nil {
		return nil, err
	}
	if err := file.SaveObject(doc, outputPath); err != nil {
		return nil, fmt.Errorf("failed to save graph: %w", err)
	}
	return doc, nil
}

// Run builds an OpenAI client from cfg and generates the graph for topic into
// cfg.Generate.OutputPath. A missing API key fails before any request is made.
func Run(ctx context.Context, cfg config.Config, topic string, logger logrus.FieldLogger) (*graph.Document, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if err := CheckCredential(cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(topic) == "" {
		return nil, ErrEmptyTopic
	}

	log := logger.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"topic":  strings.TrimSpace(topic),
		"mode":   cfg.Generate.Mode,
		"model":  cfg.OpenAI.Model,
	})

	opts := []llm.ClientOption{
		llm.WithChatModel(cfg.OpenAI.Model),
		llm.WithTemperature(cfg.OpenAI.Temperature),
	}
	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, llm.WithBaseURL(cfg.OpenAI.BaseURL))
	}
	llmClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, opts...)

	g, err := New(llmClient, Options{
		Mode:             cfg.Generate.Mode,
		StructuredOutput: cfg.OpenAI.StructuredOutput,
	}, log)
	if err != nil {
		return nil, err
	}

	log.Info("generating graph")
	doc, err := g.GenerateToFile(ctx, topic, cfg.Generate.OutputPath)
	if err != nil {
		log.WithField("category", Categorize(err)).WithError(err).Error("generation failed")
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"nodes":  len(doc.Nodes),
		"edges":  len(doc.Edges),
		"groups": doc.Groups(),
		"path":   cfg.Generate.OutputPath,
	}).Info("graph written")
	return doc, nil
}

// CheckCredential fails with ErrMissingCredential when no API key is configured.
func CheckCredential(cfg config.Config) error {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		return fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrMissingCredential)
	}
	return nil
}

func completionError(err error) error {
	switch {
	case errors.Is(err, llm.ErrTruncated):
		return &graph.ParseError{Msg: "response was cut off by the token limit", Err: err}
	case errors.Is(err, llm.ErrEmptyResponse):
		return &graph.ParseError{Msg: "response has no choices", Err: err}
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
}
