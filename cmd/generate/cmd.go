package generate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/nakamasato/topicgraph/config"
	"github.com/nakamasato/topicgraph/internal/generator"
	"github.com/nakamasato/topicgraph/internal/logging"
	"github.com/nakamasato/topicgraph/internal/ui"
	"github.com/spf13/cobra"
)

var (
	outputFile string
	mode       string
	model      string
	noSchema   bool
	showDiff   bool
)

func Command() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [topic...]",
		Short: "Generate a graph for a topic and write it to a JSON file",
		Long: `Generate asks the model to explain the topic as a graph, validates the answer
and writes it to the output file. The topic is taken from the arguments, from
piped stdin, or from generate.default_topic in the config.`,
		Example: `  topicgraph generate binary search trees
  echo "why is the sky blue" | topicgraph generate --mode reasoning`,
		RunE: runGenerate,
	}

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output JSON file (default from generate.output_path)")
	generateCmd.Flags().StringVar(&mode, "mode", "", "Prompt mode: concept or reasoning (default from generate.mode)")
	generateCmd.Flags().StringVarP(&model, "model", "m", "", "Model to use (default from openai.model)")
	generateCmd.Flags().BoolVar(&noSchema, "no-schema", false, "Do not send a JSON schema response format")
	generateCmd.Flags().BoolVar(&showDiff, "diff", false, "Print a diff against the previous output file")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	if outputFile != "" {
		cfg.Generate.OutputPath = outputFile
	}
	if mode != "" {
		cfg.Generate.Mode = mode
	}
	if model != "" {
		cfg.OpenAI.Model = model
	}
	if noSchema {
		cfg.OpenAI.StructuredOutput = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := generator.CheckCredential(cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	topic, err := readTopic(args, cmd.InOrStdin(), cfg.Generate.DefaultTopic)
	if err != nil {
		return err
	}

	var previous []byte
	if showDiff {
		previous, err = readIfExists(cfg.Generate.OutputPath)
		if err != nil {
			return err
		}
	}

	doc, err := generator.Run(cmd.Context(), cfg, topic, logger)
	if err != nil {
		return err
	}

	cmd.Println(ui.Success(cfg.Generate.OutputPath, doc))
	if showDiff {
		current, err := os.ReadFile(cfg.Generate.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", cfg.Generate.OutputPath, err)
		}
		cmd.Print(ui.Diff(previous, current, cfg.Generate.OutputPath))
	}
	return nil
}

func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// readTopic joins the arguments, or reads stdin when it is piped, or falls
// back to the configured default topic.
func readTopic(args []string, stdin io.Reader, defaultTopic string) (string, error) {
	if topic := strings.TrimSpace(strings.Join(args, " ")); topic != "" {
		return topic, nil
	}
	if isPiped(stdin) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read topic from stdin: %w", err)
		}
		if topic := strings.TrimSpace(string(data)); topic != "" {
			return topic, nil
		}
	}
	if topic := strings.TrimSpace(defaultTopic); topic != "" {
		return topic, nil
	}
	return "", fmt.Errorf("%w: pass it as arguments, pipe it on stdin or set generate.default_topic", generator.ErrEmptyTopic)
}

// isPiped reports whether r is something other than an interactive terminal.
func isPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}
