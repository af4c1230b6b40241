package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	configcmd "github.com/nakamasato/topicgraph/cmd/config"
	"github.com/nakamasato/topicgraph/cmd/generate"
	"github.com/nakamasato/topicgraph/cmd/serve"
	"github.com/nakamasato/topicgraph/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	envFile    string
	logLevel   string
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "topicgraph",
		Short: "topicgraph turns a topic into a graph of concepts",
		Long: `topicgraph asks a language model to explain a topic as a graph of nodes and
edges, validates the answer and writes it to graph.json for the browser viewer.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file to load before reading the config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides log_level in the config")

	rootCmd.AddCommand(
		generate.Command(),
		serve.Command(),
		configcmd.Command(),
	)
	return rootCmd
}

// Execute runs the root command and returns the error of the failed subcommand.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig reads the env file and config file when they exist. Missing
// files are not an error: defaults and environment variables apply.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	f, err := os.Open(configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if cmd.Flags().Changed("config") {
			return fmt.Errorf("config file %s not found", configFile)
		}
		if err := config.InitConfig(nil); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("failed to open config file %s: %w", configFile, err)
	default:
		defer f.Close()
		if err := config.InitConfig(f); err != nil {
			return fmt.Errorf("%s: %w", configFile, err)
		}
	}

	if logLevel != "" {
		config.SetLogLevel(logLevel)
	}
	return nil
}
