package config

import (
	"fmt"
	"os"

	"github.com/nakamasato/topicgraph/config"
	"github.com/spf13/cobra"
)

var force bool

func initCommand() *cobra.Command {
	cmdInit := &cobra.Command{
		Use:   "init",
		Short: "Create a default .topicgraph.yaml configuration file",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmdInit.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmdInit
}

func runInit(cmd *cobra.Command, args []string) error {
	outputFile, err := cmd.Flags().GetString("config")
	if err != nil || outputFile == "" {
		outputFile = config.DefaultConfigFile
	}

	if _, err := os.Stat(outputFile); err == nil && !force {
		cmd.Printf("%s already exists\n", outputFile)
		return nil
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := config.CreateDefaultConfigFile(file); err != nil {
		return fmt.Errorf("failed to create default configuration file: %w", err)
	}

	cmd.Printf("Default configuration file created at %s\n", outputFile)
	return nil
}
