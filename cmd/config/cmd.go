package config

import (
	"github.com/spf13/cobra"
)

// Command creates the config command.
func Command() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the topicgraph configuration file",
		// the file may not exist yet
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	configCmd.AddCommand(
		initCommand(),
	)
	return configCmd
}
