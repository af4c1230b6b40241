package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nakamasato/topicgraph/config"
	"github.com/nakamasato/topicgraph/internal/logging"
	"github.com/nakamasato/topicgraph/internal/ui"
	"github.com/nakamasato/topicgraph/internal/viewer"
	"github.com/spf13/cobra"
)

var (
	addr      string
	graphFile string
)

func Command() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph viewer over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	serveCmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from serve.addr)")
	serveCmd.Flags().StringVarP(&graphFile, "graph", "g", "", "Graph JSON file to serve (default from generate.output_path)")

	return serveCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	if addr != "" {
		cfg.Serve.Addr = addr
	}
	if graphFile != "" {
		cfg.Generate.OutputPath = graphFile
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Println(ui.Serving(displayURL(cfg.Serve.Addr)))
	return viewer.New(cfg.Generate.OutputPath, logger.WithField("graph", cfg.Generate.OutputPath)).ListenAndServe(ctx, cfg.Serve.Addr)
}

// displayURL turns a listen address such as ":8000" into a browsable URL.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr + "/"
	}
	return "http://" + addr + "/"
}
