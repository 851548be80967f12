package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/deanlue0801/alliance-war-planner/internal/config"
	"github.com/deanlue0801/alliance-war-planner/internal/logging"
	"github.com/deanlue0801/alliance-war-planner/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the planning HTTP service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.LoadFile(cfgFile)
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: config.ServiceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
	return nil
}
