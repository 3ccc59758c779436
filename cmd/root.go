package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pyama86/incidentseed/domain/repository"
	"github.com/pyama86/incidentseed/handler"
	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
)

var rootCmd = &cobra.Command{
	Use:           "incidentseed",
	Short:         "incidentseed generates a deterministic incident-management fixture dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := repository.NewConfigRepository(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		slog.SetDefault(newLogger(os.Stdout, cfg.Log.Level, cfg.Log.Format))
		return run(cmd.Context(), cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// 未指定ならデフォルト値と環境変数だけで動く
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file path (toml, yaml or json)")
	rootCmd.Flags().Uint64("seed", 42, "random seed")
	rootCmd.Flags().String("output-dir", "incident_management_data", "directory for the JSON tables")
	rootCmd.Flags().Int("workers", 1, "parallel workers for the incident engine and DynamoDB export")
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("log-format", "text", "log format (text, json)")
	rootCmd.AddCommand(versionCmd)
}

func run(ctx context.Context, cfg *repository.Config) error {
	slog.Info("Generator started", slog.String("output_dir", cfg.OutputDir))
	return handler.Handle(ctx, cfg)
}
