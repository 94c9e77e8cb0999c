package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "civic-pulse",
	Short: "Civic complaint analytics service",
	Long:  "Stores citizen-submitted civic complaints and serves the dashboard analytics computed over them: distributions, area risk ranking, and map markers.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
