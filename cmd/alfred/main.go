package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredhq/alfred/internal/config"
)

var (
	configPath string

	conf *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "alfred",
	Short: "Alfred - finance and task backend with a chat assistant",
	Long: `Alfred keeps transactions, tasks, shopping lists and savings projects,
and turns chat messages like "gastei 50 no almoço" into the matching entry.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		setupLogger(conf.Log.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml)")
	rootCmd.AddCommand(serveCmd, chatCmd, recurCmd)
}

// setupLogger installs a JSON slog handler on stdout as the default logger.
func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	}))
	slog.SetDefault(logger)
}

// @title           Alfred API
// @version         1.0
// @description     Finance and task backend with a chat assistant.
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Bearer <token>"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
