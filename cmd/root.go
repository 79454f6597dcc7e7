package cmd

import (
	"fmt"

	"github.com/abhisek/wizardquiz/internal/config"
	"github.com/abhisek/wizardquiz/internal/content"
	"github.com/abhisek/wizardquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "wizardquiz",
	Short:        "Find your school of magic",
	Long:         "Wizard Quiz: a terminal personality quiz that scores every answer and names the school of magic that suits you.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Path to a YAML or JSON quiz file (overrides WIZARDQUIZ_CONTENT env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides WIZARDQUIZ_LOG_LEVEL env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides WIZARDQUIZ_LOG_FILE env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads configuration from .env and the environment, then
// applies command-line flags (highest priority).
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		cfg.ContentPath = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		cfg.LogFile = f
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadBank returns the configured quiz, or the embedded one.
func loadBank(cfg *config.Config) (*quiz.Bank, error) {
	bank, err := content.LoadOrDefault(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	return bank, nil
}
