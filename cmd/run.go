package cmd

import (
	"fmt"

	"github.com/abhisek/wizardquiz/internal/app"
	"github.com/abhisek/wizardquiz/internal/logging"
	"github.com/abhisek/wizardquiz/internal/session"
	"github.com/spf13/cobra"
)

// runApp loads configuration and content, builds the session, and launches
// the TUI. The TUI owns the terminal, so logs go to the log file or nowhere.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg, nil)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closeLog()

	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}

	sess, err := session.New(bank, logger)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	logger.Info("starting quiz", "title", bank.Title, "questions", bank.Len())
	return app.Run(app.Options{
		Session: sess,
		Logger:  logger,
	})
}
