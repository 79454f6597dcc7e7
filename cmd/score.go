package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/wizardquiz/internal/logging"
	"github.com/abhisek/wizardquiz/internal/quiz"
	"github.com/abhisek/wizardquiz/internal/scoring"
	"github.com/abhisek/wizardquiz/internal/session"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:     "score CHOICE...",
	Short:   "Score a full set of answers without the TUI",
	Long:    "Score a full set of answers without the TUI. Pass one option number (starting at 1) per question, in question order.",
	Example: "  wizardquiz score 1 3 2 4 1 1 2 3 4 4 2 1 3 3 2 1 4 2 3 1",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		logger, closeLog, err := logging.New(cfg, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		defer closeLog()

		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		choices, err := parseChoices(args, bank.Len())
		if err != nil {
			return err
		}

		sess, err := session.New(bank, logger)
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		sess.Start()
		for i, c := range choices {
			if err := sess.SubmitChoice(c); err != nil {
				return fmt.Errorf("question %d: %w", i+1, err)
			}
		}

		res, err := sess.Result()
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), bank, res)
		return nil
	},
}

// parseChoices converts 1-based option numbers into 0-based choices.
// Range checks against each question are left to the session.
func parseChoices(args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("expected %d choices (one per question), got %d", want, len(args))
	}
	choices := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("choice %d: %q is not a number", i+1, a)
		}
		choices[i] = n - 1
	}
	return choices, nil
}

func printResult(w io.Writer, bank *quiz.Bank, res scoring.Result) {
	fmt.Fprintf(w, "%-4s  %-14s  %6s  %7s  %6s\n", "Rank", "Category", "Points", "Answers", "Share")
	fmt.Fprintln(w, strings.Repeat("─", 45))
	for i, st := range res.Ranking {
		fmt.Fprintf(w, "%-4d  %-14s  %6d  %7d  %5.0f%%\n",
			i+1, st.Category, st.Points, st.Count, res.Share(st.Category)*100)
	}

	profile := bank.Profile(res.Winner.Category)
	fmt.Fprintf(w, "\nWinner: %s", res.Winner.Category)
	if profile.Tagline != "" && profile.Tagline != res.Winner.Category.String() {
		fmt.Fprintf(w, " (%s)", profile.Tagline)
	}
	fmt.Fprintln(w)
	if profile.Description != "" {
		fmt.Fprintln(w, profile.Description)
	}
}
