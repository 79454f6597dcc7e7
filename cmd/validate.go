package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/wizardquiz/internal/content"
	"github.com/abhisek/wizardquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Check a quiz file (or the built-in quiz) for mistakes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		path := cfg.ContentPath
		if len(args) == 1 {
			path = args[0]
		}
		name := path
		if name == "" {
			name = "built-in quiz"
		}

		bank, err := content.LoadOrDefault(path)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s: OK\n", name)
		fmt.Fprintf(w, "%q: %d questions, %d options each\n\n",
			bank.Title, bank.Len(), bank.OptionsPerQuestion)

		fmt.Fprintf(w, "%-14s  %7s  %10s\n", "Category", "Options", "Max points")
		fmt.Fprintln(w, strings.Repeat("─", 35))
		for _, c := range quiz.AllCategories() {
			options, best := categoryReach(bank, c)
			fmt.Fprintf(w, "%-14s  %7d  %10d\n", c, options, best)
		}
		return nil
	},
}

// categoryReach counts the options scoring for c and the most points c can
// collect when the best option for it is picked on every question.
func categoryReach(bank *quiz.Bank, c quiz.Category) (options, maxPoints int) {
	for _, q := range bank.Questions {
		best := 0
		for _, opt := range q.Options {
			if opt.Category != c {
				continue
			}
			options++
			best = max(best, opt.Points)
		}
		maxPoints += best
	}
	return options, maxPoints
}
