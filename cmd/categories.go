package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/wizardquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the schools of magic",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-14s  %s\n", "Category", "Tagline")
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, c := range quiz.AllCategories() {
			fmt.Fprintf(w, "%-14s  %s\n", c, bank.Profile(c).Tagline)
		}
		return nil
	},
}
