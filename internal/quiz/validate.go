package quiz

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the bank.
// Returns a *ConfigurationError describing all problems found, or nil if valid.
func (b *Bank) Validate() error {
	var errs []string

	perQuestion := b.OptionsPerQuestion
	if perQuestion < 2 {
		errs = append(errs, fmt.Sprintf("options per question must be >= 2, got %d", perQuestion))
	}
	if len(b.Questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	for i, q := range b.Questions {
		prefix := fmt.Sprintf("question %d", i+1)
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, prefix+": empty prompt")
		}
		if perQuestion >= 2 && len(q.Options) != perQuestion {
			errs = append(errs, fmt.Sprintf("%s: has %d options, want %d", prefix, len(q.Options), perQuestion))
		}

		seen := make(map[Option]bool, len(q.Options))
		for j, o := range q.Options {
			optPrefix := fmt.Sprintf("%s option %d", prefix, j+1)
			if strings.TrimSpace(o.Text) == "" {
				errs = append(errs, optPrefix+": empty text")
			}
			if !o.Category.Valid() {
				errs = append(errs, fmt.Sprintf("%s: unknown category %s", optPrefix, o.Category))
			}
			if o.Points <= 0 {
				errs = append(errs, fmt.Sprintf("%s: points must be > 0, got %d", optPrefix, o.Points))
			}
			if seen[o] {
				errs = append(errs, optPrefix+": duplicate option")
			}
			seen[o] = true
		}
	}

	// Every category needs result copy.
	for _, c := range AllCategories() {
		if _, ok := b.Profiles[c]; !ok {
			errs = append(errs, fmt.Sprintf("category %s has no profile", c))
		}
	}
	for c := range b.Profiles {
		if !c.Valid() {
			errs = append(errs, fmt.Sprintf("profile for unknown category %s", c))
		}
	}

	if len(errs) > 0 {
		return &ConfigurationError{Problems: errs}
	}
	return nil
}
