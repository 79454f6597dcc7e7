package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration matches any *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("invalid quiz configuration")

// ConfigurationError reports malformed question or category configuration.
// Problems lists every structural issue found; Err carries a decode or
// schema failure that stopped loading before structural checks ran.
type ConfigurationError struct {
	Problems []string
	Err      error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Err != nil && len(e.Problems) == 0:
		return fmt.Sprintf("%v: %v", ErrConfiguration, e.Err)
	case len(e.Problems) == 1:
		return fmt.Sprintf("%v: %s", ErrConfiguration, e.Problems[0])
	default:
		return fmt.Sprintf("%v:\n  %s", ErrConfiguration, strings.Join(e.Problems, "\n  "))
	}
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConfiguration) hold for every ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
