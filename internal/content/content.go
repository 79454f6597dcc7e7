// Package content loads quiz banks from YAML or JSON files.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/wizardquiz/internal/quiz"
)

//go:embed default.yaml
var defaultBank []byte

// Format is the encoding of a content file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported content file extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

type fileOption struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Points   int    `json:"points"`
}

type fileQuestion struct {
	Prompt  string       `json:"prompt"`
	Options []fileOption `json:"options"`
}

type fileProfile struct {
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

type fileBank struct {
	Title              string                 `json:"title"`
	Subtitle           string                 `json:"subtitle"`
	OptionsPerQuestion int                    `json:"options_per_question"`
	Profiles           map[string]fileProfile `json:"profiles"`
	Questions          []fileQuestion         `json:"questions"`
}

// Default returns the embedded wizard quiz.
func Default() (*quiz.Bank, error) {
	return Parse(defaultBank, FormatYAML)
}

// Load reads and validates the content file at path.
func Load(path string) (*quiz.Bank, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &quiz.ConfigurationError{Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data, format)
}

// LoadOrDefault loads path, or the embedded quiz when path is empty.
func LoadOrDefault(path string) (*quiz.Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes, schema-checks and structurally validates a bank.
// Every content problem is reported as a *quiz.ConfigurationError.
func Parse(data []byte, format Format) (*quiz.Bank, error) {
	raw, err := normalize(data, format)
	if err != nil {
		return nil, &quiz.ConfigurationError{Err: err}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &quiz.ConfigurationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &quiz.ConfigurationError{Err: err}
	}

	var fb fileBank
	if err := json.Unmarshal(raw, &fb); err != nil {
		return nil, &quiz.ConfigurationError{Err: fmt.Errorf("decode bank: %w", err)}
	}

	bank, err := fb.toBank()
	if err != nil {
		return nil, &quiz.ConfigurationError{Err: err}
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return bank, nil
}

// normalize turns the input into JSON bytes regardless of its source format.
func normalize(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert YAML to JSON: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func (fb fileBank) toBank() (*quiz.Bank, error) {
	perQuestion := fb.OptionsPerQuestion
	if perQuestion == 0 {
		perQuestion = quiz.DefaultOptionsPerQuestion
	}

	bank := &quiz.Bank{
		Title:              fb.Title,
		Subtitle:           fb.Subtitle,
		OptionsPerQuestion: perQuestion,
		Questions:          make([]quiz.Question, 0, len(fb.Questions)),
		Profiles:           make(map[quiz.Category]quiz.Profile, len(fb.Profiles)),
	}

	for name, p := range fb.Profiles {
		c, err := quiz.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("profiles: %w", err)
		}
		bank.Profiles[c] = quiz.Profile{Tagline: p.Tagline, Description: p.Description}
	}

	for i, fq := range fb.Questions {
		q := quiz.Question{Prompt: fq.Prompt, Options: make([]quiz.Option, 0, len(fq.Options))}
		for j, fo := range fq.Options {
			c, err := quiz.ParseCategory(fo.Category)
			if err != nil {
				return nil, fmt.Errorf("question %d option %d: %w", i+1, j+1, err)
			}
			q.Options = append(q.Options, quiz.Option{Text: fo.Text, Category: c, Points: fo.Points})
		}
		bank.Questions = append(bank.Questions, q)
	}

	return bank, nil
}
