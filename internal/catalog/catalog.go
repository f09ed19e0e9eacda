// Package catalog provides the fixed lexicons and resource catalogs consumed
// by the heuristic detectors, the skill extractor, the skill-gap advisor, and
// the interview question generator. The default catalog is embedded at
// compile time; an alternate catalog can be loaded from a JSON file validated
// against the embedded schema.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed catalog.json catalog.schema.json
var catalogFiles embed.FS

// Resource describes a single learning resource entry in the catalog.
type Resource struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Duration string `json:"duration"`
}

// Catalog holds the immutable configuration data for the matching engine.
// Callers must treat a loaded catalog as read-only.
type Catalog struct {
	SkillVocabulary        []string                         `json:"skill_vocabulary"`
	GenderedTerms          map[string][]string              `json:"gendered_terms"`
	AgeCodedTerms          []string                         `json:"age_coded_terms"`
	ExclusionaryTerms      []string                         `json:"exclusionary_terms"`
	DisposableEmailDomains []string                         `json:"disposable_email_domains"`
	LearningResources      map[string]map[string][]Resource `json:"learning_resources"`
	TechnicalQuestions     map[string][]string              `json:"technical_questions"`
	BehavioralQuestions    []string                         `json:"behavioral_questions"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		data, err := catalogFiles.ReadFile("catalog.json")
		if err != nil {
			defaultErr = fmt.Errorf("failed to read embedded catalog: %w", err)
			return
		}
		defaultCatalog, defaultErr = parse(data)
	})
	return defaultCatalog, defaultErr
}

// MustDefault returns the embedded catalog, panicking if it cannot be parsed.
// The embedded catalog is validated by tests, so a failure here indicates a
// broken build.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog from an external JSON file, validating it against the
// embedded schema before parsing.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return &c, nil
}

func validate(data []byte) error {
	schemaData, err := catalogFiles.ReadFile("catalog.schema.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("catalog validation failed:")
		for _, desc := range result.Errors() {
			sb.WriteString(fmt.Sprintf("\n  - %s: %s", desc.Field(), desc.Description()))
		}
		return fmt.Errorf("%s", sb.String())
	}

	return nil
}
