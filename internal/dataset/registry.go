package dataset

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

var registryValidator = validator.New()

// Registry is the explicit, typed list of skill identifiers the engine
// analyzes, together with their grouping into tech-stack subcategories.
// It replaces column-name discovery: the engine never scans the dataset
// schema for skill columns, the caller supplies this registry.
type Registry struct {
	Skills     []string            `yaml:"skills" validate:"required,min=1,unique,dive,required"`
	Categories map[string][]string `yaml:"categories" validate:"dive,dive,required"`
}

// Validate checks registry consistency: skills present, non-empty and
// unique (struct tags), and every categorized skill must appear in the
// main skill list.
func (r *Registry) Validate() error {
	if err := registryValidator.Struct(r); err != nil {
		return fmt.Errorf("registry validation: %w", err)
	}

	seen := make(map[string]struct{}, len(r.Skills))
	for _, s := range r.Skills {
		seen[s] = struct{}{}
	}

	for category, skills := range r.Categories {
		for _, s := range skills {
			if _, ok := seen[s]; !ok {
				return fmt.Errorf("category %s references unknown skill: %s", category, s)
			}
		}
	}

	return nil
}

// Category returns the skills in a named subcategory, or nil if not defined
func (r *Registry) Category(name string) []string {
	return r.Categories[name]
}

// Has reports whether a skill is registered
func (r *Registry) Has(name string) bool {
	for _, s := range r.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// LoadRegistry reads a skill registry from a YAML file
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry file: %w", err)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	return &reg, nil
}
