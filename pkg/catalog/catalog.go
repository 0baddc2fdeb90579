package catalog

import (
	"fmt"
	"math"
)

// WeightEpsilon is the tolerance when checking that catalog weights sum to 1.
const WeightEpsilon = 1e-6

// RiskCategory is one weighted risk dimension of the assessment.
type RiskCategory struct {
	Id           string
	Name         string
	Definition   string
	ScoringFocus string
	Weight       float64
}

// Catalog is an immutable, versioned set of risk categories loaded once at
// startup. Mutating a loaded catalog is a programming error.
type Catalog struct {
	Version    string
	Categories []RiskCategory
}

// Default returns the built-in catalog for the given version identifier.
// Only "v1" exists today; the version tag is carried so generated question
// sets stay reproducible across catalog edits.
func Default(version string) (*Catalog, error) {
	if version == "" {
		version = "v1"
	}
	if version != "v1" {
		return nil, fmt.Errorf("unknown catalog version: %s", version)
	}

	c := &Catalog{
		Version:    version,
		Categories: categoriesV1,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the catalog invariants: unique category ids, weights in
// (0,1] and a weight sum of 1.0 within epsilon. A violation is a
// configuration error, never a runtime condition.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog %s has no categories", c.Version)
	}

	seen := make(map[string]bool, len(c.Categories))
	var sum float64
	for _, cat := range c.Categories {
		if cat.Id == "" {
			return fmt.Errorf("catalog %s: category with empty id", c.Version)
		}
		if seen[cat.Id] {
			return fmt.Errorf("catalog %s: duplicate category id %q", c.Version, cat.Id)
		}
		seen[cat.Id] = true

		if cat.Weight <= 0 || cat.Weight > 1 {
			return fmt.Errorf("catalog %s: category %q weight %f out of range", c.Version, cat.Id, cat.Weight)
		}
		sum += cat.Weight
	}

	if math.Abs(sum-1.0) > WeightEpsilon {
		return fmt.Errorf("catalog %s: weights sum to %f, want 1.0", c.Version, sum)
	}
	return nil
}

// ByID returns the category with the given id, or nil.
func (c *Catalog) ByID(id string) *RiskCategory {
	for i := range c.Categories {
		if c.Categories[i].Id == id {
			return &c.Categories[i]
		}
	}
	return nil
}

// Size returns the number of categories.
func (c *Catalog) Size() int {
	return len(c.Categories)
}
