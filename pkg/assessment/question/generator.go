package question

import (
	"errors"
	"fmt"
	"strings"

	"riskiq-be/pkg/catalog"
	"riskiq-be/pkg/store"

	"github.com/google/uuid"
)

// ErrInvalidProfile marks profiles with required fields missing or empty
// after normalization.
var ErrInvalidProfile = errors.New("invalid company profile")

// MaxScorePerQuestion is the score ceiling for every generated question.
const MaxScorePerQuestion = 10

// Generator produces the ordered question set for a profile: exactly one
// question per catalog category, deterministically, with categories matching
// the declared emerging technologies surfaced first.
type Generator struct {
	catalog *catalog.Catalog
}

func NewGenerator(cat *catalog.Catalog) *Generator {
	return &Generator{catalog: cat}
}

func (g *Generator) Generate(profile *store.CompanyProfile) ([]store.RiskQuestion, error) {
	normalized, err := normalizeProfile(profile)
	if err != nil {
		return nil, err
	}

	ordered := g.orderCategories(normalized)

	fingerprint := profileFingerprint(normalized)
	questions := make([]store.RiskQuestion, 0, len(ordered))
	for _, cat := range ordered {
		questions = append(questions, store.RiskQuestion{
			Id:         questionId(g.catalog.Version, cat.Id, fingerprint),
			Question:   questionText(cat, normalized),
			CategoryId: cat.Id,
			HelperText: helperText(cat),
			MaxScore:   MaxScorePerQuestion,
		})
	}
	return questions, nil
}

func normalizeProfile(p *store.CompanyProfile) (*store.CompanyProfile, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	n := &store.CompanyProfile{
		Name:             strings.TrimSpace(p.Name),
		Industry:         strings.TrimSpace(p.Industry),
		Size:             strings.TrimSpace(p.Size),
		TechAdoption:     strings.TrimSpace(p.TechAdoption),
		SecurityControls: strings.TrimSpace(p.SecurityControls),
		RiskPosture:      strings.TrimSpace(p.RiskPosture),
	}
	for _, tech := range p.EmergingTechnologies {
		if t := strings.TrimSpace(tech); t != "" {
			n.EmergingTechnologies = append(n.EmergingTechnologies, t)
		}
	}

	required := map[string]string{
		"industry":          n.Industry,
		"size":              n.Size,
		"tech_adoption":     n.TechAdoption,
		"security_controls": n.SecurityControls,
		"risk_posture":      n.RiskPosture,
	}
	for field, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidProfile, field)
		}
	}
	return n, nil
}

// techCategoryHints maps emerging-technology keywords to the category ids
// they should pull to the front of the question order.
var techCategoryHints = map[string][]string{
	"ai":               {"ai_governance", "automation_risk"},
	"machine learning": {"ai_governance"},
	"ml":               {"ai_governance"},
	"iot":              {"iot_security"},
	"blockchain":       {"blockchain_risk"},
	"crypto":           {"blockchain_risk"},
	"quantum":          {"quantum_readiness"},
	"cloud":            {"cloud_security"},
	"rpa":              {"automation_risk"},
	"automation":       {"automation_risk"},
}

// orderCategories keeps catalog order within each group: matched categories
// first, then the rest. No category is ever dropped or duplicated.
func (g *Generator) orderCategories(profile *store.CompanyProfile) []catalog.RiskCategory {
	prioritized := make(map[string]bool)
	for _, tech := range profile.EmergingTechnologies {
		key := strings.ToLower(tech)
		for hint, categoryIds := range techCategoryHints {
			if strings.Contains(key, hint) {
				for _, id := range categoryIds {
					prioritized[id] = true
				}
			}
		}
	}

	ordered := make([]catalog.RiskCategory, 0, len(g.catalog.Categories))
	for _, cat := range g.catalog.Categories {
		if prioritized[cat.Id] {
			ordered = append(ordered, cat)
		}
	}
	for _, cat := range g.catalog.Categories {
		if !prioritized[cat.Id] {
			ordered = append(ordered, cat)
		}
	}
	return ordered
}

func questionText(cat catalog.RiskCategory, profile *store.CompanyProfile) string {
	if t, ok := questionTemplates[cat.Id]; ok {
		if strings.Contains(t, "%s") {
			return fmt.Sprintf(t, strings.ToLower(profile.Industry))
		}
		return t
	}
	return fmt.Sprintf("How does your organization currently manage %s?", strings.ToLower(cat.Name))
}

func helperText(cat catalog.RiskCategory) string {
	if h, ok := helperTexts[cat.Id]; ok {
		return h
	}
	return fmt.Sprintf("Describe the concrete controls, processes and tools in place. Relevant areas: %s.", cat.ScoringFocus)
}

// questionId derives a stable id from catalog version, category and profile,
// so the same intake always issues the same question set.
func questionId(version, categoryId, fingerprint string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(version+"|"+categoryId+"|"+fingerprint)).String()
}

func profileFingerprint(p *store.CompanyProfile) string {
	parts := []string{p.Industry, p.Size, p.TechAdoption, p.SecurityControls, p.RiskPosture}
	parts = append(parts, p.EmergingTechnologies...)
	return strings.ToLower(strings.Join(parts, "|"))
}
