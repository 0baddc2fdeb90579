package prompt

import (
	"fmt"
	"strings"

	"riskiq-be/pkg/assessment/report"
	"riskiq-be/pkg/store"
)

// AdviceBuilder builds the single structured prompt for advice synthesis:
// company profile, scored categories and retrieved context, with an explicit
// JSON response contract.
type AdviceBuilder struct {
	profile      *store.CompanyProfile
	rows         []report.RiskTableRow
	overallScore float64
	riskLevel    string
	context      string
}

func NewAdviceBuilder(
	profile *store.CompanyProfile,
	rows []report.RiskTableRow,
	overallScore float64,
	riskLevel string,
	retrievedContext string,
) *AdviceBuilder {
	return &AdviceBuilder{
		profile:      profile,
		rows:         rows,
		overallScore: overallScore,
		riskLevel:    riskLevel,
		context:      retrievedContext,
	}
}

func (b *AdviceBuilder) Build() string {
	var prompt strings.Builder

	b.writeResponseContract(&prompt)
	b.writeProfile(&prompt)
	b.writeRiskTable(&prompt)
	b.writeReferenceMaterial(&prompt)
	b.writeTask(&prompt)

	return prompt.String()
}

func (b *AdviceBuilder) writeResponseContract(prompt *strings.Builder) {
	prompt.WriteString("Respond ONLY with valid JSON in the following format. Do NOT include any explanations, markdown, or extra text. If you don't know, use an empty list.\n\n")
	prompt.WriteString(`{
  "recommendations": ["..."],
  "resources": [{"title": "...", "url": "..."}],
  "insights": ["..."]
}`)
	prompt.WriteString("\n\n")
}

func (b *AdviceBuilder) writeProfile(prompt *strings.Builder) {
	prompt.WriteString("<company_profile>\n")
	if b.profile.Name != "" {
		prompt.WriteString(fmt.Sprintf("Company: %s\n", b.profile.Name))
	}
	prompt.WriteString(fmt.Sprintf("Industry: %s\n", b.profile.Industry))
	prompt.WriteString(fmt.Sprintf("Size: %s\n", b.profile.Size))
	prompt.WriteString(fmt.Sprintf("Technology adoption: %s\n", b.profile.TechAdoption))
	prompt.WriteString(fmt.Sprintf("Security controls: %s\n", b.profile.SecurityControls))
	prompt.WriteString(fmt.Sprintf("Risk posture: %s\n", b.profile.RiskPosture))
	prompt.WriteString(fmt.Sprintf("Emerging technologies of interest: %s\n", strings.Join(b.profile.EmergingTechnologies, ", ")))
	prompt.WriteString("</company_profile>\n\n")
}

func (b *AdviceBuilder) writeRiskTable(prompt *strings.Builder) {
	prompt.WriteString("<risk_assessment>\n")
	prompt.WriteString(fmt.Sprintf("Overall weighted score: %.1f/100 (%s)\n\n", b.overallScore, b.riskLevel))
	for _, row := range b.rows {
		prompt.WriteString(fmt.Sprintf("- %s (weight %.2f): %.1f/%.0f. %s\n",
			row.CategoryName, row.Weight, row.Score, row.MaxScore, row.Definition))
	}
	prompt.WriteString("</risk_assessment>\n\n")
}

func (b *AdviceBuilder) writeReferenceMaterial(prompt *strings.Builder) {
	if b.context == "" {
		return
	}
	prompt.WriteString("<reference_material>\n")
	prompt.WriteString("Base recommendations on the following retrieved passages where relevant.\n\n")
	prompt.WriteString(b.context)
	prompt.WriteString("\n</reference_material>\n\n")
}

func (b *AdviceBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a cybersecurity risk advisor. Using the profile, the scored categories and the reference material:\n")
	prompt.WriteString("- recommendations: 3 to 6 concrete, prioritized actions addressing the weakest categories first\n")
	prompt.WriteString("- resources: standards, frameworks or guides worth reading, each with a title and a URL\n")
	prompt.WriteString("- insights: short observations connecting the company's emerging technologies to its risk scores\n")
	prompt.WriteString("</task>\n\n")
	prompt.WriteString("Now respond with the JSON object only:")
}
