package model

// ReportDimensions is the fixed set of dimensions scored in every company
// report. The AI response must contain exactly these keys, each with a score
// in [0,5] and a justification.
var ReportDimensions = []string{
	"ai_literacy",
	"existing_ai_skills",
	"current_ai_usage",
	"ai_sentiment",
	"ai_expected_benefits",
	"ai_concerns",
	"workflow_integration",
	"ai_opportunity_ideas",
	"integration_barriers",
	"org_support",
	"culture_experimentation",
	"policy_awareness",
	"support_requests",
}

// CatalogDimensions is the full tag set catalog questions may carry. It is a
// superset of ReportDimensions; the extra tags feed the adaptive questioning
// but are not scored separately in reports.
var CatalogDimensions = append(append([]string{}, ReportDimensions...),
	"training_effectiveness",
	"learning_preferences",
	"strategic_clarity",
	"perceived_alignment",
	"pace_satisfaction",
	"leadership_confidence",
	"future_roles_skills",
)

// IsReportDimension reports whether tag is one of the scored dimensions.
func IsReportDimension(tag string) bool {
	for _, d := range ReportDimensions {
		if d == tag {
			return true
		}
	}
	return false
}
