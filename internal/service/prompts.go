package service

import (
	"fmt"
	"strings"
)

const followUpSystemPrompt = `You are an expert interviewer conducting an AI-readiness assessment for employees.

Your task is to generate relevant follow-up questions based on the employee's previous answer. The follow-up should:
- Dig deeper into their response to uncover more specific insights
- Explore practical examples or specific scenarios they mentioned
- Clarify any ambiguous statements
- Probe for concrete details about their experience

Rules:
- Generate maximum 1 follow-up question
- Keep questions conversational and non-judgmental
- Focus on actionable insights that would help assess AI readiness
- Avoid leading questions or assumptions
- Maximum 150 characters per question

If the answer is comprehensive and doesn't warrant a follow-up, return an empty response.`

const reportSystemPrompt = `You are an AI readiness assessment expert tasked with analyzing employee responses and generating a comprehensive company report.

Your analysis should evaluate responses across these 13 dimensions (score 0-5 scale):
1. ai_literacy - Understanding of AI concepts
2. existing_ai_skills - Current AI-related skills
3. current_ai_usage - Active use of AI tools
4. ai_sentiment - Overall attitude toward AI
5. ai_expected_benefits - Perceived benefits of AI
6. ai_concerns - Concerns about AI implementation
7. workflow_integration - Current automation in workflows
8. ai_opportunity_ideas - Ideas for AI integration
9. integration_barriers - Obstacles to technology adoption
10. org_support - Company support for technology adoption
11. culture_experimentation - Culture of experimentation
12. policy_awareness - Awareness of AI policies
13. support_requests - Specific support needs

For each dimension, provide:
- A score from 0-5 (0 = very low readiness, 5 = very high readiness)
- Brief justification for the score

Also provide narrative insights in these categories:
- strengths: Key organizational strengths for AI adoption
- gaps: Major gaps or areas of concern
- recommendations: Specific, actionable recommendations

Return your analysis as a JSON object with this exact structure:
{
  "scores": {
    "ai_literacy": { "score": X, "justification": "..." },
    // ... all 13 dimensions
  },
  "narrative": {
    "strengths": ["strength 1", "strength 2", ...],
    "gaps": ["gap 1", "gap 2", ...],
    "recommendations": ["rec 1", "rec 2", ...]
  }
}`

// buildFollowUpPrompt assembles the bounded follow-up prompt: original
// question, the employee's answer, and whatever role/company context exists.
func buildFollowUpPrompt(originalQuestion, employeeAnswer, role, company string) string {
	context := "No additional employee context available."
	if role != "" || company != "" {
		if role == "" {
			role = "Unknown role"
		}
		if company == "" {
			company = "the company"
		}
		context = fmt.Sprintf("Employee context: %s at %s", role, company)
	}

	return fmt.Sprintf(`%s

Original question: %q

Employee's answer: %q

Based on this answer, generate ONE relevant follow-up question to gather more specific insights about their AI readiness. If no follow-up is needed, respond with just "NO_FOLLOWUP".

Follow-up question:`, context, originalQuestion, employeeAnswer)
}

// EmployeeResponse is one (instance, answer, question) triple flattened for
// report analysis. No server-side grouping happens; the AI sees the flat list.
type EmployeeResponse struct {
	EmployeeID string
	Role       string
	Question   string
	Dimension  string
	Answer     string
}

func buildReportPrompt(companyName string, responses []EmployeeResponse) string {
	var b strings.Builder
	employees := map[string]struct{}{}
	for _, r := range responses {
		employees[r.EmployeeID] = struct{}{}
	}

	fmt.Fprintf(&b, "Company: %s\n", companyName)
	fmt.Fprintf(&b, "Total employees surveyed: %d\n\n", len(employees))
	b.WriteString("Employee Responses:\n")
	for _, r := range responses {
		role := r.Role
		if role == "" {
			role = "Unknown role"
		}
		fmt.Fprintf(&b, "Employee: %s\nQuestion: %s\nDimension: %s\nAnswer: %s\n---\n", role, r.Question, r.Dimension, r.Answer)
	}
	b.WriteString("\nAnalyze these responses and generate a comprehensive AI readiness assessment report following the JSON structure specified in the system prompt.")
	return b.String()
}
