package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// validReportJSON builds a payload covering every scored dimension, optionally
// mutated by the caller before encoding.
func validReportJSON(t *testing.T, mutate func(p *reportPayload)) string {
	t.Helper()
	payload := reportPayload{
		Scores: map[string]dto.DimensionScoreDTO{},
		Narrative: dto.NarrativeDTO{
			Strengths:       []string{"curious workforce"},
			Gaps:            []string{"no formal policy"},
			Recommendations: []string{"publish usage guidelines"},
		},
	}
	for i, dim := range model.ReportDimensions {
		payload.Scores[dim] = dto.DimensionScoreDTO{Score: float64(i%5) + 0.5, Justification: "observed in responses"}
	}
	if mutate != nil {
		mutate(&payload)
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

type reportFixture struct {
	svc   ReportService
	db    *gorm.DB
	r     repos
	email *fakeEmail
	llm   *fakeLLM
}

// newReportFixture provisions a company with a manager and one employee whose
// survey is fully answered.
func newReportFixture(t *testing.T, llm *fakeLLM) reportFixture {
	t.Helper()
	db := newTestDB(t)
	r := newRepos(db)
	seedCatalog(t, db, 2)
	seedCompany(t, db, "comp_a", "Acme Corp")
	seedUser(t, db, "mgr_1", "comp_a", "manager", "mgr@acme.example.com", "Morgan Vu")
	seedUser(t, db, "emp_1", "comp_a", "employee", "emp1@acme.example.com", "Jordan Reyes")

	instances, err := r.instances.InitializeFromCatalog("emp_1", "comp_a")
	require.NoError(t, err)
	for i := range instances {
		require.NoError(t, r.answers.Create(&model.Answer{
			QuestionInstanceID: instances[i].ID,
			EmployeeID:         "emp_1",
			CompanyID:          "comp_a",
			AnswerText:         fmt.Sprintf("answer %d", i+1),
		}))
	}

	email := &fakeEmail{}
	svc := NewReportService(r.instances, r.answers, r.users, r.companies, r.reports, r.prompts, llm, email, testConfig())
	return reportFixture{svc: svc, db: db, r: r, email: email, llm: llm}
}

func TestGenerateReportRequiresManager(t *testing.T) {
	f := newReportFixture(t, &fakeLLM{response: "{}"})

	_, err := f.svc.Generate(context.Background(), employeeIdent("emp_1", "comp_a"), true)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Equal(t, 0, f.llm.calls)
}

func TestGenerateReportNoData(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	seedCatalog(t, db, 2)
	seedCompany(t, db, "comp_a", "Acme Corp")
	seedUser(t, db, "mgr_1", "comp_a", "manager", "mgr@acme.example.com", "Morgan Vu")

	llm := &fakeLLM{response: "{}"}
	svc := NewReportService(r.instances, r.answers, r.users, r.companies, r.reports, r.prompts, llm, &fakeEmail{}, testConfig())

	_, err := svc.Generate(context.Background(), managerIdent("mgr_1", "comp_a"), true)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNoData, apperr.KindOf(err))
	assert.Equal(t, 0, llm.calls)
}

func TestGenerateReportRejectsMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"not json": "this is not JSON at all",
		"missing dimension": validReportJSON(t, func(p *reportPayload) {
			delete(p.Scores, "ai_literacy")
		}),
		"extra dimension": validReportJSON(t, func(p *reportPayload) {
			p.Scores["made_up_dimension"] = dto.DimensionScoreDTO{Score: 3}
		}),
		"score out of range": validReportJSON(t, func(p *reportPayload) {
			p.Scores["ai_literacy"] = dto.DimensionScoreDTO{Score: 7.5, Justification: "too high"}
		}),
		"incomplete narrative": validReportJSON(t, func(p *reportPayload) {
			p.Narrative.Recommendations = nil
		}),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			f := newReportFixture(t, &fakeLLM{response: raw})

			_, err := f.svc.Generate(context.Background(), managerIdent("mgr_1", "comp_a"), true)
			require.Error(t, err)
			assert.Equal(t, apperr.KindMalformedAIResponse, apperr.KindOf(err))

			// A rejected payload must leave no partial report behind.
			var reports int64
			require.NoError(t, f.db.Model(&model.Report{}).Count(&reports).Error)
			assert.EqualValues(t, 0, reports)
			var scores int64
			require.NoError(t, f.db.Model(&model.ReportScore{}).Count(&scores).Error)
			assert.EqualValues(t, 0, scores)
		})
	}
}

func TestGenerateReportSuccess(t *testing.T) {
	raw := "```json\n" + validReportJSON(t, nil) + "\n```"
	f := newReportFixture(t, &fakeLLM{response: raw})

	resp, err := f.svc.Generate(context.Background(), managerIdent("mgr_1", "comp_a"), true)
	require.NoError(t, err)

	assert.Len(t, resp.Report.Scores, len(model.ReportDimensions))
	assert.True(t, strings.HasPrefix(resp.Report.ShareSlug, "acme-corp-"), "slug %q", resp.Report.ShareSlug)
	assert.Equal(t, 1, resp.Report.Summary.TotalEmployees)
	assert.Equal(t, 2, resp.Report.Summary.TotalResponses)
	assert.Greater(t, resp.Report.Summary.AverageScore, 0.0)

	// Employee answers and the company name reach the analysis prompt.
	assert.Contains(t, f.llm.lastPrompt, "Acme Corp")
	assert.Contains(t, f.llm.lastPrompt, "answer 1")

	var reports int64
	require.NoError(t, f.db.Model(&model.Report{}).Count(&reports).Error)
	assert.EqualValues(t, 1, reports)
	var scores int64
	require.NoError(t, f.db.Model(&model.ReportScore{}).Where("report_id = ?", resp.Report.ID).Count(&scores).Error)
	assert.EqualValues(t, len(model.ReportDimensions), scores)
	var logs int64
	require.NoError(t, f.db.Model(&model.PromptLog{}).Where("source = ?", model.PromptSourceReportGeneration).Count(&logs).Error)
	assert.EqualValues(t, 1, logs)

	require.Len(t, f.email.reports, 1)
	assert.Equal(t, "mgr@acme.example.com", f.email.reports[0])
}

func TestGetSharedReport(t *testing.T) {
	f := newReportFixture(t, &fakeLLM{response: validReportJSON(t, nil)})

	generated, err := f.svc.Generate(context.Background(), managerIdent("mgr_1", "comp_a"), true)
	require.NoError(t, err)

	shared, err := f.svc.GetShared(generated.Report.ShareSlug)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", shared.Report.CompanyName)
	assert.Len(t, shared.Report.Scores, len(model.ReportDimensions))
	assert.Equal(t, 1, shared.Report.TotalEmployees)
	assert.Equal(t, 2, shared.Report.TotalResponses)
	assert.NotEmpty(t, shared.Report.Narrative.Strengths)

	_, err = f.svc.GetShared("no-such-slug-123")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}

func TestShareSlug(t *testing.T) {
	slug := shareSlug("Acme Corp & Co.")
	assert.True(t, strings.HasPrefix(slug, "acme-corp---co--"), "slug %q", slug)
	for _, r := range slug {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.True(t, valid, "unexpected rune %q in slug %q", r, slug)
	}
}

func TestAverageScore(t *testing.T) {
	scores := map[string]dto.DimensionScoreDTO{
		"a": {Score: 1},
		"b": {Score: 2},
		"c": {Score: 4},
	}
	assert.InDelta(t, 2.3, averageScore(scores), 0.0001)
	assert.Equal(t, 0.0, averageScore(nil))
}
