package service

import (
	"testing"

	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := NewCatalogService(r.questions)

	inactive := false
	resp, err := svc.Seed(dto.CatalogSeedDTO{Questions: []dto.QuestionSeedDTO{
		{ModuleName: "AI Literacy & Skills", Dimension: "ai_literacy", Text: "How would you explain what an LLM is?"},
		{ModuleName: "AI Literacy & Skills", Dimension: "existing_ai_skills", Text: "Which AI tools have you used?"},
		{ModuleName: "Workflow Integration", Dimension: "workflow_integration", Text: "Which tasks are automated today?"},
		{ModuleName: "Workflow Integration", Dimension: "pace_satisfaction", Text: "Retired question", Active: &inactive},
	}})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Created)
	assert.Equal(t, 2, resp.Modules)

	active, err := r.questions.FindActive()
	require.NoError(t, err)
	assert.Len(t, active, 3)

	var modules int64
	require.NoError(t, db.Model(&model.Module{}).Count(&modules).Error)
	assert.EqualValues(t, 2, modules)
}

func TestSeedCatalogRejectsUnknownDimension(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := NewCatalogService(r.questions)

	_, err := svc.Seed(dto.CatalogSeedDTO{Questions: []dto.QuestionSeedDTO{
		{ModuleName: "M", Dimension: "vibes", Text: "q"},
	}})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSeedCatalogReusesExistingModule(t *testing.T) {
	db := newTestDB(t)
	r := newRepos(db)
	svc := NewCatalogService(r.questions)

	_, err := svc.Seed(dto.CatalogSeedDTO{Questions: []dto.QuestionSeedDTO{
		{ModuleName: "Culture & Org", Dimension: "org_support", Text: "first"},
	}})
	require.NoError(t, err)

	resp, err := svc.Seed(dto.CatalogSeedDTO{Questions: []dto.QuestionSeedDTO{
		{ModuleName: "Culture & Org", Dimension: "culture_experimentation", Text: "second"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Modules)

	var modules int64
	require.NoError(t, db.Model(&model.Module{}).Count(&modules).Error)
	assert.EqualValues(t, 1, modules)
}
