package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/hoangnm/air-platform/config"
	"github.com/hoangnm/air-platform/internal/identity"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/hoangnm/air-platform/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Company{},
		&model.User{},
		&model.Module{},
		&model.Question{},
		&model.QuestionInstance{},
		&model.Answer{},
		&model.Report{},
		&model.ReportScore{},
		&model.PromptLog{},
	))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Survey.MaxAnswerLength = 2000
	cfg.Gemini.TimeoutSeconds = 5
	return cfg
}

// seedCatalog inserts n active questions (dimension cycling through the
// scored set) under a single module and returns them in id order.
func seedCatalog(t *testing.T, db *gorm.DB, n int) []model.Question {
	t.Helper()
	module := model.Module{Name: "AI Literacy & Skills"}
	require.NoError(t, db.Create(&module).Error)

	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			ModuleID:  module.ID,
			Dimension: model.ReportDimensions[i%len(model.ReportDimensions)],
			Text:      fmt.Sprintf("Catalog question %d", i+1),
			Active:    true,
		})
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

func seedCompany(t *testing.T, db *gorm.DB, id, name string) model.Company {
	t.Helper()
	company := model.Company{ID: id, Name: name, Domain: id + ".example.com", InviteCode: "INV-ABC123"}
	require.NoError(t, db.Create(&company).Error)
	return company
}

func seedUser(t *testing.T, db *gorm.DB, id, companyID, role, email, name string) model.User {
	t.Helper()
	user := model.User{ID: id, CompanyID: companyID, Role: role, Email: email, FullName: name}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func employeeIdent(userID, companyID string) identity.Identity {
	return identity.Identity{UserID: userID, CompanyID: companyID, Role: identity.RoleEmployee, Email: userID + "@acme.example.com", Name: "Test Employee"}
}

func managerIdent(userID, companyID string) identity.Identity {
	return identity.Identity{UserID: userID, CompanyID: companyID, Role: identity.RoleManager, Email: userID + "@acme.example.com", Name: "Test Manager"}
}

// fakeLLM returns a scripted response (or error) and records the last call.
type fakeLLM struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastPrompt string
}

func (f *fakeLLM) Generate(ctx context.Context, systemPrompt, prompt string) (*LLMResponse, error) {
	f.calls++
	f.lastSystem = systemPrompt
	f.lastPrompt = prompt
	if f.err != nil {
		return nil, f.err
	}
	return &LLMResponse{Content: f.response, Model: "fake-model", TotalTokens: 42}, nil
}

// fakeEmail records sends instead of dialing SMTP.
type fakeEmail struct {
	welcomes  []string
	reports   []string
	reminders []string
}

func (f *fakeEmail) SendWelcome(to, userName, companyName string) error {
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeEmail) SendReportReady(to, managerName, companyName, shareSlug string) error {
	f.reports = append(f.reports, to)
	return nil
}

func (f *fakeEmail) SendSurveyReminder(to, employeeName, companyName string) error {
	f.reminders = append(f.reminders, to)
	return nil
}

// repos bundles real repositories over the test database.
type repos struct {
	questions repository.QuestionRepository
	instances repository.QuestionInstanceRepository
	answers   repository.AnswerRepository
	reports   repository.ReportRepository
	prompts   repository.PromptLogRepository
	companies repository.CompanyRepository
	users     repository.UserRepository
}

func newRepos(db *gorm.DB) repos {
	return repos{
		questions: repository.NewQuestionRepository(db),
		instances: repository.NewQuestionInstanceRepository(db),
		answers:   repository.NewAnswerRepository(db),
		reports:   repository.NewReportRepository(db),
		prompts:   repository.NewPromptLogRepository(db),
		companies: repository.NewCompanyRepository(db),
		users:     repository.NewUserRepository(db),
	}
}
