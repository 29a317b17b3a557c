package service

import (
	"strings"
	"testing"

	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/identity"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCompanyService(t *testing.T) (CompanyService, repos, *gorm.DB, *fakeEmail) {
	t.Helper()
	db := newTestDB(t)
	r := newRepos(db)
	email := &fakeEmail{}
	return NewCompanyService(r.companies, r.users, r.instances, r.answers, email), r, db, email
}

func TestRegisterCompany(t *testing.T) {
	svc, r, _, email := newCompanyService(t)
	ident := identity.Identity{UserID: "idp_mgr", Email: "ceo@acme.example.com", Name: "Morgan Vu"}

	resp, err := svc.Register(ident, dto.RegisterCompanyDTO{
		Name: "Acme Corp", Domain: "acme.example.com", Headcount: 40, Industry: "Manufacturing",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Company.ID, "comp_"), "id %q", resp.Company.ID)
	assert.True(t, strings.HasPrefix(resp.Company.InviteCode, "INV-"), "code %q", resp.Company.InviteCode)
	assert.Equal(t, "acme.example.com", resp.Company.Domain)

	manager, err := r.users.FindByID("idp_mgr")
	require.NoError(t, err)
	require.NotNil(t, manager)
	assert.Equal(t, identity.RoleManager, manager.Role)
	assert.Equal(t, resp.Company.ID, manager.CompanyID)

	require.Len(t, email.welcomes, 1)
	assert.Equal(t, "ceo@acme.example.com", email.welcomes[0])
}

func TestRegisterCompanyAcceptsEmailAsDomain(t *testing.T) {
	svc, _, _, _ := newCompanyService(t)
	ident := identity.Identity{UserID: "idp_mgr", Email: "ceo@acme.example.com"}

	resp, err := svc.Register(ident, dto.RegisterCompanyDTO{
		Name: "Acme Corp", Domain: "CEO@Acme.Example.Com", Headcount: 40, Industry: "Manufacturing",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme.example.com", resp.Company.Domain)
}

func TestRegisterCompanyDuplicateDomain(t *testing.T) {
	svc, _, _, _ := newCompanyService(t)
	ident := identity.Identity{UserID: "idp_mgr", Email: "ceo@acme.example.com"}
	req := dto.RegisterCompanyDTO{Name: "Acme Corp", Domain: "acme.example.com", Headcount: 40, Industry: "Manufacturing"}

	_, err := svc.Register(ident, req)
	require.NoError(t, err)

	_, err = svc.Register(identity.Identity{UserID: "idp_other", Email: "x@acme.example.com"}, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRegisterCompanyInvalidDomain(t *testing.T) {
	svc, _, _, _ := newCompanyService(t)

	_, err := svc.Register(identity.Identity{UserID: "idp_mgr"}, dto.RegisterCompanyDTO{
		Name: "Acme", Domain: "not-a-domain", Headcount: 1, Industry: "x",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestJoinCompany(t *testing.T) {
	svc, r, db, _ := newCompanyService(t)
	seedCompany(t, db, "comp_a", "Acme Corp")

	resp, err := svc.Join(identity.Identity{UserID: "idp_emp", Email: "jordan@comp_a.example.com"}, "inv-abc123")
	require.NoError(t, err)
	assert.Equal(t, "comp_a", resp.CompanyID)
	assert.Equal(t, identity.RoleEmployee, resp.Role)

	employee, err := r.users.FindByID("idp_emp")
	require.NoError(t, err)
	require.NotNil(t, employee)
	assert.Equal(t, "comp_a", employee.CompanyID)
}

func TestJoinCompanyInvalidCode(t *testing.T) {
	svc, _, db, _ := newCompanyService(t)
	seedCompany(t, db, "comp_a", "Acme Corp")

	_, err := svc.Join(identity.Identity{UserID: "idp_emp", Email: "jordan@comp_a.example.com"}, "INV-NOPE99")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestJoinCompanyDomainMismatch(t *testing.T) {
	svc, _, db, _ := newCompanyService(t)
	seedCompany(t, db, "comp_a", "Acme Corp")

	_, err := svc.Join(identity.Identity{UserID: "idp_emp", Email: "jordan@rival.example.com"}, "INV-ABC123")
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestJoinCompanyExistingAssociationWins(t *testing.T) {
	svc, _, db, _ := newCompanyService(t)
	seedCompany(t, db, "comp_a", "Acme Corp")
	seedUser(t, db, "idp_emp", "comp_b", "employee", "jordan@comp_a.example.com", "Jordan")

	resp, err := svc.Join(identity.Identity{UserID: "idp_emp", Email: "jordan@comp_a.example.com"}, "INV-ABC123")
	require.NoError(t, err)
	assert.Equal(t, "comp_b", resp.CompanyID)
}

func TestListEmployeeProgress(t *testing.T) {
	svc, r, db, _ := newCompanyService(t)
	seedCatalog(t, db, 2)
	seedCompany(t, db, "comp_a", "Acme Corp")
	seedUser(t, db, "mgr_1", "comp_a", "manager", "mgr@comp_a.example.com", "Morgan")
	seedUser(t, db, "emp_started", "comp_a", "employee", "a@comp_a.example.com", "A")
	seedUser(t, db, "emp_done", "comp_a", "employee", "b@comp_a.example.com", "B")
	seedUser(t, db, "emp_idle", "comp_a", "employee", "c@comp_a.example.com", "C")

	started, err := r.instances.InitializeFromCatalog("emp_started", "comp_a")
	require.NoError(t, err)
	require.NoError(t, r.answers.Create(&model.Answer{
		QuestionInstanceID: started[0].ID, EmployeeID: "emp_started", CompanyID: "comp_a", AnswerText: "x",
	}))

	done, err := r.instances.InitializeFromCatalog("emp_done", "comp_a")
	require.NoError(t, err)
	for i := range done {
		require.NoError(t, r.answers.Create(&model.Answer{
			QuestionInstanceID: done[i].ID, EmployeeID: "emp_done", CompanyID: "comp_a", AnswerText: "x",
		}))
	}

	progress, err := svc.ListEmployeeProgress(managerIdent("mgr_1", "comp_a"))
	require.NoError(t, err)
	require.Len(t, progress, 3)

	byID := map[string]dto.EmployeeProgressDTO{}
	for _, p := range progress {
		byID[p.EmployeeID] = p
	}
	assert.Equal(t, "in_progress", byID["emp_started"].Status)
	assert.Equal(t, 1, byID["emp_started"].CompletedQuestions)
	assert.Equal(t, "completed", byID["emp_done"].Status)
	assert.Equal(t, "not_started", byID["emp_idle"].Status)
	assert.Equal(t, 0, byID["emp_idle"].TotalQuestions)

	// The manager themselves is not listed.
	_, managerListed := byID["mgr_1"]
	assert.False(t, managerListed)
}

func TestListEmployeeProgressRequiresManager(t *testing.T) {
	svc, _, db, _ := newCompanyService(t)
	seedCompany(t, db, "comp_a", "Acme Corp")
	seedUser(t, db, "emp_1", "comp_a", "employee", "a@comp_a.example.com", "A")

	_, err := svc.ListEmployeeProgress(employeeIdent("emp_1", "comp_a"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestRemindEmployee(t *testing.T) {
	svc, _, db, email := newCompanyService(t)
	seedCompany(t, db, "comp_a", "Acme Corp")
	seedUser(t, db, "mgr_1", "comp_a", "manager", "mgr@comp_a.example.com", "Morgan")
	seedUser(t, db, "emp_1", "comp_a", "employee", "a@comp_a.example.com", "A")
	seedUser(t, db, "emp_other", "comp_b", "employee", "z@other.example.com", "Z")

	require.NoError(t, svc.RemindEmployee(managerIdent("mgr_1", "comp_a"), "emp_1"))
	require.Len(t, email.reminders, 1)
	assert.Equal(t, "a@comp_a.example.com", email.reminders[0])

	// Employees of other companies are invisible to this manager.
	err := svc.RemindEmployee(managerIdent("mgr_1", "comp_a"), "emp_other")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
