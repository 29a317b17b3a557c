package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/identity"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/hoangnm/air-platform/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CompanyService handles tenant onboarding: registration by a manager,
// invite-code joins by employees, and the manager's progress dashboard.
type CompanyService interface {
	Register(ident identity.Identity, req dto.RegisterCompanyDTO) (*dto.RegisterCompanyResponseDTO, error)
	Join(ident identity.Identity, inviteCode string) (*dto.JoinCompanyResponseDTO, error)
	ListEmployeeProgress(ident identity.Identity) ([]dto.EmployeeProgressDTO, error)
	RemindEmployee(ident identity.Identity, employeeID string) error
}

type companyService struct {
	companyRepo  repository.CompanyRepository
	userRepo     repository.UserRepository
	instanceRepo repository.QuestionInstanceRepository
	answerRepo   repository.AnswerRepository
	email        EmailService
}

func NewCompanyService(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	instanceRepo repository.QuestionInstanceRepository,
	answerRepo repository.AnswerRepository,
	email EmailService,
) CompanyService {
	return &companyService{
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		instanceRepo: instanceRepo,
		answerRepo:   answerRepo,
		email:        email,
	}
}

func (s *companyService) Register(ident identity.Identity, req dto.RegisterCompanyDTO) (*dto.RegisterCompanyResponseDTO, error) {
	domain := normalizeDomain(req.Domain)
	if domain == "" {
		return nil, apperr.New(apperr.KindValidation, "Invalid domain format")
	}

	existing, err := s.companyRepo.FindByDomain(domain)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to register company", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "A company with this domain already exists")
	}

	company := &model.Company{
		ID:         "comp_" + randomHex(8),
		Name:       req.Name,
		Domain:     domain,
		Headcount:  req.Headcount,
		Industry:   req.Industry,
		Region:     req.Region,
		InviteCode: "INV-" + strings.ToUpper(randomHex(3)),
	}
	if err := s.companyRepo.Create(company); err != nil {
		log.Error().Err(err).Str("domain", domain).Msg("Company creation failed")
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to create company", err)
	}

	now := time.Now()
	manager := &model.User{
		ID:          ident.UserID,
		CompanyID:   company.ID,
		Role:        identity.RoleManager,
		Email:       ident.Email,
		FullName:    ident.Name,
		LastLoginAt: &now,
	}
	if err := s.userRepo.Upsert(manager); err != nil {
		log.Error().Err(err).Str("user_id", ident.UserID).Msg("Manager record creation failed")
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to create user record", err)
	}

	managerName := ident.Name
	if managerName == "" {
		managerName = "Manager"
	}
	if ident.Email != "" {
		if err := s.email.SendWelcome(ident.Email, managerName, company.Name); err != nil {
			log.Error().Err(err).Str("to", ident.Email).Msg("Failed to send welcome email")
		}
	}

	var companyDTO dto.CompanyDTO
	if err := copier.Copy(&companyDTO, company); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to create company", err)
	}
	return &dto.RegisterCompanyResponseDTO{Company: companyDTO}, nil
}

func (s *companyService) Join(ident identity.Identity, inviteCode string) (*dto.JoinCompanyResponseDTO, error) {
	company, err := s.companyRepo.FindByInviteCode(strings.ToUpper(strings.TrimSpace(inviteCode)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "Invalid invite code")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to join company", err)
	}

	if !emailMatchesDomain(ident.Email, company.Domain) {
		return nil, apperr.New(apperr.KindForbidden, "Email domain does not match company domain")
	}

	// An existing association wins over the invite; joining twice is a no-op.
	if user, uErr := s.userRepo.FindByID(ident.UserID); uErr == nil && user != nil {
		return &dto.JoinCompanyResponseDTO{CompanyID: user.CompanyID, CompanyName: company.Name, Role: user.Role}, nil
	}

	now := time.Now()
	employee := &model.User{
		ID:          ident.UserID,
		CompanyID:   company.ID,
		Role:        identity.RoleEmployee,
		Email:       ident.Email,
		FullName:    ident.Name,
		LastLoginAt: &now,
	}
	if err := s.userRepo.Upsert(employee); err != nil {
		log.Error().Err(err).Str("user_id", ident.UserID).Msg("Employee record creation failed")
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to join company", err)
	}

	return &dto.JoinCompanyResponseDTO{CompanyID: company.ID, CompanyName: company.Name, Role: identity.RoleEmployee}, nil
}

func (s *companyService) ListEmployeeProgress(ident identity.Identity) ([]dto.EmployeeProgressDTO, error) {
	if err := s.requireManager(ident); err != nil {
		return nil, err
	}

	employees, err := s.userRepo.FindEmployeesByCompanyID(ident.CompanyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to list employees", err)
	}

	progress := make([]dto.EmployeeProgressDTO, 0, len(employees))
	for _, e := range employees {
		instances, iErr := s.instanceRepo.FindByEmployeeID(e.ID)
		if iErr != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "Failed to list employees", iErr)
		}
		answers, aErr := s.answerRepo.FindByEmployeeID(e.ID)
		if aErr != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "Failed to list employees", aErr)
		}

		status := "not_started"
		switch {
		case len(instances) > 0 && len(answers) >= len(instances):
			status = "completed"
		case len(answers) > 0:
			status = "in_progress"
		}

		progress = append(progress, dto.EmployeeProgressDTO{
			EmployeeID:         e.ID,
			EmployeeName:       e.FullName,
			Email:              e.Email,
			Status:             status,
			CompletedQuestions: len(answers),
			TotalQuestions:     len(instances),
		})
	}
	return progress, nil
}

func (s *companyService) RemindEmployee(ident identity.Identity, employeeID string) error {
	if err := s.requireManager(ident); err != nil {
		return err
	}

	employee, err := s.userRepo.FindByID(employeeID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Failed to send reminder", err)
	}
	if employee == nil || employee.CompanyID != ident.CompanyID {
		return apperr.New(apperr.KindNotFound, "Employee not found")
	}

	company, err := s.companyRepo.FindByID(ident.CompanyID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Failed to send reminder", err)
	}

	name := employee.FullName
	if name == "" {
		name = "there"
	}
	if err := s.email.SendSurveyReminder(employee.Email, name, company.Name); err != nil {
		log.Error().Err(err).Str("to", employee.Email).Msg("Failed to send survey reminder")
	}
	return nil
}

func (s *companyService) requireManager(ident identity.Identity) error {
	if !ident.HasCompany() {
		return apperr.New(apperr.KindNoCompanyAssociation, "No company association found")
	}
	user, err := s.userRepo.FindByID(ident.UserID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Failed to verify role", err)
	}
	if user == nil || user.Role != identity.RoleManager {
		return apperr.New(apperr.KindForbidden, "Manager role required")
	}
	return nil
}

// normalizeDomain accepts either a bare domain or an email address and
// returns the lowercased domain part.
func normalizeDomain(input string) string {
	domain := strings.TrimSpace(strings.ToLower(input))
	if at := strings.LastIndex(domain, "@"); at >= 0 {
		domain = domain[at+1:]
	}
	if domain == "" || !strings.Contains(domain, ".") {
		return ""
	}
	return domain
}

func emailMatchesDomain(email, domain string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.EqualFold(email[at+1:], domain)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process is in much bigger trouble.
		panic(err)
	}
	return hex.EncodeToString(b)
}
