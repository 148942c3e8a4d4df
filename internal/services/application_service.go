package services

import (
	"strings"
	"time"

	"fithub_backend/internal/email"
	"fithub_backend/internal/logger"
	"fithub_backend/internal/models"
	"fithub_backend/internal/repositories"
	"fithub_backend/internal/services/dto"

	"fithub_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

type ApplicationService interface {
	Submit(req *dto.SignupRequest) (*models.TrainerApplication, error)
	Approve(id, reviewerEmail, adminNotes string) (*dto.ReviewResult, error)
	Reject(id, reviewerEmail string, req *dto.RejectApplicationRequest) (*dto.ReviewResult, error)
	ListPending() ([]models.TrainerApplication, error)
	ListAll() ([]models.TrainerApplication, error)
}

type ApplicationServiceImpl struct {
	appRepo       repositories.ApplicationRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:       appRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Submit принимает заявку кандидата в тренеры. Аккаунт на этом шаге
// не создаётся, пароль сохраняется в заявке уже хешированным.
func (s *ApplicationServiceImpl) Submit(req *dto.SignupRequest) (*models.TrainerApplication, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validateTrainerFields(req); err != nil {
		return nil, err
	}

	// Занятый email и повторная pending-заявка — разные конфликты.
	exists, err := s.userRepo.ExistsByEmail(emailAddr)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyRegistered
	}

	pending, err := s.appRepo.HasPendingByEmail(emailAddr)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if pending {
		return nil, apperrors.ErrApplicationPending
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	app := &models.TrainerApplication{
		Email:           emailAddr,
		PasswordHash:    string(hashedPassword),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		DateOfBirth:     req.DateOfBirth,
		Gender:          req.Gender,
		Experience:      req.Experience,
		Certifications:  req.Certifications,
		Specializations: req.Specializations,
		Bio:             req.Bio,
		Motivation:      req.Motivation,
		Status:          models.ApplicationStatusPending,
		AppliedAt:       time.Now().UTC(),
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}

// Approve одобряет заявку и создаёт аккаунт тренера. При гонке двух
// админов второй получает конфликт с фактическим статусом заявки.
func (s *ApplicationServiceImpl) Approve(id, reviewerEmail, adminNotes string) (*dto.ReviewResult, error) {
	trainer, err := s.appRepo.ApproveAndCreateTrainer(id, reviewerEmail, adminNotes, time.Now().UTC())
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound(err)
		}
		if apperrors.Is(err, repositories.ErrApplicationAlreadyReviewed) {
			return nil, s.reviewedConflict(id)
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyApproved(trainer, adminNotes)

	return &dto.ReviewResult{
		Message:       "Application approved",
		ApplicationID: id,
		TrainerUserID: trainer.ID,
	}, nil
}

func (s *ApplicationServiceImpl) Reject(id, reviewerEmail string, req *dto.RejectApplicationRequest) (*dto.ReviewResult, error) {
	if strings.TrimSpace(req.RejectionReason) == "" {
		return nil, apperrors.ErrRejectionReasonRequired
	}

	err := s.appRepo.Reject(id, reviewerEmail, req.RejectionReason, req.AdminNotes, time.Now().UTC())
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound(err)
		}
		if apperrors.Is(err, repositories.ErrApplicationAlreadyReviewed) {
			return nil, s.reviewedConflict(id)
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyRejected(id, req.RejectionReason)

	return &dto.ReviewResult{
		Message:       "Application rejected",
		ApplicationID: id,
	}, nil
}

func (s *ApplicationServiceImpl) ListPending() ([]models.TrainerApplication, error) {
	apps, err := s.appRepo.ListPending()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) ListAll() ([]models.TrainerApplication, error) {
	apps, err := s.appRepo.ListAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// reviewedConflict перечитывает заявку, чтобы сообщить фактический статус.
func (s *ApplicationServiceImpl) reviewedConflict(id string) error {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		return apperrors.ErrAlreadyReviewed("reviewed")
	}
	return apperrors.ErrAlreadyReviewed(string(app.Status))
}

func (s *ApplicationServiceImpl) validateTrainerFields(req *dto.SignupRequest) error {
	details := make(map[string]string)
	if strings.TrimSpace(req.FirstName) == "" {
		details["firstName"] = "Поле обязательно"
	}
	if strings.TrimSpace(req.LastName) == "" {
		details["lastName"] = "Поле обязательно"
	}
	if strings.TrimSpace(req.Phone) == "" {
		details["phone"] = "Поле обязательно"
	}
	if strings.TrimSpace(req.Experience) == "" {
		details["experience"] = "Поле обязательно"
	}
	if strings.TrimSpace(req.Certifications) == "" {
		details["certifications"] = "Поле обязательно"
	}
	if len(details) > 0 {
		return apperrors.ValidationError(details)
	}
	return nil
}

// Уведомления шлём в фоне: исход рецензии не зависит от SMTP.
func (s *ApplicationServiceImpl) notifyApproved(trainer *models.User, adminNotes string) {
	go func() {
		err := s.emailProvider.SendTemplate(
			[]string{trainer.Email},
			"Ваша заявка одобрена",
			"application_approved",
			email.TemplateData{
				"FirstName":  trainer.FirstName,
				"AdminNotes": adminNotes,
			},
		)
		if err != nil {
			logger.Warn("Не удалось отправить письмо об одобрении заявки",
				"email", trainer.Email, "error", err)
		}
	}()
}

func (s *ApplicationServiceImpl) notifyRejected(id, reason string) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		return
	}
	go func() {
		err := s.emailProvider.SendTemplate(
			[]string{app.Email},
			"Ваша заявка отклонена",
			"application_rejected",
			email.TemplateData{
				"FirstName": app.FirstName,
				"Reason":    reason,
			},
		)
		if err != nil {
			logger.Warn("Не удалось отправить письмо об отклонении заявки",
				"email", app.Email, "error", err)
		}
	}()
}
