package services

import (
	"strings"

	"fithub_backend/internal/auth"
	"fithub_backend/internal/models"
	"fithub_backend/internal/repositories"
	"fithub_backend/internal/services/dto"

	"fithub_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	applicationSvc ApplicationService
}

func NewAuthService(userRepo repositories.UserRepository, applicationSvc ApplicationService) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		applicationSvc: applicationSvc,
	}
}

// Signup - регистрация. Ветка user создаёт аккаунт сразу, ветка trainer
// только подаёт заявку: аккаунт появится после одобрения админом.
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleUser
	}
	if err := auth.ValidateRole(string(role)); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"role": "Недопустимая роль"})
	}
	// Админы создаются только сидом при старте.
	if role == models.UserRoleAdmin {
		return nil, apperrors.ErrAccessDenied
	}

	if role == models.UserRoleTrainer {
		app, err := s.applicationSvc.Submit(req)
		if err != nil {
			return nil, err
		}
		return &dto.SignupResponse{
			Message:       "Application submitted. You will be able to log in after admin approval.",
			ApplicationID: app.ID,
			Pending:       true,
		}, nil
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        emailAddr,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Status:       models.UserStatusActive,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.SignupResponse{
		Message: "Signup successful",
		UserID:  user.ID,
	}, nil
}

// Login - аутентификация по тройке email+пароль+роль. Несовпадение роли
// отвечает так же, как неверный пароль.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmailAndRole(emailAddr, models.UserRole(req.Role))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrAccessDenied
	}

	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserInfo{
			ID:        user.ID,
			Email:     user.Email,
			Role:      string(user.Role),
			Name:      user.DisplayName(),
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}
