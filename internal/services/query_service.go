package services

import (
	"strings"
	"time"

	"fithub_backend/internal/models"
	"fithub_backend/internal/repositories"
	"fithub_backend/internal/services/dto"

	"fithub_backend/pkg/apperrors"
)

type QueryService interface {
	Submit(userEmail string, req *dto.SubmitQueryRequest) (*models.Query, error)
	ListForTrainer(trainerEmail string) ([]models.Query, error)
	Assign(trainerEmail, id string) error
	Respond(trainerEmail, id string, req *dto.RespondQueryRequest) error
}

type QueryServiceImpl struct {
	queryRepo repositories.QueryRepository
	userRepo  repositories.UserRepository
}

func NewQueryService(queryRepo repositories.QueryRepository, userRepo repositories.UserRepository) QueryService {
	return &QueryServiceImpl{
		queryRepo: queryRepo,
		userRepo:  userRepo,
	}
}

func (s *QueryServiceImpl) Submit(userEmail string, req *dto.SubmitQueryRequest) (*models.Query, error) {
	userName := req.UserName
	if userName == "" {
		if user, err := s.userRepo.FindByEmail(userEmail); err == nil {
			userName = user.DisplayName()
		}
	}

	query := &models.Query{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    models.QueryPriority(req.Priority),
		Status:      models.QueryStatusOpen,
		UserEmail:   userEmail,
		UserName:    userName,
	}
	if query.Category == "" {
		query.Category = "general"
	}
	if query.Priority == "" {
		query.Priority = models.QueryPriorityMedium
	}

	if err := s.queryRepo.Create(query); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return query, nil
}

func (s *QueryServiceImpl) ListForTrainer(trainerEmail string) ([]models.Query, error) {
	queries, err := s.queryRepo.ListForTrainer(trainerEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return queries, nil
}

// Assign закрепляет вопрос за тренером. При гонке выигрывает ровно один,
// повторное закрепление тем же тренером проходит без ошибки.
func (s *QueryServiceImpl) Assign(trainerEmail, id string) error {
	if err := s.queryRepo.Assign(id, trainerEmail); err != nil {
		if apperrors.Is(err, repositories.ErrQueryNotFound) {
			return apperrors.ErrQueryNotFound
		}
		if apperrors.Is(err, repositories.ErrQueryAlreadyAssigned) {
			return apperrors.ErrQueryAlreadyAssigned
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *QueryServiceImpl) Respond(trainerEmail, id string, req *dto.RespondQueryRequest) error {
	if strings.TrimSpace(req.Response) == "" {
		return apperrors.ErrEmptyResponse
	}

	if err := s.queryRepo.Respond(id, trainerEmail, req.Response, time.Now().UTC()); err != nil {
		if apperrors.Is(err, repositories.ErrQueryNotAssigned) {
			return apperrors.ErrNotAssignedToYou
		}
		return apperrors.InternalError(err)
	}
	return nil
}
