package services

import (
	"fithub_backend/internal/models"
	"fithub_backend/internal/repositories"
	"fithub_backend/internal/services/dto"

	"fithub_backend/pkg/apperrors"
)

type AnalyticsService interface {
	GetTrainerStats(trainerEmail string) (*dto.TrainerStats, error)
	GetAdminStats() (*dto.AdminStats, error)
	ListUsers(page, pageSize int) ([]models.User, int64, error)
}

type AnalyticsServiceImpl struct {
	userRepo     repositories.UserRepository
	appRepo      repositories.ApplicationRepository
	tutorialRepo repositories.TutorialRepository
	queryRepo    repositories.QueryRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
	tutorialRepo repositories.TutorialRepository,
	queryRepo repositories.QueryRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		userRepo:     userRepo,
		appRepo:      appRepo,
		tutorialRepo: tutorialRepo,
		queryRepo:    queryRepo,
	}
}

func (s *AnalyticsServiceImpl) GetTrainerStats(trainerEmail string) (*dto.TrainerStats, error) {
	stats := &dto.TrainerStats{}
	var err error

	if stats.TotalTutorials, err = s.tutorialRepo.CountByTrainer(trainerEmail); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PublishedTutorials, err = s.tutorialRepo.CountByTrainerAndStatus(trainerEmail, models.TutorialStatusPublished); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalViews, err = s.tutorialRepo.SumViewsByTrainer(trainerEmail); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalLikes, err = s.tutorialRepo.SumLikesByTrainer(trainerEmail); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.AssignedQueries, err = s.queryRepo.CountAssigned(trainerEmail); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ResolvedQueries, err = s.queryRepo.CountAssignedWithStatus(trainerEmail, models.QueryStatusResolved); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *AnalyticsServiceImpl) GetAdminStats() (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalTrainers, err = s.userRepo.CountByRole(models.UserRoleTrainer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingApplications, err = s.appRepo.CountPending(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PublishedTutorials, err = s.tutorialRepo.CountPublished(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalQueries, err = s.queryRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.OpenQueries, err = s.queryRepo.CountWithStatus(models.QueryStatusOpen); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ResolvedQueries, err = s.queryRepo.CountWithStatus(models.QueryStatusResolved); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *AnalyticsServiceImpl) ListUsers(page, pageSize int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	users, err := s.userRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return users, total, nil
}
