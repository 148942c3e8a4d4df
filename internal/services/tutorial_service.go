package services

import (
	"encoding/json"

	"fithub_backend/internal/models"
	"fithub_backend/internal/repositories"
	"fithub_backend/internal/services/dto"

	"fithub_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type TutorialService interface {
	Create(trainerEmail string, req *dto.CreateTutorialRequest) (*models.Tutorial, error)
	ListOwn(trainerEmail string) ([]models.Tutorial, error)
	Update(trainerEmail, id string, req *dto.UpdateTutorialRequest) error
	Delete(trainerEmail, id string) error
	GetPublished(id string) (*models.Tutorial, error)
	ListPublished(page, pageSize int) ([]models.Tutorial, int64, error)
}

type TutorialServiceImpl struct {
	tutorialRepo repositories.TutorialRepository
	userRepo     repositories.UserRepository
}

func NewTutorialService(tutorialRepo repositories.TutorialRepository, userRepo repositories.UserRepository) TutorialService {
	return &TutorialServiceImpl{
		tutorialRepo: tutorialRepo,
		userRepo:     userRepo,
	}
}

func (s *TutorialServiceImpl) Create(trainerEmail string, req *dto.CreateTutorialRequest) (*models.Tutorial, error) {
	tags, err := marshalTags(req.Tags)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Имя автора денормализуется в туториал при создании.
	trainerName := trainerEmail
	if trainer, err := s.userRepo.FindByEmail(trainerEmail); err == nil {
		trainerName = trainer.DisplayName()
	}

	tutorial := &models.Tutorial{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Content:      req.Content,
		Difficulty:   req.Difficulty,
		Duration:     req.Duration,
		Tags:         tags,
		VideoURL:     req.VideoURL,
		ImageURL:     req.ImageURL,
		TrainerEmail: trainerEmail,
		TrainerName:  trainerName,
		Status:       models.TutorialStatusPublished,
	}
	if req.Difficulty == "" {
		tutorial.Difficulty = "beginner"
	}
	if req.Status != "" {
		tutorial.Status = models.TutorialStatus(req.Status)
	}

	if err := s.tutorialRepo.Create(tutorial); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tutorial, nil
}

func (s *TutorialServiceImpl) ListOwn(trainerEmail string) ([]models.Tutorial, error) {
	tutorials, err := s.tutorialRepo.ListByTrainer(trainerEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tutorials, nil
}

// Update собирает карту только из присланных полей. Чужой туториал
// отвечает тем же 404, что и несуществующий.
func (s *TutorialServiceImpl) Update(trainerEmail, id string, req *dto.UpdateTutorialRequest) error {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Tags != nil {
		tags, err := marshalTags(*req.Tags)
		if err != nil {
			return apperrors.InternalError(err)
		}
		updates["tags"] = tags
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.tutorialRepo.UpdateOwned(id, trainerEmail, updates); err != nil {
		if apperrors.Is(err, repositories.ErrTutorialNotFound) {
			return apperrors.ErrTutorialNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TutorialServiceImpl) Delete(trainerEmail, id string) error {
	if err := s.tutorialRepo.DeleteOwned(id, trainerEmail); err != nil {
		if apperrors.Is(err, repositories.ErrTutorialNotFound) {
			return apperrors.ErrTutorialNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// GetPublished отдаёт опубликованный туториал и засчитывает просмотр.
// Счётчик инкрементируется в БД, потерянный инкремент не роняет чтение.
func (s *TutorialServiceImpl) GetPublished(id string) (*models.Tutorial, error) {
	tutorial, err := s.tutorialRepo.FindPublishedByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTutorialNotFound) {
			return nil, apperrors.ErrTutorialNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.tutorialRepo.IncrementViews(id); err == nil {
		tutorial.Views++
	}
	return tutorial, nil
}

func (s *TutorialServiceImpl) ListPublished(page, pageSize int) ([]models.Tutorial, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	tutorials, total, err := s.tutorialRepo.ListPublished(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return tutorials, total, nil
}

func marshalTags(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
