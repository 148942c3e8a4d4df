package repositories

import (
	"errors"

	"fithub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTutorialNotFound = errors.New("tutorial not found")

type TutorialRepository interface {
	Create(tutorial *models.Tutorial) error
	ListByTrainer(trainerEmail string) ([]models.Tutorial, error)
	UpdateOwned(id, trainerEmail string, updates map[string]interface{}) error
	DeleteOwned(id, trainerEmail string) error
	FindPublishedByID(id string) (*models.Tutorial, error)
	IncrementViews(id string) error
	ListPublished(limit, offset int) ([]models.Tutorial, int64, error)
	CountByTrainer(trainerEmail string) (int64, error)
	CountByTrainerAndStatus(trainerEmail string, status models.TutorialStatus) (int64, error)
	SumViewsByTrainer(trainerEmail string) (int64, error)
	SumLikesByTrainer(trainerEmail string) (int64, error)
	CountPublished() (int64, error)
}

type TutorialRepositoryImpl struct {
	db *gorm.DB
}

func NewTutorialRepository(db *gorm.DB) TutorialRepository {
	return &TutorialRepositoryImpl{db: db}
}

func (r *TutorialRepositoryImpl) Create(tutorial *models.Tutorial) error {
	return r.db.Create(tutorial).Error
}

func (r *TutorialRepositoryImpl) ListByTrainer(trainerEmail string) ([]models.Tutorial, error) {
	var tutorials []models.Tutorial
	err := r.db.Where("trainer_email = ?", trainerEmail).
		Order("created_at DESC").
		Find(&tutorials).Error
	return tutorials, err
}

// UpdateOwned обновляет туториал только если он принадлежит тренеру.
// Проверка владения входит в сам UPDATE: чужой и несуществующий id
// неразличимы для вызывающего.
func (r *TutorialRepositoryImpl) UpdateOwned(id, trainerEmail string, updates map[string]interface{}) error {
	result := r.db.Model(&models.Tutorial{}).
		Where("id = ? AND trainer_email = ?", id, trainerEmail).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTutorialNotFound
	}
	return nil
}

func (r *TutorialRepositoryImpl) DeleteOwned(id, trainerEmail string) error {
	result := r.db.Where("id = ? AND trainer_email = ?", id, trainerEmail).
		Delete(&models.Tutorial{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTutorialNotFound
	}
	return nil
}

func (r *TutorialRepositoryImpl) FindPublishedByID(id string) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	err := r.db.First(&tutorial, "id = ? AND status = ?", id, models.TutorialStatusPublished).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTutorialNotFound
		}
		return nil, err
	}
	return &tutorial, nil
}

// IncrementViews делает атомарный инкремент на стороне БД,
// параллельные просмотры не теряются.
func (r *TutorialRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Tutorial{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *TutorialRepositoryImpl) ListPublished(limit, offset int) ([]models.Tutorial, int64, error) {
	var total int64
	err := r.db.Model(&models.Tutorial{}).
		Where("status = ?", models.TutorialStatusPublished).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var tutorials []models.Tutorial
	err = r.db.Where("status = ?", models.TutorialStatusPublished).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&tutorials).Error
	return tutorials, total, err
}

func (r *TutorialRepositoryImpl) CountByTrainer(trainerEmail string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Tutorial{}).
		Where("trainer_email = ?", trainerEmail).
		Count(&count).Error
	return count, err
}

func (r *TutorialRepositoryImpl) CountByTrainerAndStatus(trainerEmail string, status models.TutorialStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Tutorial{}).
		Where("trainer_email = ? AND status = ?", trainerEmail, status).
		Count(&count).Error
	return count, err
}

func (r *TutorialRepositoryImpl) SumViewsByTrainer(trainerEmail string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Tutorial{}).
		Where("trainer_email = ?", trainerEmail).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *TutorialRepositoryImpl) SumLikesByTrainer(trainerEmail string) (int64, error) {
	var total int64
	err := r.db.Model(&models.Tutorial{}).
		Where("trainer_email = ?", trainerEmail).
		Select("COALESCE(SUM(likes), 0)").
		Scan(&total).Error
	return total, err
}

func (r *TutorialRepositoryImpl) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tutorial{}).
		Where("status = ?", models.TutorialStatusPublished).
		Count(&count).Error
	return count, err
}
