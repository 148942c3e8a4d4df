package repositories

import (
	"errors"
	"time"

	"fithub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrQueryNotFound        = errors.New("query not found")
	ErrQueryAlreadyAssigned = errors.New("query already assigned")
	ErrQueryNotAssigned     = errors.New("query not assigned to trainer")
)

type QueryRepository interface {
	Create(query *models.Query) error
	FindByID(id string) (*models.Query, error)
	ListForTrainer(trainerEmail string) ([]models.Query, error)
	Assign(id, trainerEmail string) error
	Respond(id, trainerEmail, response string, respondedAt time.Time) error
	CountAssigned(trainerEmail string) (int64, error)
	CountAssignedWithStatus(trainerEmail string, status models.QueryStatus) (int64, error)
	CountAll() (int64, error)
	CountWithStatus(status models.QueryStatus) (int64, error)
}

type QueryRepositoryImpl struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) QueryRepository {
	return &QueryRepositoryImpl{db: db}
}

func (r *QueryRepositoryImpl) Create(query *models.Query) error {
	return r.db.Create(query).Error
}

func (r *QueryRepositoryImpl) FindByID(id string) (*models.Query, error) {
	var query models.Query
	err := r.db.First(&query, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQueryNotFound
		}
		return nil, err
	}
	return &query, nil
}

// ListForTrainer возвращает ещё не разобранные вопросы и вопросы,
// закреплённые за этим тренером. Чужие закреплённые вопросы не видны.
func (r *QueryRepositoryImpl) ListForTrainer(trainerEmail string) ([]models.Query, error) {
	var queries []models.Query
	err := r.db.Where("assigned_trainer IS NULL OR assigned_trainer = ?", trainerEmail).
		Order("created_at DESC").
		Find(&queries).Error
	return queries, err
}

// Assign закрепляет вопрос условным UPDATE: выигрывает ровно один тренер,
// повторный вызов того же тренера идемпотентен. Из resolved вопрос
// заново не закрепляется.
func (r *QueryRepositoryImpl) Assign(id, trainerEmail string) error {
	result := r.db.Model(&models.Query{}).
		Where("id = ? AND status IN ? AND (assigned_trainer IS NULL OR assigned_trainer = ?)",
			id, []models.QueryStatus{models.QueryStatusOpen, models.QueryStatusAssigned}, trainerEmail).
		Updates(map[string]interface{}{
			"assigned_trainer": trainerEmail,
			"status":           models.QueryStatusAssigned,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var query models.Query
		if err := r.db.First(&query, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQueryNotFound
			}
			return err
		}
		return ErrQueryAlreadyAssigned
	}
	return nil
}

// Respond закрывает вопрос только из статуса assigned и только закрепившим
// его тренером. Несуществующий, чужой и уже закрытый вопрос для
// вызывающего неразличимы.
func (r *QueryRepositoryImpl) Respond(id, trainerEmail, response string, respondedAt time.Time) error {
	result := r.db.Model(&models.Query{}).
		Where("id = ? AND assigned_trainer = ? AND status = ?",
			id, trainerEmail, models.QueryStatusAssigned).
		Updates(map[string]interface{}{
			"response":     response,
			"responded_at": respondedAt,
			"status":       models.QueryStatusResolved,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQueryNotAssigned
	}
	return nil
}

func (r *QueryRepositoryImpl) CountAssigned(trainerEmail string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Query{}).
		Where("assigned_trainer = ?", trainerEmail).
		Count(&count).Error
	return count, err
}

func (r *QueryRepositoryImpl) CountAssignedWithStatus(trainerEmail string, status models.QueryStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Query{}).
		Where("assigned_trainer = ? AND status = ?", trainerEmail, status).
		Count(&count).Error
	return count, err
}

func (r *QueryRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Query{}).Count(&count).Error
	return count, err
}

func (r *QueryRepositoryImpl) CountWithStatus(status models.QueryStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Query{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
