package repositories

import (
	"errors"
	"time"

	"fithub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound        = errors.New("application not found")
	ErrApplicationAlreadyReviewed = errors.New("application already reviewed")
)

type ApplicationRepository interface {
	Create(app *models.TrainerApplication) error
	FindByID(id string) (*models.TrainerApplication, error)
	HasPendingByEmail(email string) (bool, error)
	ListPending() ([]models.TrainerApplication, error)
	ListAll() ([]models.TrainerApplication, error)
	ApproveAndCreateTrainer(id, reviewedBy, adminNotes string, reviewedAt time.Time) (*models.User, error)
	Reject(id, reviewedBy, reason, adminNotes string, reviewedAt time.Time) error
	CountPending() (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.TrainerApplication) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.TrainerApplication, error) {
	var app models.TrainerApplication
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) HasPendingByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TrainerApplication{}).
		Where("email = ? AND status = ?", email, models.ApplicationStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) ListPending() ([]models.TrainerApplication, error) {
	var apps []models.TrainerApplication
	err := r.db.Where("status = ?", models.ApplicationStatusPending).
		Order("applied_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListAll() ([]models.TrainerApplication, error) {
	var apps []models.TrainerApplication
	err := r.db.Order("applied_at DESC").Find(&apps).Error
	return apps, err
}

// ApproveAndCreateTrainer переводит заявку pending -> approved и в той же
// транзакции создаёт аккаунт тренера. Перевод статуса выполняется условным
// UPDATE: при гонке двух админов побеждает ровно один, второй получает
// ErrApplicationAlreadyReviewed. Хеш пароля копируется из заявки как есть.
func (r *ApplicationRepositoryImpl) ApproveAndCreateTrainer(id, reviewedBy, adminNotes string, reviewedAt time.Time) (*models.User, error) {
	var trainer *models.User

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var app models.TrainerApplication
		if err := tx.First(&app, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		result := tx.Model(&models.TrainerApplication{}).
			Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":      models.ApplicationStatusApproved,
				"reviewed_at": reviewedAt,
				"reviewed_by": reviewedBy,
				"admin_notes": adminNotes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationAlreadyReviewed
		}

		trainer = &models.User{
			Email:           app.Email,
			PasswordHash:    app.PasswordHash,
			Role:            models.UserRoleTrainer,
			Status:          models.UserStatusActive,
			FirstName:       app.FirstName,
			LastName:        app.LastName,
			Phone:           app.Phone,
			DateOfBirth:     app.DateOfBirth,
			Gender:          app.Gender,
			Experience:      app.Experience,
			Certifications:  app.Certifications,
			Specializations: app.Specializations,
			Bio:             app.Bio,
			TrainerStatus:   models.TrainerStatusProfessional,
			ApprovedAt:      &reviewedAt,
			ApprovedBy:      reviewedBy,
		}
		if err := tx.Create(trainer).Error; err != nil {
			return err
		}

		return tx.Model(&models.TrainerApplication{}).
			Where("id = ?", id).
			Update("trainer_user_id", trainer.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return trainer, nil
}

// Reject использует тот же условный UPDATE, что и одобрение: заявка
// отклоняется только из статуса pending.
func (r *ApplicationRepositoryImpl) Reject(id, reviewedBy, reason, adminNotes string, reviewedAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var app models.TrainerApplication
		if err := tx.First(&app, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		result := tx.Model(&models.TrainerApplication{}).
			Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":           models.ApplicationStatusRejected,
				"reviewed_at":      reviewedAt,
				"reviewed_by":      reviewedBy,
				"rejection_reason": reason,
				"admin_notes":      adminNotes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationAlreadyReviewed
		}
		return nil
	})
}

func (r *ApplicationRepositoryImpl) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&models.TrainerApplication{}).
		Where("status = ?", models.ApplicationStatusPending).
		Count(&count).Error
	return count, err
}
