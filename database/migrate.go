package database

import (
	"fithub_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate прогоняет автомиграцию всех таблиц приложения.
// Расширение uuid-ossp нужно для default-значений первичных ключей.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.TrainerApplication{},
		&models.Tutorial{},
		&models.Query{},
	)
}
