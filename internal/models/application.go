package models

import "time"

// TrainerApplication - заявка на аккаунт тренера. Аккаунт создается только
// после одобрения заявки; хеш пароля переносится в аккаунт как есть.
type TrainerApplication struct {
	BaseModel
	Email        string `gorm:"index;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`

	Experience      string `json:"experience"`
	Certifications  string `json:"certifications"`
	Specializations string `json:"specializations"`
	Bio             string `json:"bio"`
	Motivation      string `json:"motivation"`

	Status          ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AppliedAt       time.Time         `gorm:"not null" json:"applied_at"`
	ReviewedAt      *time.Time        `json:"reviewed_at"`
	ReviewedBy      string            `json:"reviewed_by"`
	AdminNotes      string            `json:"admin_notes"`
	RejectionReason string            `json:"rejection_reason"`

	// ID созданного аккаунта тренера (для аудита, после approve).
	TrainerUserID string `json:"trainer_user_id,omitempty"`
}
