package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`

	// Поля тренера. Заполняются ТОЛЬКО при одобрении заявки админом —
	// другого пути создания аккаунта тренера нет.
	Experience      string     `json:"experience,omitempty"`
	Certifications  string     `json:"certifications,omitempty"`
	Specializations string     `json:"specializations,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	TrainerStatus   string     `gorm:"type:varchar(20)" json:"trainer_status,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
}

// DisplayName возвращает имя для отображения (как в ответе /login).
func (u *User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		for i, r := range u.Email {
			if r == '@' {
				return u.Email[:i]
			}
		}
		return u.Email
	}
	return name
}
