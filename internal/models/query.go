package models

import "time"

// Query - вопрос пользователя тренерам.
// Жизненный цикл: open -> assigned -> resolved, без обратных переходов.
type Query struct {
	BaseModel
	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Category    string        `gorm:"default:'general'" json:"category"`
	Priority    QueryPriority `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	Status      QueryStatus   `gorm:"type:varchar(20);default:'open';index" json:"status"`

	UserEmail string `gorm:"index;not null" json:"user_email"`
	UserName  string `json:"user_name"`

	// NULL пока заявку не взял тренер. Устанавливается через compare-and-swap,
	// чтобы ровно один тренер выиграл при конкурентных claim.
	AssignedTrainer *string `gorm:"index" json:"assigned_trainer"`

	Response    string     `gorm:"type:text" json:"response"`
	RespondedAt *time.Time `json:"responded_at"`
}
