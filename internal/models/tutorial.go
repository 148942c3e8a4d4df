package models

import "gorm.io/datatypes"

type Tutorial struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null;index" json:"category"`
	Content     string `gorm:"type:text;not null" json:"content,omitempty"`

	Difficulty string         `gorm:"type:varchar(20);default:'beginner'" json:"difficulty"`
	Duration   string         `json:"duration"`
	Tags       datatypes.JSON `json:"tags"`
	VideoURL   string         `json:"videoUrl"`
	ImageURL   string         `json:"imageUrl"`

	// Владелец. Только он может обновлять и удалять туториал.
	TrainerEmail string `gorm:"index;not null" json:"trainer_email"`
	TrainerName  string `json:"trainer_name"`

	Status TutorialStatus `gorm:"type:varchar(20);default:'published';index" json:"status"`
	Views  int64          `gorm:"default:0" json:"views"`
	Likes  int64          `gorm:"default:0" json:"likes"`
}
