package dto

type CreateTutorialRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Difficulty  string   `json:"difficulty" validate:"omitempty,is-difficulty"`
	Duration    string   `json:"duration"`
	Tags        []string `json:"tags"`
	VideoURL    string   `json:"videoUrl" validate:"omitempty,url"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
	Status      string   `json:"status" validate:"omitempty,is-tutorial-status"`
}

// UpdateTutorialRequest — частичное обновление: трогаются только
// присланные поля, поэтому всё через указатели.
type UpdateTutorialRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Content     *string   `json:"content"`
	Difficulty  *string   `json:"difficulty" validate:"omitempty,is-difficulty"`
	Duration    *string   `json:"duration"`
	Tags        *[]string `json:"tags"`
	VideoURL    *string   `json:"videoUrl" validate:"omitempty,url"`
	ImageURL    *string   `json:"imageUrl" validate:"omitempty,url"`
	Status      *string   `json:"status" validate:"omitempty,is-tutorial-status"`
}

type TutorialListResponse struct {
	Tutorials interface{} `json:"tutorials"`
	Total     int64       `json:"total"`
	Page      int         `json:"page"`
	PageSize  int         `json:"page_size"`
}
