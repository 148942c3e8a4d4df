package dto

type SubmitQueryRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"`
	Priority    string `json:"priority" validate:"omitempty,is-query-priority"`
	UserName    string `json:"user_name"`
}

type RespondQueryRequest struct {
	Response string `json:"response" validate:"required"`
}

type TrainerStats struct {
	TotalTutorials     int64 `json:"total_tutorials"`
	PublishedTutorials int64 `json:"published_tutorials"`
	TotalViews         int64 `json:"total_views"`
	TotalLikes         int64 `json:"total_likes"`
	AssignedQueries    int64 `json:"assigned_queries"`
	ResolvedQueries    int64 `json:"resolved_queries"`
}

type AdminStats struct {
	TotalUsers          int64 `json:"total_users"`
	TotalTrainers       int64 `json:"total_trainers"`
	PendingApplications int64 `json:"pending_applications"`
	PublishedTutorials  int64 `json:"published_tutorials"`
	TotalQueries        int64 `json:"total_queries"`
	OpenQueries         int64 `json:"open_queries"`
	ResolvedQueries     int64 `json:"resolved_queries"`
}
