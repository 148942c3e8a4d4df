package dto

// ApproveApplicationRequest — тело запроса одобрения заявки.
// Рецензент берётся из токена, а не из тела.
type ApproveApplicationRequest struct {
	AdminNotes string `json:"admin_notes"`
}

type RejectApplicationRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required"`
	AdminNotes      string `json:"admin_notes"`
}

type ReviewResult struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
	TrainerUserID string `json:"trainer_user_id,omitempty"`
}
