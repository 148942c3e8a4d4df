package models

type UserRole string
type UserStatus string
type ApplicationStatus string
type TutorialStatus string
type QueryStatus string
type QueryPriority string

const (
	UserRoleUser    UserRole = "user"
	UserRoleTrainer UserRole = "trainer"
	UserRoleAdmin   UserRole = "admin"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	TutorialStatusDraft     TutorialStatus = "draft"
	TutorialStatusPublished TutorialStatus = "published"

	QueryStatusOpen     QueryStatus = "open"
	QueryStatusAssigned QueryStatus = "assigned"
	QueryStatusResolved QueryStatus = "resolved"

	QueryPriorityLow    QueryPriority = "low"
	QueryPriorityMedium QueryPriority = "medium"
	QueryPriorityHigh   QueryPriority = "high"
)

// TrainerStatusProfessional присваивается тренерам, созданным через одобрение заявки.
const TrainerStatusProfessional = "professional"
