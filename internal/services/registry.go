package services

import "fithub_backend/internal/email"

// ServiceContainer - все сервисы приложения в одном месте.
type ServiceContainer struct {
	AuthService        AuthService
	ApplicationService ApplicationService
	TutorialService    TutorialService
	QueryService       QueryService
	AnalyticsService   AnalyticsService
	EmailProvider      email.Provider
}
