package handlers

// AppHandlers - все HTTP-обработчики приложения.
type AppHandlers struct {
	Auth        *AuthHandler
	Application *ApplicationHandler
	Tutorial    *TutorialHandler
	Query       *QueryHandler
	Analytics   *AnalyticsHandler
}
