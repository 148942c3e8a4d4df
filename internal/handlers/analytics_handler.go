package handlers

import (
	"net/http"

	"fithub_backend/internal/middleware"
	"fithub_backend/internal/models"
	"fithub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	trainer := rg.Group("/trainer/stats")
	trainer.Use(middleware.AuthMiddleware())
	trainer.Use(middleware.RequireRoles(models.UserRoleTrainer))
	{
		trainer.GET("", h.TrainerStats)
	}

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/stats", h.AdminStats)
	}
}

func (h *AnalyticsHandler) TrainerStats(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetTrainerStats(principal.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) AdminStats(c *gin.Context) {
	stats, err := h.analyticsService.GetAdminStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	users, total, err := h.analyticsService.ListUsers(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
