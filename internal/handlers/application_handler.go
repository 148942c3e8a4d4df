package handlers

import (
	"net/http"

	"fithub_backend/internal/middleware"
	"fithub_backend/internal/models"
	"fithub_backend/internal/services"
	"fithub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// RegisterRoutes - рецензирование заявок доступно только админам.
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/trainer/applications")
	apps.Use(middleware.AuthMiddleware())
	apps.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		apps.GET("", h.ListAll)
		apps.GET("/pending", h.ListPending)
		apps.POST("/:id/approve", h.Approve)
		apps.POST("/:id/reject", h.Reject)
	}
}

func (h *ApplicationHandler) ListPending(c *gin.Context) {
	apps, err := h.applicationService.ListPending()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.applicationService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) Approve(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	// Тело необязательно: одобрить можно и без заметок.
	var req dto.ApproveApplicationRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.applicationService.Approve(c.Param("id"), principal.Email, req.AdminNotes)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.RejectApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.applicationService.Reject(c.Param("id"), principal.Email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
