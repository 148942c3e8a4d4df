package handlers

import (
	"net/http"

	"fithub_backend/internal/middleware"
	"fithub_backend/internal/models"
	"fithub_backend/internal/services"
	"fithub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TutorialHandler struct {
	*BaseHandler
	tutorialService services.TutorialService
}

func NewTutorialHandler(base *BaseHandler, tutorialService services.TutorialService) *TutorialHandler {
	return &TutorialHandler{
		BaseHandler:     base,
		tutorialService: tutorialService,
	}
}

// RegisterRoutes - управление туториалами для тренеров, публичный
// каталог доступен без авторизации.
func (h *TutorialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	own := rg.Group("/trainer/tutorials")
	own.Use(middleware.AuthMiddleware())
	own.Use(middleware.RequireRoles(models.UserRoleTrainer))
	{
		own.POST("", h.Create)
		own.GET("", h.ListOwn)
		own.PUT("/:id", h.Update)
		own.DELETE("/:id", h.Delete)
	}

	public := rg.Group("/trainer/public/tutorials")
	{
		public.GET("", h.ListPublished)
		public.GET("/:id", h.GetPublished)
	}
}

func (h *TutorialHandler) Create(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateTutorialRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tutorial, err := h.tutorialService.Create(principal.Email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tutorial)
}

func (h *TutorialHandler) ListOwn(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	tutorials, err := h.tutorialService.ListOwn(principal.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tutorials": tutorials})
}

func (h *TutorialHandler) Update(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateTutorialRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.tutorialService.Update(principal.Email, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tutorial updated"})
}

func (h *TutorialHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	if err := h.tutorialService.Delete(principal.Email, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tutorial deleted"})
}

func (h *TutorialHandler) ListPublished(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	tutorials, total, err := h.tutorialService.ListPublished(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TutorialListResponse{
		Tutorials: tutorials,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	})
}

func (h *TutorialHandler) GetPublished(c *gin.Context) {
	tutorial, err := h.tutorialService.GetPublished(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tutorial)
}
