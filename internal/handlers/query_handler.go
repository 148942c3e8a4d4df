package handlers

import (
	"net/http"

	"fithub_backend/internal/middleware"
	"fithub_backend/internal/models"
	"fithub_backend/internal/services"
	"fithub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	*BaseHandler
	queryService services.QueryService
}

func NewQueryHandler(base *BaseHandler, queryService services.QueryService) *QueryHandler {
	return &QueryHandler{
		BaseHandler:  base,
		queryService: queryService,
	}
}

// RegisterRoutes - подача вопроса доступна пользователям, разбор тренерам.
func (h *QueryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	submit := rg.Group("/trainer/public/queries")
	submit.Use(middleware.AuthMiddleware())
	submit.Use(middleware.RequireRoles(models.UserRoleUser))
	{
		submit.POST("", h.Submit)
	}

	queries := rg.Group("/trainer/queries")
	queries.Use(middleware.AuthMiddleware())
	queries.Use(middleware.RequireRoles(models.UserRoleTrainer))
	{
		queries.GET("", h.ListForTrainer)
		queries.POST("/:id/assign", h.Assign)
		queries.POST("/:id/respond", h.Respond)
	}
}

func (h *QueryHandler) Submit(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.SubmitQueryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	query, err := h.queryService.Submit(principal.Email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, query)
}

func (h *QueryHandler) ListForTrainer(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	queries, err := h.queryService.ListForTrainer(principal.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"queries": queries})
}

func (h *QueryHandler) Assign(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	if err := h.queryService.Assign(principal.Email, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Query assigned"})
}

func (h *QueryHandler) Respond(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.RespondQueryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.queryService.Respond(principal.Email, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Response submitted"})
}
