// Package handler wires the lead intake service to its HTTP routes.
// Handlers are thin pass-throughs: binding, structural checks, delegation.
package handler

import (
	"net/http"

	"leadintake_backend/internal/leads/domain"
	"leadintake_backend/internal/leads/service"
	"leadintake_backend/internal/leads/transport"
	"leadintake_backend/platform/httpkit"
	"leadintake_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.POST("/hot", h.CreateHot)
	rg.POST("/warm", h.CreateWarm)
	rg.POST("/cold", h.CreateCold)
	rg.GET("/check-duplicate", h.CheckDuplicate)
	rg.GET("/:id", h.GetByID)
	rg.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	h.create(c, "")
}

func (h *Handler) CreateHot(c *gin.Context) {
	h.create(c, string(domain.LeadTypeHot))
}

func (h *Handler) CreateWarm(c *gin.Context) {
	h.create(c, string(domain.LeadTypeWarm))
}

func (h *Handler) CreateCold(c *gin.Context) {
	h.create(c, string(domain.LeadTypeCold))
}

func (h *Handler) create(c *gin.Context, variant string) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), variant, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, lead)
}

func (h *Handler) GetByID(c *gin.Context) {
	lead, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, lead)
}

func (h *Handler) List(c *gin.Context) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.List(c.Request.Context(), req.Sort == "priority"))
}

func (h *Handler) CheckDuplicate(c *gin.Context) {
	var req transport.CheckDuplicateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, transport.DuplicateResponse{
		Duplicate: h.svc.EmailExists(c.Request.Context(), req.Email),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"message": "lead deleted successfully"})
}
