package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/service"
)

type AcademicHandler struct {
	responder
	svc *service.AcademicService
}

func NewAcademicHandler(svc *service.AcademicService, log *slog.Logger, development bool) *AcademicHandler {
	return &AcademicHandler{responder: newResponder(log, development), svc: svc}
}

// Get GET /api/academic-links
func (h *AcademicHandler) Get(c *gin.Context) {
	links, err := h.svc.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// Update PUT /api/academic-links
func (h *AcademicHandler) Update(c *gin.Context) {
	var in service.AcademicInput
	if !h.bind(c, &in) {
		return
	}
	links, err := h.svc.Update(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}
