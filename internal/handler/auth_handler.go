package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"Association_Portal/internal/service"
)

type AuthHandler struct {
	responder
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService, log *slog.Logger, development bool) *AuthHandler {
	return &AuthHandler{responder: newResponder(log, development), svc: svc}
}

type loginReq struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if !h.bind(c, &req) {
		return
	}
	token, admin, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": service.PrincipalOf(admin)})
}

// Verify GET /api/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	admin, err := h.svc.Verify(c.Request.Context(), principal(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": service.PrincipalOf(admin)})
}

// ChangePassword POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if !h.bind(c, &req) {
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), principal(c), req.CurrentPassword, req.NewPassword); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// ListAdmins GET /api/auth/admins
func (h *AuthHandler) ListAdmins(c *gin.Context) {
	admins, err := h.svc.ListAdmins(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": admins})
}

// CreateAdmin POST /api/auth/admins
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var in service.AdminInput
	if !h.bind(c, &in) {
		return
	}
	admin, err := h.svc.CreateAdmin(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}
