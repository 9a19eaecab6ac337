package handler

import (
	"net/http"

	"blog-admin-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Register handles POST /user/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if msg := req.Validate(); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()
	h.logger.Info("User registered via API", zap.String("userID", user.ID.String()))
	respondCreated(c, gin.H{"userId": user.ID}, "注册成功")
}

// Login handles POST /user/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		loginsTotal.WithLabelValues("failure").Inc()
		h.handleServiceError(c, err)
		return
	}

	loginsTotal.WithLabelValues("success").Inc()
	respondSuccess(c, gin.H{
		"user":  user.Public(),
		"token": token,
	}, "登录成功")
}

// GetUser handles GET /user/user/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.auth.GetUser(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, user.Public(), "")
}
