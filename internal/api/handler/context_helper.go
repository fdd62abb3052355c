package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"classboard/backend/pkg/response"
	"classboard/backend/pkg/session"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果会话中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "Not logged in")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		response.Unauthorized(c, "Not logged in")
		return 0, false
	}
	return id, true
}

// MustGetSession 从 Gin 上下文还原完整会话用户。
func MustGetSession(c *gin.Context) (*session.Session, bool) {
	id, ok := MustGetUserID(c)
	if !ok {
		return nil, false
	}
	role, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, "Not logged in")
		return nil, false
	}
	sess := &session.Session{
		UserID: id,
		Role:   role.(string),
		Name:   c.GetString("name"),
		Email:  c.GetString("email"),
	}
	return sess, true
}

// isMultipart 显式按 Content-Type 区分 multipart 表单与 JSON 请求体
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data")
}
