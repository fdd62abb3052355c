package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"classboard/backend/internal/model"
	"classboard/backend/internal/repository"
)

// mockDB 三个 mock Repository 共享的底层数据
// 作业删除时模拟存储层外键级联，连带删除提交
type mockDB struct {
	users       map[int64]*model.User
	assignments map[int64]*model.Assignment
	submissions map[int64]*model.Submission
	nextID      int64
}

func newMockDB() *mockDB {
	return &mockDB{
		users:       make(map[int64]*model.User),
		assignments: make(map[int64]*model.Assignment),
		submissions: make(map[int64]*model.Submission),
	}
}

func (db *mockDB) id() int64 {
	db.nextID++
	return db.nextID
}

func newMockRepository() (*repository.Repository, *mockDB) {
	db := newMockDB()
	return &repository.Repository{
		User:       &mockUserRepo{db: db},
		Assignment: &mockAssignmentRepo{db: db},
		Submission: &mockSubmissionRepo{db: db},
	}, db
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	db *mockDB
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.db.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = m.db.id()
	m.db.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByRoleAndEmail(_ context.Context, role, email string) (*model.User, error) {
	for _, u := range m.db.users {
		if u.Role == role && u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListStudents(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.db.users {
		if u.Role == model.RoleStudent {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	db *mockDB
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	assignment.ID = m.db.id()
	m.db.assignments[assignment.ID] = assignment
	return nil
}

func (m *mockAssignmentRepo) List(_ context.Context, courseCode string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.db.assignments {
		if courseCode != "" && (a.CourseCode == nil || *a.CourseCode != courseCode) {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id int64) (*model.Assignment, error) {
	if a, ok := m.db.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) UpdateTitleDescription(_ context.Context, id int64, title, description string) error {
	// 与真实存储一致：id 不存在时静默空操作
	if a, ok := m.db.assignments[id]; ok {
		a.Title = title
		a.Description = description
	}
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id int64) error {
	delete(m.db.assignments, id)
	// 模拟外键级联
	for sid, s := range m.db.submissions {
		if s.AssignmentID == id {
			delete(m.db.submissions, sid)
		}
	}
	return nil
}

// ── Mock SubmissionRepository ──

type mockSubmissionRepo struct {
	db *mockDB
}

func (m *mockSubmissionRepo) Create(_ context.Context, submission *model.Submission) error {
	submission.ID = m.db.id()
	m.db.submissions[submission.ID] = submission
	return nil
}

// preload 模拟 GORM Preload，填充关联指针
func (m *mockSubmissionRepo) preload(s model.Submission) model.Submission {
	if a, ok := m.db.assignments[s.AssignmentID]; ok {
		s.Assignment = a
	}
	if u, ok := m.db.users[s.StudentID]; ok {
		s.Student = u
	}
	return s
}

func paginate(subs []model.Submission, offset, limit int) []model.Submission {
	if offset >= len(subs) {
		return nil
	}
	subs = subs[offset:]
	if limit >= 0 && limit < len(subs) {
		subs = subs[:limit]
	}
	return subs
}

func (m *mockSubmissionRepo) ListByStudent(_ context.Context, studentID int64, offset, limit int) ([]model.Submission, error) {
	var result []model.Submission
	for _, s := range m.db.submissions {
		if s.StudentID == studentID {
			result = append(result, m.preload(*s))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return paginate(result, offset, limit), nil
}

func (m *mockSubmissionRepo) ListAll(_ context.Context, offset, limit int) ([]model.Submission, error) {
	var result []model.Submission
	for _, s := range m.db.submissions {
		result = append(result, m.preload(*s))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return paginate(result, offset, limit), nil
}

func (m *mockSubmissionRepo) ListByAssignment(_ context.Context, assignmentID int64) ([]model.Submission, error) {
	var result []model.Submission
	for _, s := range m.db.submissions {
		if s.AssignmentID == assignmentID {
			result = append(result, m.preload(*s))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		var ni, nj string
		if result[i].Student != nil {
			ni = result[i].Student.Name
		}
		if result[j].Student != nil {
			nj = result[j].Student.Name
		}
		return ni < nj
	})
	return result, nil
}

func (m *mockSubmissionRepo) Grade(_ context.Context, id int64, grade, feedback, gradedAt string) error {
	// id 不存在时静默空操作
	if s, ok := m.db.submissions[id]; ok {
		s.Grade = &grade
		s.Feedback = &feedback
		s.GradedAt = &gradedAt
	}
	return nil
}

func (m *mockSubmissionRepo) Delete(_ context.Context, id int64) error {
	delete(m.db.submissions, id)
	return nil
}
