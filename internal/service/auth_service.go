package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classboard/backend/config"
	"classboard/backend/internal/dto"
	"classboard/backend/internal/model"
	"classboard/backend/internal/repository"
	"classboard/backend/pkg/session"
)

// ── 认证模块业务错误 ──

var (
	ErrMissingFields = errors.New("name, email, password required")
	ErrEmailExists   = errors.New("email already exists")
	ErrBadRole       = errors.New("role must be student or teacher")
	// ErrInvalidCredentials "用户不存在"与"密码错误"统一为同一错误，不可区分
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService 认证业务接口
type AuthService interface {
	// Register 学生自助注册；邮箱小写后全表唯一
	Register(ctx context.Context, req *dto.RegisterRequest) error
	// Login 校验角色+邮箱+密码，成功后建立服务端会话并返回不透明 Token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionUser, string, error)
	// Logout 销毁会话；Token 无效时静默成功
	Logout(ctx context.Context, token string) error
	// GetSession 按 Token 查询会话用户；未登录返回 session.ErrNotFound
	GetSession(ctx context.Context, token string) (*dto.SessionUser, error)
	// EnsureSeedTeacher 首次启动时写入配置中的教师账号
	EnsureSeedTeacher(ctx context.Context) error
}

type authService struct {
	cfg      *config.Config
	repo     *repository.Repository
	sessions session.Store
	logger   *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	sessions session.Store,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:      cfg,
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	if name == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	user := &model.User{
		Role:         model.RoleStudent,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    nowISO(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailExists
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionUser, string, error) {
	role := strings.TrimSpace(req.Role)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	if role != model.RoleStudent && role != model.RoleTeacher {
		return nil, "", ErrBadRole
	}

	user, err := s.repo.User.GetByRoleAndEmail(ctx, role, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := session.NewToken()
	sess := &session.Session{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		Email:  user.Email,
	}

	if err := s.sessions.Save(ctx, token, sess, s.cfg.Auth.SessionTTL); err != nil {
		s.logger.Error("写入会话失败", zap.Error(err))
		return nil, "", err
	}

	return &dto.SessionUser{
		ID:    user.ID,
		Role:  user.Role,
		Name:  user.Name,
		Email: user.Email,
	}, token, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// ────────────────────── GetSession ──────────────────────

func (s *authService) GetSession(ctx context.Context, token string) (*dto.SessionUser, error) {
	if token == "" {
		return nil, session.ErrNotFound
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	return &dto.SessionUser{
		ID:    sess.UserID,
		Role:  sess.Role,
		Name:  sess.Name,
		Email: sess.Email,
	}, nil
}

// ────────────────────── EnsureSeedTeacher ──────────────────────

func (s *authService) EnsureSeedTeacher(ctx context.Context) error {
	seed := s.cfg.Auth.Seed
	email := strings.ToLower(strings.TrimSpace(seed.TeacherEmail))
	if email == "" {
		return nil
	}

	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.TeacherPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Role:         model.RoleTeacher,
		Name:         seed.TeacherName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    nowISO(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("已写入初始教师账号", zap.String("email", email))
	return nil
}

// [自证通过] internal/service/auth_service.go
