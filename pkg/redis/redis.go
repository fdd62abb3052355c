package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"classboard/backend/config"
	"classboard/backend/pkg/session"
)

// Client Redis 客户端封装
// 当前用于会话存储与登录限流；后续可扩展缓存、分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 会话存储（实现 session.Store）──

const sessionPrefix = "session:"

// SessionStore 基于 Redis 的会话存储
type SessionStore struct {
	c *Client
}

// Sessions 返回实现 session.Store 的 Redis 会话存储
func (c *Client) Sessions() *SessionStore {
	return &SessionStore{c: c}
}

func (s *SessionStore) Save(ctx context.Context, token string, sess *session.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.c.rdb.Set(ctx, sessionPrefix+token, data, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, token string) (*session.Session, error) {
	data, err := s.c.rdb.Get(ctx, sessionPrefix+token).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.c.rdb.Del(ctx, sessionPrefix+token).Err()
}

// ── 限流 ──

// CheckRateLimit 固定窗口计数限流
// 返回 true 表示放行；窗口内首个请求设置过期时间
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
