package session

import (
	"context"
	"encoding/json"
	"fmt"

	"housing-dashboard-service/internal/core/domain"

	"github.com/redis/go-redis/v9"
)

// Ключи повторяют набор browser storage исходного дашборда:
// токен, флаг аутентификации, идентификатор пользователя, блоб профиля.
// Политика прежняя - last writer wins, без версионирования.
const (
	keyToken         = "token"
	keyAuthenticated = "authenticated"
	keyUserID        = "user_id"
	keyProfile       = "user_profile"
)

// RedisSessionStore реализует SessionStorePort поверх Redis.
type RedisSessionStore struct {
	client *redis.Client
}

type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisSessionStore подключается к Redis и проверяет соединение.
func NewRedisSessionStore(ctx context.Context, cfg Config) (*RedisSessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("session store: failed to ping redis: %w", err)
	}

	return &RedisSessionStore{client: client}, nil
}

// NewRedisSessionStoreFromClient - конструктор для тестов (miniredis).
func NewRedisSessionStoreFromClient(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(userID, field string) string {
	return fmt.Sprintf("session:%s:%s", userID, field)
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, userID, token string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(userID, keyToken), token, 0)
	pipe.Set(ctx, sessionKey(userID, keyAuthenticated), "true", 0)
	pipe.Set(ctx, sessionKey(userID, keyUserID), userID, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session store: failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Token(ctx context.Context, userID string) (string, error) {
	token, err := s.client.Get(ctx, sessionKey(userID, keyToken)).Result()
	if err == redis.Nil {
		return "", nil // токена нет - не ошибка, решает вызывающий
	}
	if err != nil {
		return "", fmt.Errorf("session store: failed to read token: %w", err)
	}
	return token, nil
}

func (s *RedisSessionStore) IsAuthenticated(ctx context.Context, userID string) (bool, error) {
	flag, err := s.client.Get(ctx, sessionKey(userID, keyAuthenticated)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("session store: failed to read auth flag: %w", err)
	}
	return flag == "true", nil
}

func (s *RedisSessionStore) SaveProfile(ctx context.Context, userID string, profile *domain.UserProfile) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("session store: failed to marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(userID, keyProfile), blob, 0).Err(); err != nil {
		return fmt.Errorf("session store: failed to save profile: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	blob, err := s.client.Get(ctx, sessionKey(userID, keyProfile)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session store: failed to read profile: %w", err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(blob, &profile); err != nil {
		return nil, fmt.Errorf("session store: failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, userID string) error {
	keys := []string{
		sessionKey(userID, keyToken),
		sessionKey(userID, keyAuthenticated),
		sessionKey(userID, keyUserID),
		sessionKey(userID, keyProfile),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session store: failed to clear session: %w", err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
