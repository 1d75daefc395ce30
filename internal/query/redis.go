package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// RedisStore shares cached pages between front-end replicas. Values are JSON
// and expire after the TTL; a zero TTL stores them without expiry.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore wraps an existing redis client. The caller owns the client.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

type cachedTodo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type cachedPage struct {
	Todos []cachedTodo `json:"todos"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Pages int          `json:"pages"`
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key Key) (*todo.Page, bool, error) {
	raw, err := s.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var cp cachedPage
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, false, fmt.Errorf("decoding cached page %s: %w", key, err)
	}
	return fromCached(cp), true, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key Key, page *todo.Page) error {
	raw, err := json.Marshal(toCached(page))
	if err != nil {
		return fmt.Errorf("encoding cached page %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key.String(), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, key Key) error {
	if err := s.client.Del(ctx, key.String()).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Name implements Store.
func (s *RedisStore) Name() string { return "redis" }

// HealthCheck pings the server. With Name it satisfies ports.HealthChecker.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func toCached(p *todo.Page) cachedPage {
	cp := cachedPage{
		Todos: make([]cachedTodo, len(p.Todos)),
		Total: p.Total,
		Page:  p.Page,
		Pages: p.Pages,
	}
	for i, t := range p.Todos {
		cp.Todos[i] = cachedTodo(t)
	}
	return cp
}

func fromCached(cp cachedPage) *todo.Page {
	p := &todo.Page{
		Todos: make([]todo.Todo, len(cp.Todos)),
		Total: cp.Total,
		Page:  cp.Page,
		Pages: cp.Pages,
	}
	for i, t := range cp.Todos {
		p.Todos[i] = todo.Todo(t)
	}
	return p
}
