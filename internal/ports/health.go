package ports

import "context"

// HealthChecker reports whether one dependency is usable. The todo stores,
// the redis query cache and the remote-call bindings implement it.
type HealthChecker interface {
	// Name keys the checker in the readiness response, e.g. "todo-store",
	// "redis" or "todo-api".
	Name() string
	HealthCheck(ctx context.Context) error
}

// HealthRegistry backs /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every checker and returns its error by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}
