package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
	if !health.Healthy(results) {
		t.Error("Healthy(empty) = false, want true")
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockHealthChecker(t)
	store.EXPECT().Name().Return("todo-store")
	store.EXPECT().HealthCheck(mock.Anything).Return(nil)

	refused := errors.New("connection refused")
	cache := mocks.NewMockHealthChecker(t)
	cache.EXPECT().Name().Return("list-cache")
	cache.EXPECT().HealthCheck(mock.Anything).Return(refused)

	r := health.New()
	r.Register(store)
	r.Register(cache)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["todo-store"] != nil {
		t.Errorf("todo-store check = %v, want nil", results["todo-store"])
	}
	if !errors.Is(results["list-cache"], refused) {
		t.Errorf("list-cache check = %v, want %v", results["list-cache"], refused)
	}
	if health.Healthy(results) {
		t.Error("Healthy() = true, want false with a failing check")
	}
}

func TestCheckAll_ChecksAreBoundedByTimeout(t *testing.T) {
	t.Parallel()

	slow := health.NewFunc("todo-store", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)

	start := time.Now()
	results := r.CheckAll(context.Background())

	if !errors.Is(results["todo-store"], context.DeadlineExceeded) {
		t.Errorf("todo-store check = %v, want DeadlineExceeded", results["todo-store"])
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want it bounded by the check timeout", elapsed)
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("todo-api")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	if err := r.CheckAll(ctx)["todo-api"]; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCheckAll_DuplicateNames_LastRegisteredWins(t *testing.T) {
	t.Parallel()

	secondErr := errors.New("second failure")

	r := health.New()
	r.Register(health.NewFunc("todo-store", func(context.Context) error { return nil }))
	r.Register(health.NewFunc("todo-store", func(context.Context) error { return secondErr }))

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !errors.Is(results["todo-store"], secondErr) {
		t.Errorf("todo-store check = %v, want %v", results["todo-store"], secondErr)
	}
}

func TestCheckAll_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				r.Register(health.NewFunc("checker", func(context.Context) error { return nil }))
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}
