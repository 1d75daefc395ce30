package fanout_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/app/fanout"
	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string{}, func(_ context.Context, _ string) (bool, error) {
		t.Fatal("fn should not be called for empty items")
		return false, nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("results = %v, want empty non-nil slice", results)
	}
}

func TestRun_PreservesOrderAndItems(t *testing.T) {
	t.Parallel()

	ids := []string{"a", "b", "c", "d", "e"}

	results := fanout.Run(context.Background(), 2, ids, func(_ context.Context, id string) (string, error) {
		if id == "a" {
			time.Sleep(10 * time.Millisecond)
		}
		return strings.ToUpper(id), nil
	})

	for i, r := range results {
		if r.Item != ids[i] {
			t.Errorf("results[%d].Item = %q, want %q", i, r.Item, ids[i])
		}
		if r.Err != nil || r.Value != strings.ToUpper(ids[i]) {
			t.Errorf("results[%d] = {%q, %v}", i, r.Value, r.Err)
		}
	}
}

func TestRun_PartialFailure(t *testing.T) {
	t.Parallel()

	ids := []string{"a", "missing", "c"}

	results := fanout.Run(context.Background(), 3, ids, func(_ context.Context, id string) (string, error) {
		if id == "missing" {
			return "", domain.ErrNotFound
		}
		return id, nil
	})

	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("unexpected errors: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, domain.ErrNotFound) {
		t.Errorf("results[1].Err = %v, want ErrNotFound", results[1].Err)
	}

	err := fanout.Join(results)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Join() = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing: ") {
		t.Errorf("Join() = %q, want item prefix", err.Error())
	}
}

func TestJoin_AllSucceeded(t *testing.T) {
	t.Parallel()

	results := []fanout.Result[string, int]{{Item: "a", Value: 1}, {Item: "b", Value: 2}}
	if err := fanout.Join(results); err != nil {
		t.Errorf("Join() = %v, want nil", err)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3

	var peak, active atomic.Int32
	items := make([]int, 15)

	fanout.Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)

		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)
		return 0, nil
	})

	if p := peak.Load(); p > maxWorkers {
		t.Fatalf("peak concurrency %d exceeded maxWorkers %d", p, maxWorkers)
	}
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32

	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	if calls.Load() != 1 {
		t.Errorf("fn called %d times, want 1", calls.Load())
	}
	for _, r := range results[1:] {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("item %d: Err = %v, want context.Canceled", r.Item, r.Err)
		}
	}
}

func TestRun_NonPositiveWorkers(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 0, []int{1, 2}, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})

	if results[0].Value != 2 || results[1].Value != 4 {
		t.Errorf("results = %+v", results)
	}
}
