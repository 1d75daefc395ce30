package view

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_RunsLastTaskOnce(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Value

	for _, v := range []string{"b", "bu", "buy"} {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(v)
		})
		time.Sleep(5 * time.Millisecond)
	}

	deadline := time.Now().Add(time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(40 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("task ran %d times, want 1", got)
	}
	if got := last.Load(); got != "buy" {
		t.Errorf("last task = %v, want buy", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	if !d.Stop() {
		t.Error("Stop() should report a pending task")
	}
	if d.Stop() {
		t.Error("second Stop() should report nothing pending")
	}

	time.Sleep(30 * time.Millisecond)
	if calls.Load() != 0 {
		t.Error("stopped task ran")
	}
}

func TestDebouncer_Flush(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(time.Hour)
	ran := false

	if d.Flush() {
		t.Error("Flush() with nothing pending should report false")
	}

	d.Trigger(func() { ran = true })
	if !d.Flush() {
		t.Error("Flush() should report the pending task")
	}
	if !ran {
		t.Error("Flush() did not run the task")
	}
	if d.Flush() {
		t.Error("task ran twice")
	}
}
