package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestQueue_Enqueue_And_Close(t *testing.T) {
	q := New(8)
	q.Start()
	defer q.Close()

	var count int64
	for i := 0; i < 10; i++ {
		if err := q.Enqueue(Func(func(ctx context.Context) error {
			atomic.AddInt64(&count, 1)
			return nil
		})); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	time.Sleep(50 * time.Millisecond)

	if c := atomic.LoadInt64(&count); c < 10 {
		t.Fatalf("want >=10 ops applied, got %d", c)
	}
}

func TestQueue_RunSync_ReturnsOpError(t *testing.T) {
	q := New(4)
	q.Start()
	defer q.Close()

	wantErr := errors.New("boom")
	if err := q.RunSync(func(ctx context.Context) error {
		return wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("want op error back, got %v", err)
	}

	if err := q.RunSync(func(ctx context.Context) error {
		return nil
	}); err != nil {
		t.Fatalf("want nil error, got %v", err)
	}
}

func TestQueue_RunSync_SerializesWithEnqueued(t *testing.T) {
	q := New(16)
	q.Start()
	defer q.Close()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		if err := q.Enqueue(Func(func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	// RunSync runs after everything enqueued before it; order is safe to
	// read afterwards because the same worker wrote it.
	if err := q.RunSync(func(ctx context.Context) error {
		order = append(order, 5)
		return nil
	}); err != nil {
		t.Fatalf("runsync: %v", err)
	}

	if len(order) != 6 {
		t.Fatalf("want 6 ops applied in order, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("ops applied out of order: %v", order)
		}
	}
}

func TestQueue_EnqueueAfterClose(t *testing.T) {
	q := New(4)
	q.Start()
	q.Close()

	if err := q.Enqueue(Func(func(ctx context.Context) error { return nil })); err == nil {
		t.Fatal("want error enqueueing on closed queue")
	}
}
