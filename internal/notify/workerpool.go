package notify

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one queued broker publish.
type Task func() error

// WorkerPool bounds how many notification publishes run at once, so a slow
// broker backs up this queue instead of request handlers.
type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(workers int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, workers)}
	for i := 0; i < workers; i++ {
		go wp.run()
	}
	return wp
}

func (wp *WorkerPool) run() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Warn("notification publish failed", zap.Error(err))
		}
	}
}

// AddTask enqueues a task, giving up when the context ends first.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops the workers once the queued tasks drain.
func (wp *WorkerPool) Close() {
	close(wp.tasks)
}
