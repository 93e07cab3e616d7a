package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// Run executes queued handlers one at a time until ctx is done. Registry and
// membership state are only ever touched from this goroutine.
func (that *Coordinator) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	defer close(that.stopped)

	log.Info("event loop started")

	for {
		select {
		case <-ctx.Done():
			log.Info("event loop stopped")
			return nil
		case job := <-that.queue:
			that.execute(job)
		}
	}
}

func (that *Coordinator) execute(job func()) {
	defer func() {
		if recovered := recover(); recovered != nil {
			that.logger.Error("handler panicked", "panic", fmt.Sprint(recovered))
		}
	}()

	job()
}

// Submit queues an event. Events submitted by one goroutine are handled in
// the order they were submitted.
func (that *Coordinator) Submit(ctx context.Context, connID string, event entity.Event) error {
	return that.enqueue(ctx, func() {
		that.Dispatch(connID, event)
	})
}

// Stats runs the status query on the loop and waits for its result.
func (that *Coordinator) Stats(ctx context.Context) (*entity.Stats, error) {
	result := make(chan *entity.Stats, 1)

	if err := that.enqueue(ctx, func() {
		result <- that.snapshot()
	}); err != nil {
		return nil, fmt.Errorf("failed to queue stats query: %w", err)
	}

	select {
	case stats := <-result:
		return stats, nil
	case <-that.stopped:
		return nil, apperror.ErrLoopStopped
	case <-ctx.Done():
		return nil, fmt.Errorf("stats query: %w", ctx.Err())
	}
}

func (that *Coordinator) enqueue(ctx context.Context, job func()) error {
	select {
	case <-that.stopped:
		return apperror.ErrLoopStopped
	default:
	}

	select {
	case that.queue <- job:
		return nil
	case <-that.stopped:
		return apperror.ErrLoopStopped
	case <-ctx.Done():
		return fmt.Errorf("enqueue: %w", ctx.Err())
	}
}
