package state

import (
	"context"
	"sync"

	"github.com/ourstory-app/ourstory/internal/logging"
)

// Op is one queued remote write.
type Op struct {
	Name string
	Do   func(ctx context.Context) error
}

// Dispatcher consumes the mutation log in enqueue order, firing each
// remote write without awaiting the previous one. Failures are logged,
// never retried and never rolled back; the local state stays as applied.
type Dispatcher struct {
	ops    chan Op
	logger logging.Logger

	wg   sync.WaitGroup
	once sync.Once
}

func NewDispatcher(logger logging.Logger, buffer int) *Dispatcher {
	return &Dispatcher{
		ops:    make(chan Op, buffer),
		logger: logger,
	}
}

// Start runs the consumer until ctx is cancelled or Close is called.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case op, ok := <-d.ops:
				if !ok {
					return
				}
				d.wg.Add(1)
				go func() {
					defer d.wg.Done()
					if err := op.Do(ctx); err != nil {
						d.logger.Error(ctx, "remote write failed", "op", op.Name, "error", err)
					}
				}()
			}
		}
	}()
}

// Enqueue appends the op to the mutation log. Blocks when the log is full.
func (d *Dispatcher) Enqueue(op Op) {
	d.ops <- op
}

// Close stops accepting ops and lets already-fired writes finish.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.ops) })
}

// Wait blocks until the consumer and all in-flight writes are done.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
