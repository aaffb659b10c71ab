// Package writequeue serializes mutations of the persisted records.
//
// The record layer uses whole-record read-merge-write, so two overlapping
// mutations of the same record would race and the second snapshot could
// silently discard the first writer's update. The queue gives every record
// key its own lane with a single worker goroutine, guaranteeing one
// outstanding mutation at a time per record while keeping independent
// records concurrent.
package writequeue

import (
	"context"
	"sync"
	"time"

	"github.com/Sameer447/ChefsQuest/pkg/logger"
	"github.com/Sameer447/ChefsQuest/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultLaneCapacity = 256
)

// Mutation is a unit of work executed with exclusive access to one record.
type Mutation func(ctx context.Context) error

// job couples a mutation with its submitter's context and result channel.
type job struct {
	ctx  context.Context
	run  Mutation
	done chan error
}

// lane is the FIFO pipeline for a single record key.
type lane struct {
	jobs chan job
}

// Queue executes mutations serially per record key.
type Queue struct {
	mu       sync.Mutex
	lanes    map[string]*lane
	capacity int
	closed   bool
	wg       sync.WaitGroup
	log      logger.Logger
}

// Option applies a configuration option to the Queue.
type Option func(*Queue)

// WithCapacity bounds the number of pending mutations per record key.
func WithCapacity(capacity int) Option {
	return func(q *Queue) {
		if capacity > 0 {
			q.capacity = capacity
		}
	}
}

// WithLogger sets a custom logger for the queue.
func WithLogger(log logger.Logger) Option {
	return func(q *Queue) {
		if log != nil {
			q.log = log
		}
	}
}

// New creates a write queue with configuration options.
func New(opts ...Option) *Queue {
	q := &Queue{
		lanes:    make(map[string]*lane),
		capacity: defaultLaneCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.log == nil {
		q.log = logger.Get().Named("writequeue")
	}
	metrics.UpdateQueueDepth(0)
	return q
}

// Do runs m with exclusive access to the record key, waiting for all
// previously enqueued mutations of that record to finish first. It returns
// the mutation's error, or the context/queue error if m never ran.
func (q *Queue) Do(ctx context.Context, record string, m Mutation) error {
	ln, err := q.lane(record)
	if err != nil {
		metrics.RecordQueueRejection()
		return err
	}

	start := time.Now()
	j := job{ctx: ctx, run: m, done: make(chan error, 1)}

	select {
	case ln.jobs <- j:
		metrics.UpdateQueueDepth(q.Len(ctx))
	case <-ctx.Done():
		metrics.RecordQueueRejection()
		return ctx.Err()
	}

	select {
	case err := <-j.done:
		metrics.RecordMutationLatency(float64(time.Since(start).Milliseconds()))
		return err
	case <-ctx.Done():
		// The mutation may still execute; the worker re-checks the
		// submitter's context before running it.
		metrics.RecordQueueRejection()
		return ctx.Err()
	}
}

// lane returns the pipeline for record, creating it on first use.
func (q *Queue) lane(record string) (*lane, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, ErrClosed
	}
	ln, ok := q.lanes[record]
	if !ok {
		ln = &lane{jobs: make(chan job, q.capacity)}
		q.lanes[record] = ln
		q.wg.Add(1)
		go q.work(record, ln)
	}
	return ln, nil
}

// work drains one lane until its channel is closed.
func (q *Queue) work(record string, ln *lane) {
	defer q.wg.Done()

	for j := range ln.jobs {
		if err := j.ctx.Err(); err != nil {
			j.done <- err
			continue
		}
		err := j.run(j.ctx)
		metrics.RecordQueueMutation()
		if err != nil {
			q.log.Warn(j.ctx, "mutation failed",
				logger.String("record", record),
				logger.Error(err),
			)
		}
		j.done <- err
	}
}

// Len returns the total number of queued mutations across all records.
func (q *Queue) Len(_ context.Context) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	total := 0
	for _, ln := range q.lanes {
		total += len(ln.jobs)
	}
	return total
}

// Close stops accepting new mutations, drains every lane, and waits for
// in-flight work to finish.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	for _, ln := range q.lanes {
		close(ln.jobs)
	}
	q.mu.Unlock()

	q.wg.Wait()
	metrics.UpdateQueueDepth(0)
	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *Queue) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
