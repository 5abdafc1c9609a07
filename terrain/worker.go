package terrain

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/scottkirkwood/gart/geom"
	"github.com/scottkirkwood/gart/randompool"
)

// Request is everything a generation needs. It is copied into the worker,
// nothing is shared with the caller.
type Request struct {
	Seed       string
	ParameterA float64
}

// Result is a finished generation. ID is the id Submit returned.
type Result struct {
	ID   uint64
	Mesh *geom.Mesh
	Err  error
}

type job struct {
	id  uint64
	req Request
}

// Worker generates landscapes off the render loop. A new request supersedes
// any earlier one: a pending request is replaced, one in progress is
// cancelled, and a result that is no longer the latest is dropped.
type Worker struct {
	mu      sync.Mutex
	latest  uint64
	pending *job
	cancel  context.CancelFunc

	wake    chan struct{}
	results chan Result
}

// NewWorker returns an idle worker. Call Run to start it.
func NewWorker() *Worker {
	return &Worker{
		wake:    make(chan struct{}, 1),
		results: make(chan Result, 1),
	}
}

// Submit queues req and returns its id. Ids increase monotonically.
func (w *Worker) Submit(req Request) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.latest++
	if w.cancel != nil {
		w.cancel()
	}
	w.pending = &job{id: w.latest, req: req}
	select {
	case w.wake <- struct{}{}:
	default:
	}
	return w.latest
}

// Current reports whether id is the most recent request. Consumers check it
// before applying a result, since a newer request may have been submitted
// after the result was sent.
func (w *Worker) Current(id uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return id == w.latest
}

// Results is where finished generations arrive. Only the newest unread
// result is kept.
func (w *Worker) Results() <-chan Result {
	return w.results
}

// Run processes requests until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.wake:
		}

		w.mu.Lock()
		j := w.pending
		w.pending = nil
		if j == nil {
			w.mu.Unlock()
			continue
		}
		jctx, cancel := context.WithCancel(ctx)
		w.cancel = cancel
		w.mu.Unlock()

		mesh, err := Generate(jctx, randompool.New(j.req.Seed), j.req.ParameterA)
		cancel()

		w.mu.Lock()
		w.cancel = nil
		stale := j.id != w.latest
		w.mu.Unlock()

		if stale || errors.Is(err, context.Canceled) {
			log.Debug().Uint64("id", j.id).Msg("later request available, dropping terrain")
			continue
		}
		w.deliver(Result{ID: j.id, Mesh: mesh, Err: err})
	}
}

// deliver replaces any unread result with r.
func (w *Worker) deliver(r Result) {
	for {
		select {
		case w.results <- r:
			return
		default:
		}
		select {
		case <-w.results:
		default:
		}
	}
}
