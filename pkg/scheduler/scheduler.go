package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type queue[T any] []T

func (wq *queue[T]) Len() int { return len(*wq) }

func (wq *queue[T]) Pop() T {
	old := *wq
	x := old[0]
	*wq = old[1:]
	return x
}

func (wq *queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

type workRequest struct {
	name     string
	fn       Work[any]
	c        chan Result[any]
	ctx      context.Context
	queuedAt time.Time
}

type worker struct {
	done chan any
	wg   *sync.WaitGroup
	log  *zap.SugaredLogger
}

func (w worker) Work(r workRequest) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			w.log.Errorw("work panicked", "name", r.name, "panic", rec)
			r.c <- Result[any]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	w.log.Debugw("work started", "name", r.name, "waited", start.Sub(r.queuedAt))
	v, err := r.fn(r.ctx)
	if err != nil {
		w.log.Warnw("work failed", "name", r.name, "duration", time.Since(start), "error", err)
	} else {
		w.log.Debugw("work finished", "name", r.name, "duration", time.Since(start))
	}
	r.c <- Result[any]{Data: v, Err: err}
}

func newWorker(done chan any, wg *sync.WaitGroup, log *zap.SugaredLogger) worker {
	return worker{done: done, wg: wg, log: log}
}

// Scheduler runs work on a fixed pool of workers. Work beyond the pool size
// waits in FIFO order. With one worker, submitted work runs strictly one
// after another.
type Scheduler struct {
	workers    *queue[worker]
	workQueue  *queue[workRequest]
	close      chan any
	done       chan any
	work       chan workRequest
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
	pending    atomic.Int64
	log        *zap.SugaredLogger
}

func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers < 1 {
		nbWorkers = 1
	}
	done := make(chan any, nbWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		workers:    &queue[worker]{},
		workQueue:  &queue[workRequest]{},
		close:      make(chan any),
		done:       done,
		work:       make(chan workRequest),
		mainCtx:    ctx,
		mainCancel: cancel,
		log:        zap.S().Named("scheduler"),
	}
	for range nbWorkers {
		s.workers.Push(newWorker(done, &s.wg, s.log))
	}
	go s.run()
	return s
}

// AddWork queues w under name and returns a future for its result.
func (s *Scheduler) AddWork(name string, w Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	select {
	case <-s.mainCtx.Done():
		// closing: answer right away
		c <- Result[any]{Err: context.Canceled}
	case s.work <- workRequest{name: name, fn: w, c: c, ctx: ctx, queuedAt: time.Now()}:
		s.pending.Add(1)
	}

	return NewFuture(c, cancel)
}

// Pending returns the number of accepted work items that have not finished.
func (s *Scheduler) Pending() int {
	return int(s.pending.Load())
}

func (s *Scheduler) Close() {
	s.once.Do(func() {
		s.mainCancel()
		s.close <- struct{}{}
		<-s.done
	})
}

func (s *Scheduler) run() {
	defer close(s.done)
	for {
		select {
		case w := <-s.work:
			s.workQueue.Push(w)
			s.dispatch()
		case <-s.done:
			s.pending.Add(-1)
			s.workers.Push(newWorker(s.done, &s.wg, s.log))
			s.dispatch()
		case <-s.close:
			s.wg.Wait()
			return
		}
	}
}

// dispatch drains the workQueue as much as possible
// based on available workers
func (s *Scheduler) dispatch() {
	for s.workers.Len() > 0 && s.workQueue.Len() > 0 {
		r := s.workQueue.Pop()
		worker := s.workers.Pop()
		s.wg.Add(1)
		go worker.Work(r)
	}
}
