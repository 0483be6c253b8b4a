package workerpool

import (
	"context"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

type Result struct {
	Index int
	Err   error
}

type job struct {
	index int
	run   Task
}

// Pool runs submitted tasks on a fixed number of goroutines, optionally
// throttled to a number of task starts per second.
type Pool struct {
	workers int
	jobs    chan job
	next    int
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

func New(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan job, buffer),
	}
}

func (p *Pool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.stopTicker()
	if rps <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ticker = time.NewTicker(time.Second / time.Duration(rps))
	p.rate = p.ticker.C
}

// Submit enqueues t. Tasks are numbered in submission order; Result.Index
// refers to that number. Submit is not safe for concurrent use.
func (p *Pool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.jobs <- job{index: p.next, run: t}
	p.next++
}

// Close stops accepting tasks. Queued tasks still run.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	close(p.jobs)
}

func (p *Pool) stopTicker() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
}

// Run starts the workers. The returned channel closes once every worker has
// exited, which happens after Close or when ctx is done.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers*16)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.jobs:
					if !ok {
						return
					}
					p.mu.RLock()
					rate := p.rate
					p.mu.RUnlock()
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					err := j.run(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Index: j.index, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		p.stopTicker()
		close(out)
	}()

	return out
}

// RunAll executes tasks on up to workers goroutines and returns their errors
// in task order. A task that never ran because ctx ended reports ctx.Err().
func RunAll(ctx context.Context, workers, rps int, tasks ...Task) []error {
	errs := make([]error, len(tasks))
	if len(tasks) == 0 {
		return errs
	}
	done := make([]bool, len(tasks))

	p := New(workers, len(tasks))
	p.SetRateLimit(rps)
	results := p.Run(ctx)
	for _, t := range tasks {
		p.Submit(t)
	}
	p.Close()

	for r := range results {
		errs[r.Index] = r.Err
		done[r.Index] = true
	}
	for i := range tasks {
		if !done[i] {
			errs[i] = ctx.Err()
		}
	}
	return errs
}
