package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that executes tile work.
//
// Each worker owns a queue and steals from the other queues when its own is
// empty, which balances tiles that cover very different amounts of geometry.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool

	// sendMu orders queue sends before Close: ExecuteAll holds it shared
	// while enqueuing, Close holds it exclusively while closing done.
	// Nothing is enqueued after done is closed, so the workers' final
	// drain sees every item.
	sendMu sync.RWMutex
}

// NewWorkerPool creates a pool with the given number of workers and starts
// them. If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(own)
			return
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

// drainQueue executes whatever is still queued so ExecuteAll callers are
// never left waiting on a closed pool.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work round-robin across the workers and waits for
// every item to finish.
//
// Items that have not started when ctx is cancelled are skipped; items
// already running are not interrupted. The returned error is ctx.Err() if
// any item was skipped, otherwise nil. On a closed pool the work runs on the
// calling goroutine.
func (p *WorkerPool) ExecuteAll(ctx context.Context, work []func()) error {
	if len(work) == 0 {
		return ctx.Err()
	}

	var skipped atomic.Bool
	run := func(fn func()) {
		if ctx.Err() != nil {
			skipped.Store(true)
			return
		}
		fn()
	}

	p.sendMu.RLock()
	if !p.running.Load() {
		p.sendMu.RUnlock()
		for _, fn := range work {
			run(fn)
		}
		return p.result(ctx, &skipped)
	}

	var completion sync.WaitGroup
	completion.Add(len(work))
	for i, fn := range work {
		p.workQueues[i%p.workers] <- func() {
			defer completion.Done()
			run(fn)
		}
	}
	p.sendMu.RUnlock()
	completion.Wait()

	return p.result(ctx, &skipped)
}

func (p *WorkerPool) result(ctx context.Context, skipped *atomic.Bool) error {
	if skipped.Load() {
		return ctx.Err()
	}
	return nil
}

// Close stops the workers after the queued work completes.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.sendMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.sendMu.Unlock()
		return
	}
	close(p.done)
	p.sendMu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool has not been closed.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
