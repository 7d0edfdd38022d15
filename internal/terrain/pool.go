package terrain

import (
	"context"
	"sync"
)

// rowPool paints grid rows on a fixed set of goroutines. Rows never share
// cells, so workers write into the grid without locking.
type rowPool struct {
	jobs  chan int
	ctx   context.Context
	wg    sync.WaitGroup
	paint func(y int)
}

func newRowPool(ctx context.Context, workers, queueSize int, paint func(y int)) *rowPool {
	p := &rowPool{
		jobs:  make(chan int, queueSize),
		ctx:   ctx,
		paint: paint,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// submit queues row y, blocking while the queue is full. It returns false
// once the context is done.
func (p *rowPool) submit(y int) bool {
	select {
	case p.jobs <- y:
		return true
	case <-p.ctx.Done():
		return false
	}
}

func (p *rowPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case y, ok := <-p.jobs:
			if !ok {
				return
			}
			p.paint(y)
		case <-p.ctx.Done():
			return
		}
	}
}

// wait closes the queue and blocks until every worker has exited.
func (p *rowPool) wait() {
	close(p.jobs)
	p.wg.Wait()
}
