package textkit

import (
	"context"
	"fmt"
	"sync"
)

// Pool holds pre-built Tokenizers for worker-style use. Handing each
// goroutine its own instance avoids lock contention on a shared one
// when throughput matters.
type Pool struct {
	tokenizers chan *Tokenizer
	size       int
	mu         sync.Mutex
	closed     bool
}

// NewPool creates a pool of size Tokenizers, each configured with opts.
func NewPool(size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		size = 1
	}

	pool := &Pool{
		tokenizers: make(chan *Tokenizer, size),
		size:       size,
	}
	for i := 0; i < size; i++ {
		t, err := New(opts...)
		if err != nil {
			return nil, fmt.Errorf("creating tokenizer %d: %w", i, err)
		}
		pool.tokenizers <- t
	}
	return pool, nil
}

// Acquire takes a tokenizer from the pool, blocking until one is free.
// Respects context cancellation. Returns an error if the pool is
// closed.
func (p *Pool) Acquire(ctx context.Context) (*Tokenizer, error) {
	select {
	case t, ok := <-p.tokenizers:
		if !ok {
			return nil, ErrPoolClosed
		}
		return t, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a tokenizer to the pool. Releasing into a closed or
// full pool drops the instance.
func (p *Pool) Release(t *Tokenizer) {
	if t == nil {
		return
	}

	// The lock spans the send so Close cannot close the channel between
	// the flag check and the send. The send never blocks, so holding it
	// is cheap.
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	select {
	case p.tokenizers <- t:
	default:
	}
}

// Tokenize acquires a tokenizer, runs it on s, and releases it again.
func (p *Pool) Tokenize(ctx context.Context, s string) ([]string, error) {
	t, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer p.Release(t)
	return t.Tokenize(ctx, s)
}

// Close shuts the pool down. Tokenizers already acquired keep working;
// they just cannot be released back.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	close(p.tokenizers)
	for range p.tokenizers {
	}
	return nil
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.size
}
