package puzzle

import (
	"context"
	"sync"

	"github.com/katalvlaran/sudoku/generate"
	"github.com/katalvlaran/sudoku/solve"
)

// Cache keeps one ready instance per tier and refills consumed
// entries in the background. At most one generation runs per tier at
// any moment.
type Cache struct {
	ctx context.Context
	gen func(context.Context, solve.Tier) (*Instance, error)

	mu      sync.Mutex
	entries map[solve.Tier]*cacheEntry
}

type cacheEntry struct {
	ready   *Instance
	filling bool
	done    chan struct{}
	err     error
}

// NewCache builds an empty cache. The context bounds all background
// generation; cancel it to stop refills.
func NewCache(ctx context.Context) *Cache {
	return &Cache{
		ctx:     ctx,
		gen:     generateInstance,
		entries: make(map[solve.Tier]*cacheEntry),
	}
}

func generateInstance(ctx context.Context, tier solve.Tier) (*Instance, error) {
	p, err := generate.Generate(ctx, generate.DefaultOptions(tier))
	if err != nil {
		return nil, err
	}
	return NewInstance(p), nil
}

// Take hands out the ready instance for a tier, triggering a
// background refill. With no entry ready it waits for the in-flight
// generation (starting one when needed) or for the caller's context.
func (c *Cache) Take(ctx context.Context, tier solve.Tier) (*Instance, error) {
	for {
		c.mu.Lock()
		e := c.entry(tier)
		if e.ready != nil {
			inst := e.ready
			e.ready = nil
			c.fillLocked(tier, e)
			c.mu.Unlock()
			return inst, nil
		}
		if e.err != nil {
			err := e.err
			e.err = nil
			c.mu.Unlock()
			return nil, err
		}
		c.fillLocked(tier, e)
		done := e.done
		c.mu.Unlock()

		// fillLocked declined: the cache context is gone.
		if done == nil {
			return nil, c.ctx.Err()
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-done:
		}
	}
}

// Warm starts background generation for the given tiers without
// consuming anything.
func (c *Cache) Warm(tiers ...solve.Tier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tier := range tiers {
		c.fillLocked(tier, c.entry(tier))
	}
}

// entry returns the tier's slot, creating it on first use. Callers
// hold c.mu.
func (c *Cache) entry(tier solve.Tier) *cacheEntry {
	e, ok := c.entries[tier]
	if !ok {
		e = &cacheEntry{}
		c.entries[tier] = e
	}
	return e
}

// fillLocked starts one background generation for the entry unless it
// is already stocked or filling. Callers hold c.mu.
func (c *Cache) fillLocked(tier solve.Tier, e *cacheEntry) {
	if e.ready != nil || e.filling || c.ctx.Err() != nil {
		return
	}
	e.filling = true
	e.done = make(chan struct{})
	go func() {
		inst, err := c.gen(c.ctx, tier)
		c.mu.Lock()
		e.ready, e.err = inst, err
		e.filling = false
		close(e.done)
		e.done = nil
		c.mu.Unlock()
	}()
}
