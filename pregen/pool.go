// Package pregen runs data-generation routines before a pack is written.
// Each routine builds documents and stores them through a pack.Writer;
// routines run concurrently on a bounded pool.
package pregen

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Func is one generation routine. It should return promptly once ctx is
// cancelled.
type Func func(ctx context.Context) error

type task struct {
	name string
	fn   Func
}

// Pool collects routines and runs them with bounded concurrency. A Pool is
// not safe for concurrent Submit; Run may be called once.
type Pool struct {
	workers int
	logger  *slog.Logger
	tasks   []task
}

// Option configures a [Pool].
type Option func(*Pool)

// WithWorkers bounds the number of routines running at once. The default is
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

func New(opts ...Option) *Pool {
	p := &Pool{workers: runtime.GOMAXPROCS(0), logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Submit queues fn under name. Names appear in logs and errors.
func (p *Pool) Submit(name string, fn Func) {
	p.tasks = append(p.tasks, task{name: name, fn: fn})
}

// Len returns the number of queued routines.
func (p *Pool) Len() int { return len(p.tasks) }

// Run executes every queued routine. The first failure cancels the context
// passed to the others and is returned, wrapped with the routine name.
func (p *Pool) Run(ctx context.Context) error {
	start := time.Now()
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)
	for _, t := range p.tasks {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if err := t.fn(egCtx); err != nil {
				return fmt.Errorf("pregen: %s: %w", t.name, err)
			}
			p.logger.Debug("pregen routine done", "name", t.name)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		p.logger.Error("pregen failed", "err", err)
		return err
	}
	p.logger.Info("pregen complete", "routines", len(p.tasks), "elapsed", time.Since(start))
	return nil
}
