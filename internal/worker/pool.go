// Package worker provides background processing for cover art jobs.
package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

// DefaultJobTimeout bounds a single cover art lookup.
const DefaultJobTimeout = 15 * time.Second

// Pool manages background workers for async art jobs.
type Pool struct {
	resolver   ports.CoverArtResolver
	jobs       chan ports.ArtJob
	wg         sync.WaitGroup
	jobTimeout time.Duration

	mu      sync.RWMutex
	stopped bool
}

var _ ports.ArtDispatcher = (*Pool)(nil)

// NewPool creates a worker pool with the given worker count and queue size.
func NewPool(resolver ports.CoverArtResolver, workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		resolver:   resolver,
		jobs:       make(chan ports.ArtJob, queueSize),
		jobTimeout: DefaultJobTimeout,
	}
}

// SetJobTimeout changes the per-job deadline. Call before Start.
func (p *Pool) SetJobTimeout(d time.Duration) {
	if d > 0 {
		p.jobTimeout = d
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop drains the queue and waits for workers to finish. Later submits are rejected.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// Submit queues a job without blocking.
func (p *Pool) Submit(job ports.ArtJob) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		log.Printf("WARN worker: pool stopped, dropping job for %s", job.EntryID)
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		log.Printf("WARN worker: dropping job for %s", job.EntryID)
		return false
	}
}

func (p *Pool) processJob(job ports.ArtJob) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()

	url, ok := p.resolver.ResolveCoverArt(ctx, job.EntryID, job.ReleaseID)
	if !ok {
		log.Printf("DEBUG worker: no cover art for %s", job.EntryID)
		return
	}
	log.Printf("DEBUG worker: cached cover art for %s: %s", job.EntryID, url)
}
