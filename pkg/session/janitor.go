package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// Janitor periodically removes idle sessions
type Janitor struct {
	store    idleRemover
	ttl      time.Duration
	interval time.Duration
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

type idleRemover interface {
	DeleteIdle(ctx context.Context, ttl time.Duration) (int64, error)
}

// NewJanitor makes a janitor removing sessions idle longer than ttl every interval
func NewJanitor(store idleRemover, ttl, interval time.Duration) *Janitor {
	return &Janitor{store: store, ttl: ttl, interval: interval}
}

// Start begins the cleanup loop
func (j *Janitor) Start(ctx context.Context) {
	ctx, j.cancel = context.WithCancel(ctx)
	j.wg.Add(1)
	go j.worker(ctx)
	lgr.Printf("[INFO] session janitor started, ttl %v, interval %v", j.ttl, j.interval)
}

// Stop gracefully stops the janitor
func (j *Janitor) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
	j.wg.Wait()
	lgr.Printf("[DEBUG] session janitor stopped")
}

func (j *Janitor) worker(ctx context.Context) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.cleanup(ctx)
		}
	}
}

func (j *Janitor) cleanup(ctx context.Context) {
	deleted, err := j.store.DeleteIdle(ctx, j.ttl)
	if err != nil {
		lgr.Printf("[WARN] failed to remove idle sessions: %v", err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] removed %d idle sessions", deleted)
	}
}
