/*
pruner.go - Automated history retention

PURPOSE:
  Periodically deletes calculation history older than the retention window.
  History is append-only; this is the only path that removes old records.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Prunes once immediately on start, then on every tick
  - Errors are logged and retried on the next tick

CONFIGURATION:
  - Interval:  How often to prune (default: 1 hour)
  - Retention: How long records are kept (default: 30 days)
  - Enabled:   Whether the pruner is active (default: true)

USAGE:
  pruner := NewHistoryPruner(store)
  pruner.Start()
  // ... later
  pruner.Stop()

SEE ALSO:
  - generic/store.go: DeleteBefore
  - config/config.go: TAKEHOME_HISTORY_RETENTION, TAKEHOME_PRUNE_INTERVAL
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/warp/takehome-engine/generic"
)

// HistoryPruner deletes expired calculation history.
type HistoryPruner struct {
	Store     generic.CalculationStore
	Interval  time.Duration
	Retention time.Duration
	Enabled   bool
	Now       func() time.Time

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex

	// lastTick is when the ticker was started or last fired; zero when stopped.
	tickMu   sync.Mutex
	lastTick time.Time
}

// NewHistoryPruner creates a new pruner.
func NewHistoryPruner(store generic.CalculationStore) *HistoryPruner {
	return &HistoryPruner{
		Store:     store,
		Interval:  1 * time.Hour,
		Retention: 30 * 24 * time.Hour,
		Enabled:   true,
		Now:       time.Now,
		stop:      make(chan bool),
	}
}

// Start begins the pruner.
func (p *HistoryPruner) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.Enabled || p.Store == nil {
		log.Println("[Pruner] Disabled, not starting")
		return
	}
	if p.ticker != nil {
		return
	}

	p.stop = make(chan bool)
	p.ticker = time.NewTicker(p.Interval)
	p.setLastTick(p.Now())
	p.wg.Add(1)

	go p.run()

	log.Printf("[Pruner] Started with interval %v, retention %v", p.Interval, p.Retention)
}

// Stop stops the pruner.
func (p *HistoryPruner) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ticker != nil {
		p.ticker.Stop()
		close(p.stop)
		p.wg.Wait()
		p.ticker = nil
		p.setLastTick(time.Time{})
		log.Println("[Pruner] Stopped")
	}
}

func (p *HistoryPruner) run() {
	defer p.wg.Done()

	// Run immediately on start
	p.prune()

	for {
		select {
		case <-p.ticker.C:
			p.setLastTick(p.Now())
			p.prune()
		case <-p.stop:
			return
		}
	}
}

func (p *HistoryPruner) prune() int {
	cutoff := p.Now().Add(-p.Retention)

	n, err := p.Store.DeleteBefore(context.Background(), cutoff)
	if err != nil {
		log.Printf("[Pruner] Error pruning history before %v: %v", cutoff, err)
		return 0
	}
	if n > 0 {
		log.Printf("[Pruner] Removed %d calculations older than %v", n, cutoff)
	}
	return n
}

// RunNow prunes immediately and returns how many records were removed.
func (p *HistoryPruner) RunNow() int {
	return p.prune()
}

// GetNextRunTime returns when the next scheduled prune will occur, or the
// zero time when the pruner is not running. RunNow does not move it.
func (p *HistoryPruner) GetNextRunTime() time.Time {
	p.tickMu.Lock()
	defer p.tickMu.Unlock()

	if p.lastTick.IsZero() {
		return time.Time{}
	}
	return p.lastTick.Add(p.Interval)
}

func (p *HistoryPruner) setLastTick(t time.Time) {
	p.tickMu.Lock()
	p.lastTick = t
	p.tickMu.Unlock()
}
