package health

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"go-health/pkg/log"
)

// Refresher re-evaluates cached checks in the background on a fixed
// interval so probe queries hit warm results even when the TTL expires
// between polls.
type Refresher struct {
	scheduler gocron.Scheduler
	interval  time.Duration
	timeout   time.Duration

	mu      sync.Mutex
	targets map[string]*CachedCheck
}

// NewRefresher creates a Refresher that runs every interval, bounding
// each refresh round by timeout.
func NewRefresher(interval, timeout time.Duration) (*Refresher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Refresher{
		scheduler: scheduler,
		interval:  interval,
		timeout:   timeout,
		targets:   make(map[string]*CachedCheck),
	}, nil
}

// Add schedules a cached check for background refresh.
func (r *Refresher) Add(name string, check *CachedCheck) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[name] = check
}

// Start begins the periodic refresh loop.
func (r *Refresher) Start() error {
	_, err := r.scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(r.refreshAll),
	)
	if err != nil {
		return err
	}
	r.scheduler.Start()
	log.Infof("health check refresher started, interval %s", r.interval)
	return nil
}

// Stop shuts the scheduler down, waiting for a running round to finish.
func (r *Refresher) Stop() error {
	return r.scheduler.Shutdown()
}

func (r *Refresher) refreshAll() {
	r.mu.Lock()
	targets := make(map[string]*CachedCheck, len(r.targets))
	for name, check := range r.targets {
		targets[name] = check
	}
	r.mu.Unlock()

	for name, check := range targets {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		result := check.Refresh(ctx)
		cancel()
		log.Debugf("refreshed health check %s: %s", name, result.Status)
	}
}
