package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/status-im/crypto-insight-hub/cache"
	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/events"
	"github.com/status-im/crypto-insight-hub/metrics"
	"github.com/status-im/crypto-insight-hub/scheduler"
)

// ErrStopped is returned by Submit after the runner has been stopped
var ErrStopped = errors.New("job runner is stopped")

// ErrNotFound is returned for unknown or expired job ids
var ErrNotFound = errors.New("job not found")

// waitPollInterval bounds how long Wait relies on a notification that may have been dropped
const waitPollInterval = time.Second

// Runner executes pipeline actions in the background and keeps their snapshots for a TTL
type Runner struct {
	config        config.JobsConfig
	store         cache.Store
	subscriptions *events.SubscriptionManager
	metricsWriter *metrics.MetricsWriter
	scheduler     *scheduler.Scheduler

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// NewRunner creates a job runner
func NewRunner(cfg config.JobsConfig) *Runner {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Runner{
		config:        cfg,
		store:         cache.NewGoCache(cfg.TTL, cfg.CleanupInterval),
		subscriptions: events.NewSubscriptionManager(),
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceJobs),
		ctx:           ctx,
		cancel:        cancel,
	}
	r.store.OnEvicted(func(id string) {
		log.Printf("Jobs: job %s expired", id)
	})
	r.scheduler = scheduler.New("jobs-store-metrics", cfg.MetricsInterval, func(ctx context.Context) {
		r.store.DeleteExpired()
		r.metricsWriter.RecordCacheSize(r.store.ItemCount())
	})

	return r
}

// Start implements core.Interface
func (r *Runner) Start(ctx context.Context) error {
	r.scheduler.Start(ctx, true)
	return nil
}

// Stop cancels running tasks and waits for them to finish
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
	r.scheduler.Stop()
}

// Submit stores a pending job and runs task on its own goroutine
func (r *Runner) Submit(kind Kind, task Task) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return Job{}, ErrStopped
	}

	job := Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.save(job); err != nil {
		return Job{}, err
	}

	log.Printf("Jobs: submitted %s job %s", kind, job.ID)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(job, task)
	}()

	return job, nil
}

func (r *Runner) run(job Job, task Task) {
	start := time.Now()
	result, taskErr := task(r.ctx)

	finishedAt := time.Now().UTC()
	job.FinishedAt = &finishedAt
	job.Status = StatusSucceeded

	if result != nil {
		encoded, err := json.Marshal(result)
		if err != nil {
			taskErr = errors.Join(taskErr, fmt.Errorf("encoding job result: %w", err))
		} else {
			job.Result = encoded
		}
	}
	if taskErr != nil {
		job.Status = StatusFailed
		job.Error = newJobError(taskErr)
	}

	if err := r.save(job); err != nil {
		log.Printf("Jobs: failed to store job %s: %v", job.ID, err)
	}

	r.metricsWriter.RecordJob(string(job.Kind), string(job.Status))
	log.Printf("Jobs: %s job %s %s in %.2fs", job.Kind, job.ID, job.Status, time.Since(start).Seconds())

	r.subscriptions.Emit(context.Background(), job.ID)
}

func (r *Runner) save(job Job) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encoding job %s: %w", job.ID, err)
	}
	r.store.Set(job.ID, encoded, r.config.TTL)
	return nil
}

// Get returns the latest snapshot of a job
func (r *Runner) Get(id string) (Job, error) {
	encoded, found := r.store.Get(id)
	if !found {
		return Job{}, ErrNotFound
	}

	var job Job
	if err := json.Unmarshal(encoded, &job); err != nil {
		return Job{}, fmt.Errorf("decoding job %s: %w", id, err)
	}
	return job, nil
}

// Subscribe notifies with the id of every job that finishes
func (r *Runner) Subscribe() events.ISubscription {
	return r.subscriptions.Subscribe()
}

// Wait blocks until the job is finished or ctx is done
func (r *Runner) Wait(ctx context.Context, id string) (Job, error) {
	sub := r.Subscribe()
	defer sub.Cancel()

	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()

	for {
		job, err := r.Get(id)
		if err != nil {
			return Job{}, err
		}
		if job.Status.Finished() {
			return job, nil
		}

		select {
		case <-ctx.Done():
			return job, ctx.Err()
		case <-sub.Chan():
		case <-ticker.C:
		}
	}
}

// Size returns the number of stored jobs
func (r *Runner) Size() int {
	return r.store.ItemCount()
}

// Watchers returns how many callers are currently waiting for a job to finish
func (r *Runner) Watchers() int {
	return r.subscriptions.SubscriberCount()
}
