package jobs

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	cron "github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

type Job interface {
	Run()
}

// CronJob is a job with a cron schedule expression.
type CronJob interface {
	Schedule() string
	Job
}

// Runner drives the background jobs on a shared cron. A job still running
// when its schedule fires again is skipped for that tick.
type Runner struct {
	cron    *cron.Cron
	jobs    []CronJob
	running mapset.Set[CronJob]
	mu      sync.Mutex
}

func NewRunner(jobs ...CronJob) *Runner {
	return &Runner{
		cron:    cron.New(),
		jobs:    jobs,
		running: mapset.NewSet[CronJob](),
	}
}

// Start registers the jobs and starts the cron. Each job runs in its own
// goroutine inside the cron.
func (r *Runner) Start() {
	for _, job := range r.jobs {
		err := r.cron.AddFunc(job.Schedule(), func() {
			r.mu.Lock()
			if r.running.Contains(job) {
				r.mu.Unlock()
				logrus.Warn("job is still running, skipping this tick")
				return
			}
			r.running.Add(job)
			r.mu.Unlock()

			defer func() {
				r.mu.Lock()
				defer r.mu.Unlock()
				r.running.Remove(job)
			}()

			job.Run()
		})

		if err != nil {
			logrus.Errorf("failed to register job with cron: %v", err)
			panic(err)
		}
	}

	r.cron.Start()
}

func (r *Runner) Stop() {
	logrus.Info("stopping background jobs")
	r.cron.Stop()
}
