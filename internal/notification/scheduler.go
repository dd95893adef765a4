package notification

import (
	"fmt"
	"time"
	
	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs fn once after delay.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) error
}

// CronScheduler schedules expiry as gocron one-time jobs.
type CronScheduler struct {
	scheduler gocron.Scheduler
}

func NewCronScheduler() (*CronScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	
	return &CronScheduler{scheduler: scheduler}, nil
}

// Start begins running scheduled jobs.
func (s *CronScheduler) Start() {
	s.scheduler.Start()
}

// AfterFunc registers a job that runs fn once, delay from now.
// The job is removed from the scheduler after its run.
func (s *CronScheduler) AfterFunc(delay time.Duration, fn func()) error {
	_, err := s.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(delay))),
		gocron.NewTask(fn),
		gocron.WithLimitedRuns(1),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule job: %w", err)
	}
	
	return nil
}

// Pending returns the number of jobs still held by the scheduler.
func (s *CronScheduler) Pending() int {
	return len(s.scheduler.Jobs())
}

// Shutdown stops the scheduler; pending jobs are discarded.
func (s *CronScheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}
