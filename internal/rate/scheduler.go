package rate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultReloadInterval = 6 * time.Hour
	reloadJobName         = "reload-interest-rates"
)

var ErrSchedulerNotRunning = errors.New("scheduler is not running")

// Scheduler periodically reloads the interest rate table. The first load happens
// before Start, so the first scheduled run is one interval away.
type Scheduler struct {
	loader         InterestRateLoader
	reloadInterval time.Duration

	mu    sync.Mutex
	sched gocron.Scheduler
	job   gocron.Job
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job, err := scheduler.NewJob(
		gocron.DurationJob(s.reloadInterval),
		gocron.NewTask(func(jobCtx context.Context) error {
			return ReloadInterestRates(jobCtx, uuid.NewString(), s.loader)
		}),
		gocron.WithName(reloadJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithEventListeners(
			gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, runErr error) {
				logrus.WithError(runErr).WithFields(logrus.Fields{"job": jobName, "jobID": jobID}).
					Error("Interest rates reload failed, previous table keeps serving")
			}),
		),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched, s.job = scheduler, job
	s.mu.Unlock()
	scheduler.Start()

	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

// NextReload reports when the table is reloaded next.
func (s *Scheduler) NextReload() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return time.Time{}, ErrSchedulerNotRunning
	}
	return s.job.NextRun()
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched, s.job = nil, nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(loader InterestRateLoader, reloadInterval time.Duration) *Scheduler {
	if reloadInterval <= 0 {
		reloadInterval = defaultReloadInterval
	}
	return &Scheduler{loader: loader, reloadInterval: reloadInterval}
}
