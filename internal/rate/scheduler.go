package rate

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultWarmInterval = 30 * time.Minute

// Scheduler periodically warms the rate cache. Freshness is still decided by the
// cache TTL; the job only moves the fetch off the request path.
type Scheduler struct {
	rates        RateSource
	warmInterval time.Duration
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		snap := s.rates.GetRates(jobCtx)
		logrus.WithFields(logrus.Fields{
			"exec_id":    execID,
			"fallback":   snap.Fallback,
			"fetched_at": snap.FetchedAt,
			"currencies": len(snap.Rates),
		}).Debug("Rate cache warm-up finished")
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.warmInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		s.sched = nil
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(rates RateSource, warmInterval time.Duration) *Scheduler {
	if warmInterval <= 0 {
		warmInterval = defaultWarmInterval
	}
	return &Scheduler{rates: rates, warmInterval: warmInterval}
}
