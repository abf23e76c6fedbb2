package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/moveguider/moveguider/internal/wellness/providers"
)

// Scheduler periodically re-resolves favorite cities so the forecast cache
// stays warm for interactive dashboard requests.
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    *providers.CachingResolver
	cities    []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(cities []string, interval time.Duration, source *providers.CachingResolver) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		source:    source,
		cities:    cities,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.cities) == 0 {
		log.Println("scheduler: no favorite cities configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: refreshing favorite cities")

		var wg sync.WaitGroup
		for _, city := range s.cities {
			city := city
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if _, err := s.source.Refresh(ctx, city); err != nil {
					log.Printf("scheduler: refresh failed for %s: %v", city, err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed refresh")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
