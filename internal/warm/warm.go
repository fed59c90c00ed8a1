// Package warm keeps the observation cache fresh for a configured set of
// cities and sweeps expired entries on the same schedule.
package warm

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/weathersay/weathersay"
)

// Warmer periodically pre-fetches descriptions for configured cities.
type Warmer struct {
	scheduler *gocron.Scheduler
	describer *weathersay.Describer
	cities    []string
	interval  time.Duration
}

// New creates a Warmer.
func New(cities []string, interval time.Duration, describer *weathersay.Describer) *Warmer {
	return &Warmer{
		scheduler: gocron.NewScheduler(time.UTC),
		describer: describer,
		cities:    cities,
		interval:  interval,
	}
}

const defaultInterval = 15 * time.Minute

// scheduleSeconds converts the configured interval to whole seconds for the
// scheduler. Non-positive intervals fall back to the default.
func scheduleSeconds(interval time.Duration) int {
	secs := int(interval.Seconds())
	if secs <= 0 {
		return int(defaultInterval.Seconds())
	}
	return secs
}

// Start schedules the periodic job and starts the underlying scheduler. With
// no cities configured only the cache sweep runs.
func (w *Warmer) Start() error {
	secs := scheduleSeconds(w.interval)
	if time.Duration(secs)*time.Second != w.interval {
		log.Printf("warm: interval %v not usable, running every %v", w.interval, time.Duration(secs)*time.Second)
	}

	_, err := w.scheduler.Every(secs).Seconds().Do(func() {
		if removed := w.describer.SweepCache(); removed > 0 {
			log.Printf("warm: swept %d expired cache entries", removed)
		}

		var wg sync.WaitGroup
		for _, city := range w.cities {
			city := city
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if _, err := w.describer.ByCity(ctx, city, nil); err != nil {
					log.Printf("warm: fetch failed for %s: %v", city, err)
				}
			}()
		}
		wg.Wait()
	})
	if err != nil {
		return err
	}

	w.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (w *Warmer) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}
