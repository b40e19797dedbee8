package loop

import (
	"log"
	"sync"
	"time"
)

// Ticker advances a simulation by dt seconds.
type Ticker interface {
	Tick(dt float64)
}

// Runner drives a Ticker at a fixed rate until stopped.
type Runner struct {
	target   Ticker
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once

	// OnTick, when set, runs after every tick with the frame time used.
	OnTick func(dt float64)
}

func NewRunner(target Ticker, tickRate int) *Runner {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Runner{
		target:   target,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks, ticking with the measured wall-clock time between ticks.
func (r *Runner) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", r.tickRate)

	last := time.Now()
	for {
		select {
		case <-r.stopChan:
			log.Println("Simulation loop stopped")
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now
			r.step(dt)
		}
	}
}

// Stop ends Run. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
}

func (r *Runner) step(dt float64) {
	r.target.Tick(dt)
	if r.OnTick != nil {
		r.OnTick(dt)
	}
}
