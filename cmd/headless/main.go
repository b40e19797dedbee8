// Command headless runs the swarm without a window and logs periodic statistics.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/loop"
	"github.com/automoto/brownian/sim"
)

func main() {
	tickRate := flag.Int("tickrate", cfg.Loop.TickRate, "Simulation ticks per second")
	seed := flag.Uint64("seed", cfg.Loop.Seed, "Random seed for the swarm")
	report := flag.Int("report", 60, "Log statistics every N ticks (0 = never)")
	flag.Parse()

	simulation, err := sim.New(*seed)
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}

	runner := loop.NewRunner(simulation, *tickRate)
	if *report > 0 {
		every := uint64(*report)
		runner.OnTick = func(dt float64) {
			if simulation.Frames()%every != 0 {
				return
			}
			st := simulation.Stats()
			camera, _ := simulation.Camera()
			log.Printf("frame %d: %d bodies, %d visible, mean speed %.1f, max speed %.1f, zoom %.2f",
				simulation.Frames(), st.Bodies, st.Visible, st.MeanSpeed, st.MaxSpeed, camera.Scale)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		runner.Stop()
	}()

	log.Printf("Starting headless swarm (seed %d, %d bodies, tick rate %d/s)", *seed, cfg.Swarm.Count, *tickRate)
	runner.Run()
}
