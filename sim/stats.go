package sim

import (
	"math"

	"github.com/automoto/brownian/components"
	"github.com/yohamta/donburi"
)

// Stats summarizes the swarm for logging.
type Stats struct {
	Bodies    int
	Visible   int
	MeanSpeed float64
	MaxSpeed  float64
}

// Stats walks every body once.
func (s *Simulation) Stats() Stats {
	var st Stats
	var total float64
	components.Transform.Each(s.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		speed := math.Hypot(tr.Velocity.X, tr.Velocity.Y)
		total += speed
		st.MaxSpeed = math.Max(st.MaxSpeed, speed)
		st.Bodies++
		if tr.Visible {
			st.Visible++
		}
	})
	if st.Bodies > 0 {
		st.MeanSpeed = total / float64(st.Bodies)
	}
	return st
}
