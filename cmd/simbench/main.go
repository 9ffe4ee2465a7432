// Headless benchmark for the kart simulation: steps a field of karts with
// scripted inputs against the arena geometry and reports throughput. Useful
// for catching physics regressions without opening a window.
package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/local-optimum/kart-world/internal/kart"
	"github.com/local-optimum/kart-world/internal/physics"
	"github.com/local-optimum/kart-world/internal/track"
)

// scriptedInput drives a kart in a lazy weave: full throttle with slowly
// oscillating steering, enough to exercise drifting and wall contacts.
type scriptedInput struct {
	phase float32
	t     float32
}

func (s *scriptedInput) Sample() (kart.Controls, bool) {
	s.t += 1.0 / 60.0
	return kart.Controls{
		Throttle: 1,
		Steering: float32(math.Sin(float64(s.t*0.7 + s.phase))),
	}, true
}

func main() {
	karts := flag.Int("karts", 64, "number of simulated karts")
	frames := flag.Int("frames", 3600, "frames to simulate (at 60fps steps)")
	flag.Parse()

	arena := track.Arena(physics.NewWorld())
	const dt = float32(1.0 / 60.0)

	field := make([]*kart.Kart, *karts)
	for i := range field {
		k := kart.New(i+1, kart.ArcadePhysics(), arena.Spawn, arena.World)
		k.SetInput(&scriptedInput{phase: float32(i) * 0.37})
		field[i] = k
	}

	start := time.Now()
	for frame := 0; frame < *frames; frame++ {
		for _, k := range field {
			k.Update(dt)
		}
	}
	elapsed := time.Since(start)

	steps := *karts * *frames
	fmt.Printf("%d karts x %d frames: %v (%.0f kart-steps/s)\n",
		*karts, *frames, elapsed, float64(steps)/elapsed.Seconds())

	var moving int
	for _, k := range field {
		if k.State.Speed() > 1 {
			moving++
		}
	}
	fmt.Printf("still moving at end: %d/%d\n", moving, *karts)
}
