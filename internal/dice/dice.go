package dice

import (
	"math/rand/v2"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/greed/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a face between 1 and sides
	Roll(sides int) int
}

// RandomRoller rolls dice from a seeded pseudo-random source
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	u := uint64(seed)
	return &RandomRoller{
		random: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64))),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.IntN(sides) + 1
}

// RollN rolls count dice with the given number of sides
func RollN(roller Roller, count, sides int) []int {
	faces := make([]int, count)
	for i := range faces {
		faces[i] = roller.Roll(sides)
	}
	return faces
}

// mix spreads a 64-bit seed across the PCG state (splitmix64 finalizer)
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
