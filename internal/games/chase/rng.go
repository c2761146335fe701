package chase

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/queenchase/internal/config"
)

// drawer produces the base draw d in [0, GridSize) used to place one row's hazard.
type drawer interface {
	draw(now time.Time) int
}

// seededDrawer draws from one generator owned by the episode.
type seededDrawer struct {
	rng *rand.Rand
}

func (d *seededDrawer) draw(time.Time) int {
	return d.rng.Intn(GridSize)
}

// clockDrawer reseeds from the wall-clock second on every draw, so all rows
// regenerated within the same second share one base value.
type clockDrawer struct{}

func (clockDrawer) draw(now time.Time) int {
	return rand.New(rand.NewSource(now.Unix())).Intn(GridSize)
}

func newDrawer(policy config.RNGPolicy, seed int64) drawer {
	if policy == config.RNGClock {
		return clockDrawer{}
	}
	return &seededDrawer{rng: rand.New(rand.NewSource(seed))}
}
