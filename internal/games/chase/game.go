// Package chase implements Queen Chase: guide the King across a 10x10 board
// to the Queen in the far corner while pits open and walls rise around him.
package chase

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/queenchase/internal/config"
	"github.com/vovakirdan/queenchase/internal/core"
	"github.com/vovakirdan/queenchase/internal/registry"
)

// Package-level config selection, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetLogger sets the logger that reports configuration problems.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfigPath sets the config file path used by games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset overrides the configured preset for the "chase" variant.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements registry.Game for Queen Chase.
type Game struct {
	id    string
	title string
	hard  bool // forces the hard preset regardless of configuration

	cfg    config.ChaseConfig
	loaded bool

	runtime  core.RuntimeConfig
	episode  int64
	st       *SimulationState
	sched    *Scheduler
	lastTime time.Time
	paused   bool
}

// New creates the configurable variant.
func New() *Game {
	return &Game{id: "chase", title: "Queen Chase"}
}

// NewHard creates the variant that raises a wall candidate in every row.
func NewHard() *Game {
	return &Game{id: "chase_hard", title: "Queen Chase (Hard)", hard: true}
}

// NewWithConfig creates the configurable variant with an explicit
// configuration instead of loading one from disk.
func NewWithConfig(cfg config.ChaseConfig) *Game {
	g := New()
	g.cfg = cfg
	g.loaded = true
	return g
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
	registry.Register("chase_hard", func() registry.Game {
		return NewHard()
	})
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.ChaseConfig {
	g.loadConfig()
	return g.cfg
}

func (g *Game) loadConfig() {
	if !g.loaded {
		cfg, err := config.LoadChase(configPath)
		if err != nil {
			logger.Warn("using built-in config", "path", configPath, "err", err)
			cfg = config.DefaultChaseConfig()
		}
		config.ApplyChasePreset(&cfg, difficultyPreset)
		g.cfg = cfg
		g.loaded = true
	}
	if g.hard {
		config.ApplyChasePreset(&g.cfg, config.DifficultyHard)
	}
}

// Describe summarizes the wall layout the variant runs with.
func (g *Game) Describe() string {
	g.loadConfig()
	switch s := g.cfg.Hazards.WallStride; s {
	case 1:
		return "walls rise in every row"
	case 2:
		return "walls rise in every other row"
	default:
		return fmt.Sprintf("walls rise in one row out of %d", s)
	}
}

// Reset starts a new episode.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.runtime = cfg
	g.episode = 0
	g.start()
}

func (g *Game) start() {
	seed := g.runtime.Seed + g.episode
	g.st = NewSimulationState()
	g.sched = NewScheduler(g.cfg.Hazards.WallStride, newDrawer(g.cfg.Hazards.RNG, seed))
	g.lastTime = time.Time{}
	g.paused = false
}

// Step advances the simulation by one tick.
// Order: key events, clock, hazard scheduler, player controller, collision
// resolver, sinking, goal check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.st == nil {
		g.Reset(core.DefaultConfig())
	}

	var events []core.Event
	for _, ev := range in.Events() {
		switch ev.Action {
		case core.ActionPause:
			if ev.Pressed {
				g.paused = !g.paused
			}
			continue
		case core.ActionNewGame:
			if ev.Pressed {
				g.episode++
				g.start()
				events = nil
			}
			continue
		case core.ActionQuit:
			continue
		}
		// Releases still go through while paused so no direction stays stuck.
		if g.paused && ev.Pressed {
			continue
		}
		events = append(events, ApplyKey(g.st, ev)...)
	}

	elapsed := g.advanceClock(in.Time)
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	st := g.st
	st.Tick++
	st.Clock += elapsed

	events = append(events, g.sched.Tick(st, in.Time)...)
	Integrate(&st.Player, &st.Intent)
	events = append(events, Resolve(st)...)
	Sink(&st.Player)
	events = append(events, CheckGoal(st)...)

	if st.Rotating {
		st.GoalSpin = math.Mod(st.GoalSpin+GoalSpin, 360)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// advanceClock returns the wall-clock time since the previous tick.
// Frames without a timestamp contribute no time.
func (g *Game) advanceClock(now time.Time) time.Duration {
	if now.IsZero() {
		return 0
	}
	var elapsed time.Duration
	if !g.lastTime.IsZero() && now.After(g.lastTime) {
		elapsed = now.Sub(g.lastTime)
	}
	g.lastTime = now
	return elapsed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.st == nil {
		return core.GameState{}
	}
	return core.GameState{
		Won:    g.st.Outcome == Won,
		Down:   g.st.Player.State == Falling,
		Paused: g.paused,
	}
}

// Frame returns the presentation view of the current tick.
func (g *Game) Frame() Frame {
	if g.st == nil {
		g.Reset(core.DefaultConfig())
	}
	return BuildFrame(g.st, g.sched.Stride(), g.paused)
}
