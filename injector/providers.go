package injector

import (
	"math/rand"
	"time"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-colony/config"
	"github.com/lixenwraith/vi-colony/engine"
	"github.com/lixenwraith/vi-colony/spawn"
	"github.com/lixenwraith/vi-colony/system"
	"github.com/lixenwraith/vi-colony/terrain"
)

// Colony is a fully assembled simulation ready to run
type Colony struct {
	Config     config.Config
	Log        *zap.Logger
	Map        *terrain.Map
	World      *engine.World
	Pipeline   *system.Pipeline
	Scheduler  *engine.ClockScheduler
	Population spawn.Result
}

// ProviderSet builds everything a Colony needs from a config and a logger
var ProviderSet = wire.NewSet(
	ProvideSeed,
	ProvideMap,
	ProvideRand,
	engine.NewResource,
	engine.NewWorld,
	system.Register,
	engine.NewTimeProvider,
	ProvideScheduler,
	ProvidePopulation,
	wire.Bind(new(engine.Terrain), new(*terrain.Map)),
	wire.Bind(new(engine.Clock), new(*engine.TimeProvider)),
	wire.Struct(new(Colony), "*"),
)

// Seed is the resolved world seed; never zero
type Seed int64

// ProvideSeed fixes a random seed when the config leaves it at zero, so map and rng agree
func ProvideSeed(cfg config.Config) Seed {
	if cfg.Map.Seed != 0 {
		return Seed(cfg.Map.Seed)
	}
	return Seed(time.Now().UnixNano())
}

func ProvideMap(cfg config.Config, seed Seed) *terrain.Map {
	return terrain.Generate(terrain.Config{
		Rows:      cfg.Map.Rows,
		Cols:      cfg.Map.Cols,
		WallLevel: cfg.Map.WallLevel,
		GoldCount: cfg.Map.GoldCount,
		GoldSize:  cfg.Map.GoldSize,
		Seed:      int64(seed),
	})
}

func ProvideRand(seed Seed) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// ProvideScheduler takes the pipeline so systems are registered before the scheduler exists
func ProvideScheduler(w *engine.World, clock engine.Clock, cfg config.Config, _ *system.Pipeline) *engine.ClockScheduler {
	return engine.NewClockScheduler(w, clock, cfg.Tick.Interval)
}

func ProvidePopulation(w *engine.World, m *terrain.Map, cfg config.Config) (spawn.Result, error) {
	return spawn.Populate(w, m, cfg.Workers)
}
