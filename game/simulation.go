// Package game runs the habitat simulation: the ECS world, the ordered roster
// of live animals, the hunter, and the per-tick movement, reproduction and
// hunting phases.
package game

import (
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/config"
	"github.com/pthm-cable/habitat/telemetry"
	"github.com/pthm-cable/habitat/traits"
)

// Options configures a Simulation.
type Options struct {
	Config    *config.Config   // nil = config.Default()
	Seed      int64            // RNG seed, used as is
	BoardSize int              // 0 = Config.World.BoardSize
	Sinks     []telemetry.Sink // Event consumers, in order
	OutputDir string           // CSV/JSON output directory (empty = disabled)
	LogStats  bool             // Log per-tick stats via slog
}

// Simulation holds the complete simulation state.
type Simulation struct {
	cfg     *config.Config
	world   *ecs.World
	rng     *rand.Rand
	rngSeed int64

	animalMapper *ecs.Map3[components.Position, components.Mobility, components.Organism]
	hunterMapper *ecs.Map4[components.Position, components.Mobility, components.Organism, components.HunterTag]

	posMap    *ecs.Map1[components.Position]
	mobMap    *ecs.Map1[components.Mobility]
	orgMap    *ecs.Map1[components.Organism]
	hunterTag *ecs.Map[components.HunterTag]

	// roster lists live animals in collection order. The hunter is not on it.
	roster []ecs.Entity
	hunter ecs.Entity

	boardSize     int
	movementCap   int
	totalMovement int
	tick          int32
	nextID        uint32
	populated     bool

	initial map[components.Species]int
	born    map[components.Species]int
	hunted  map[components.Species]int

	// Telemetry
	sink          telemetry.Sink
	collector     *telemetry.Collector
	lifetime      *telemetry.LifetimeTracker
	perf          *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
}

// NewSimulation creates a simulation with an empty roster and the hunter
// placed on a uniformly random cell. Call Populate (or Run) to seed animals.
func NewSimulation(opts Options) (*Simulation, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	size := cfg.World.BoardSize
	if opts.BoardSize > 0 {
		size = opts.BoardSize
	}
	if size <= 0 {
		return nil, fmt.Errorf("board size must be positive, got %d", size)
	}
	if cfg.Hunter.Steps < 1 {
		return nil, fmt.Errorf("hunter steps must be at least 1, got %d", cfg.Hunter.Steps)
	}

	world := ecs.NewWorld()

	s := &Simulation{
		cfg:     cfg,
		world:   world,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		rngSeed: opts.Seed,
		animalMapper: ecs.NewMap3[
			components.Position,
			components.Mobility,
			components.Organism,
		](world),
		hunterMapper: ecs.NewMap4[
			components.Position,
			components.Mobility,
			components.Organism,
			components.HunterTag,
		](world),
		posMap:      ecs.NewMap1[components.Position](world),
		mobMap:      ecs.NewMap1[components.Mobility](world),
		orgMap:      ecs.NewMap1[components.Organism](world),
		hunterTag:   ecs.NewMap[components.HunterTag](world),
		boardSize:   size,
		movementCap: cfg.Movement.Cap,
		nextID:      1,
		initial:     make(map[components.Species]int),
		born:        make(map[components.Species]int),
		hunted:      make(map[components.Species]int),
		collector:   telemetry.NewCollector(),
		lifetime:    telemetry.NewLifetimeTracker(),
		perf:        telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:    opts.LogStats,
	}

	switch len(opts.Sinks) {
	case 0:
	case 1:
		s.sink = opts.Sinks[0]
	default:
		s.sink = telemetry.MultiSink(opts.Sinks)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	s.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}

	s.spawnHunter()
	return s, nil
}

// allocID returns the next entity identifier.
func (s *Simulation) allocID() uint32 {
	id := s.nextID
	s.nextID++
	return id
}

// spawnHunter creates the hunter. Its cell is not checked for availability
// because the board is still empty.
func (s *Simulation) spawnHunter() {
	pos := components.Position{X: s.rng.Intn(s.boardSize), Y: s.rng.Intn(s.boardSize)}
	mob := traits.HunterMobility(s.cfg.Hunter.Steps, s.cfg.Hunter.Reach)
	org := components.Organism{ID: s.allocID(), Species: components.Hunter}
	tag := components.HunterTag{}

	s.hunter = s.hunterMapper.NewEntity(&pos, &mob, &org, &tag)
	s.lifetime.Register(org.ID, s.tick, components.Hunter, 0, 0)
}

// spawnAnimal creates an animal at (x, y) and appends it to the roster.
// Parent IDs are zero for seeded animals.
func (s *Simulation) spawnAnimal(species components.Species, gender components.Gender, x, y int, motherID, fatherID uint32) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	mob := traits.Mobility(species)
	org := components.Organism{ID: s.allocID(), Species: species, Gender: gender}

	entity := s.animalMapper.NewEntity(&pos, &mob, &org)
	s.roster = append(s.roster, entity)
	s.lifetime.Register(org.ID, s.tick, species, motherID, fatherID)
	return entity
}

// removeAnimals drops the given animals from the roster and the world,
// preserving the relative order of the survivors.
func (s *Simulation) removeAnimals(ids map[uint32]bool) {
	if len(ids) == 0 {
		return
	}
	kept := s.roster[:0]
	var dead []ecs.Entity
	for _, e := range s.roster {
		if ids[s.orgMap.Get(e).ID] {
			dead = append(dead, e)
			continue
		}
		kept = append(kept, e)
	}
	s.roster = kept

	for _, e := range dead {
		s.lifetime.Remove(s.orgMap.Get(e).ID)
		s.world.RemoveEntity(e)
	}
}

// actor describes an entity for telemetry events.
func (s *Simulation) actor(e ecs.Entity) telemetry.Actor {
	org := s.orgMap.Get(e)
	return telemetry.Actor{ID: org.ID, Species: org.Species, Pos: *s.posMap.Get(e)}
}

// emit forwards an event to the attached sinks.
func (s *Simulation) emit(e telemetry.Event) {
	if s.sink != nil {
		s.sink.Record(e)
	}
}

// isHunter reports whether e is the hunter.
func (s *Simulation) isHunter(e ecs.Entity) bool {
	return s.hunterTag.Has(e)
}

// BoardSize returns the side length of the square board.
func (s *Simulation) BoardSize() int {
	return s.boardSize
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int32 {
	return s.tick
}

// TotalMovement returns the movement budget consumed so far.
func (s *Simulation) TotalMovement() int {
	return s.totalMovement
}

// MovementCap returns the global movement budget.
func (s *Simulation) MovementCap() int {
	return s.movementCap
}

// Seed returns the RNG seed the simulation was created with.
func (s *Simulation) Seed() int64 {
	return s.rngSeed
}

// AnimalCount returns the number of live animals.
func (s *Simulation) AnimalCount() int {
	return len(s.roster)
}

// Counts returns the live population per species.
func (s *Simulation) Counts() map[components.Species]int {
	counts := make(map[components.Species]int, len(components.AnimalSpecies))
	for _, e := range s.roster {
		counts[s.orgMap.Get(e).Species]++
	}
	return counts
}

// EntityView is a read-only copy of one entity's state, for rendering and inspection.
type EntityView struct {
	Organism components.Organism
	Position components.Position
	Mobility components.Mobility
	Hunter   bool
}

// Entities returns the live animals in collection order followed by the hunter.
func (s *Simulation) Entities() []EntityView {
	views := make([]EntityView, 0, len(s.roster)+1)
	for _, e := range s.roster {
		views = append(views, s.view(e))
	}
	return append(views, s.view(s.hunter))
}

// Hunter returns the hunter's state.
func (s *Simulation) Hunter() EntityView {
	return s.view(s.hunter)
}

func (s *Simulation) view(e ecs.Entity) EntityView {
	return EntityView{
		Organism: *s.orgMap.Get(e),
		Position: *s.posMap.Get(e),
		Mobility: *s.mobMap.Get(e),
		Hunter:   s.isHunter(e),
	}
}

// Lifetime returns the lifetime stats of a live entity, or nil.
func (s *Simulation) Lifetime(id uint32) *telemetry.LifetimeStats {
	return s.lifetime.Get(id)
}
