package model

import (
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/sheikhrachel/go-savanna/utils"
)

// TickReport summarizes what happened during one tick.
// SpawnFailures counts spawns dropped since the previous report, including commands applied
// between ticks.
type TickReport struct {
	Tick          int
	PairsFormed   int
	Dissolved     int
	Births        int
	Kills         int
	Deaths        int
	SpawnFailures int
}

// Savanna owns the population, the active pairs and the random source
type Savanna struct {
	cfg     utils.Config
	dims    Dimensions
	rng     *rand.Rand
	seed    int64
	animals []*Animal
	pairs   []*Pair
	pool    *BoardPool
	tick    int
	nextID  int
	dropped int
}

// NewSavanna creates a savanna and seeds the initial population from the config
func NewSavanna(cfg utils.Config) *Savanna {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Savanna{
		cfg:  cfg,
		dims: Dimensions{Rows: cfg.Rows, Columns: cfg.Columns},
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
		pool: NewBoardPool(),
	}

	for range cfg.InitialLions {
		s.Spawn(Lion)
	}
	for range cfg.InitialAntelopes {
		s.Spawn(Antelope)
	}

	return s
}

// Seed returns the seed of the random source
func (s *Savanna) Seed() int64 {
	return s.seed
}

// Tick returns the number of completed ticks
func (s *Savanna) Tick() int {
	return s.tick
}

// Dimensions returns the board bounds
func (s *Savanna) Dimensions() Dimensions {
	return s.dims
}

// Animals returns the population in creation order
func (s *Savanna) Animals() []*Animal {
	return s.animals
}

// Pairs returns the active pairs
func (s *Savanna) Pairs() []*Pair {
	return s.pairs
}

func (s *Savanna) newAnimal(species Species) *Animal {
	s.nextID++
	health := s.cfg.AntelopeMaxHealth
	if species == Lion {
		health = s.cfg.LionMaxHealth
	}
	return &Animal{
		ID:      s.nextID,
		Species: species,
		Vision:  s.cfg.Vision,
		Health:  health,
		Alive:   true,
	}
}

/*
Spawn adds an animal of the given species on a random cell.

When the drawn cell is already taken the animal is dropped without retrying.
*/
func (s *Savanna) Spawn(species Species) (*Animal, bool) {
	row := s.rng.Intn(s.dims.Rows)
	col := s.rng.Intn(s.dims.Columns)

	if IsCellReserved(row, col, s.animals) {
		s.dropped++
		slog.Debug("spawn dropped, cell taken", "species", species, "row", row, "col", col)
		return nil, false
	}

	a := s.newAnimal(species)
	a.MoveTo(Position{Row: row, Col: col})
	s.animals = append(s.animals, a)
	return a, true
}

// Place adds an animal of the given species on a chosen cell
func (s *Savanna) Place(species Species, row, col int) (*Animal, error) {
	if !s.dims.IsOnBoard(row, col) {
		return nil, errors.Errorf("[Place] cell (%d,%d) is off the %dx%d board", row, col, s.dims.Columns, s.dims.Rows)
	}
	if IsCellReserved(row, col, s.animals) {
		return nil, errors.Errorf("[Place] cell (%d,%d) is already taken", row, col)
	}

	a := s.newAnimal(species)
	a.MoveTo(Position{Row: row, Col: col})
	s.animals = append(s.animals, a)
	return a, nil
}

// GiveBirth creates a child of the parent's species on the first free neighbor of the parent.
// Returns nil when the parent is boxed in.
func (s *Savanna) GiveBirth(parent *Animal) *Animal {
	cell, ok := FirstFreeCellAround(s.dims, parent, s.animals)
	if !ok {
		return nil
	}

	child := s.newAnimal(parent.Species)
	child.MoveTo(cell)
	return child
}

// moveAnimal applies one species-specific action and returns the prey killed, if any
func (s *Savanna) moveAnimal(a *Animal) *Animal {
	switch a.Species {
	case Lion:
		return s.moveLion(a)
	case Antelope:
		s.moveAntelope(a)
	}
	return nil
}

func (s *Savanna) randomMove(a *Animal, candidates []Position) {
	a.MoveTo(candidates[s.rng.Intn(len(candidates))])
}

// Project writes every living animal onto the board
func (s *Savanna) Project(b *Board) {
	for _, a := range s.animals {
		if a.Alive {
			b.Set(a.Row, a.Col, a.Symbol())
		}
	}
}

// render projects the population on a pooled board and hands it to r
func (s *Savanna) render(r Renderer) {
	board := s.pool.Get(s.dims.Rows, s.dims.Columns)
	defer s.pool.Put(board)

	s.Project(board)
	r.Display(board, s.HUD())
}

/*
Step runs one tick: render the current positions, update pairs, move every living animal and purge
the dead.

An animal leaving the board is a broken invariant and aborts the tick with an error.
*/
func (s *Savanna) Step(r Renderer) (TickReport, error) {
	s.tick++
	report := TickReport{Tick: s.tick, SpawnFailures: s.dropped}
	s.dropped = 0

	if r != nil {
		s.render(r)
	}

	report.PairsFormed = s.CreatePairs()
	report.Births, report.Dissolved = s.CheckPairs()

	for _, a := range s.animals {
		if !a.Alive {
			continue
		}

		if prey := s.moveAnimal(a); prey != nil {
			report.Kills++
		}
		if a.Health <= 0 {
			a.Alive = false
		}

		if !s.dims.IsOnBoard(a.Row, a.Col) {
			return report, errors.Errorf("[Step] %s %d left the board at (%d,%d) on tick %d",
				a.Species, a.ID, a.Row, a.Col, s.tick)
		}
	}

	deaths, dissolved := s.purgeDead()
	report.Deaths = deaths
	report.Dissolved += dissolved

	return report, nil
}

// purgeDead removes dead animals and the pairs they belonged to
func (s *Savanna) purgeDead() (deaths, dissolved int) {
	before := len(s.animals)
	s.animals = slices.DeleteFunc(s.animals, func(a *Animal) bool { return !a.Alive })

	s.pairs = slices.DeleteFunc(s.pairs, func(p *Pair) bool {
		if p.First.Alive && p.Second.Alive {
			return false
		}
		p.Dissolve()
		dissolved++
		return true
	})

	return before - len(s.animals), dissolved
}

/*
Apply executes a command read from the input source.

Returns true when the simulation should stop.
*/
func (s *Savanna) Apply(cmd Command) bool {
	switch cmd {
	case CommandAddLion:
		s.spawnOnCommand(Lion)
	case CommandAddAntelope:
		s.spawnOnCommand(Antelope)
	case CommandQuit:
		return true
	}
	return false
}

func (s *Savanna) spawnOnCommand(species Species) {
	a, ok := s.Spawn(species)
	if !ok {
		slog.Info("spawn failed, cell taken", "species", species, "tick", s.tick)
		return
	}
	slog.Info("animal added", "species", species, "id", a.ID, "row", a.Row, "col", a.Col)
}

// Census counts the living population
func (s *Savanna) Census() utils.Sample {
	sample := utils.Sample{Tick: s.tick, Pairs: len(s.pairs)}
	for _, a := range s.animals {
		if !a.Alive {
			continue
		}
		switch a.Species {
		case Lion:
			sample.Lions++
			sample.LionHealth = append(sample.LionHealth, a.Health)
		case Antelope:
			sample.Antelopes++
		}
	}
	return sample
}

// HUD returns the status line values for the renderer
func (s *Savanna) HUD() HUD {
	c := s.Census()
	hud := HUD{Tick: s.tick, Lions: c.Lions, Antelopes: c.Antelopes, Pairs: c.Pairs}
	if len(c.LionHealth) > 0 {
		hud.AverageLionHealth = stat.Mean(c.LionHealth, nil)
	}
	return hud
}
