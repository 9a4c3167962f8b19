package model

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sheikhrachel/go-savanna/rules"
	"github.com/sheikhrachel/go-savanna/utils"
)

const testSeed = 42

func testConfig(rows, columns int) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Rows = rows
	cfg.Columns = columns
	cfg.Seed = testSeed
	cfg.TickInterval = 0
	return cfg
}

func mustPlace(t *testing.T, s *Savanna, species Species, row, col int) *Animal {
	t.Helper()
	a, err := s.Place(species, row, col)
	if err != nil {
		t.Fatalf("Place(%s, %d, %d) error = %v", species, row, col, err)
	}
	return a
}

// assertInvariants checks bounds, exclusive occupancy and pair symmetry
func assertInvariants(t *testing.T, s *Savanna) {
	t.Helper()

	occupied := make(map[Position]*Animal)
	paired := 0
	for _, a := range s.Animals() {
		if !s.dims.IsOnBoard(a.Row, a.Col) {
			t.Fatalf("%s %d off the board at %v", a.Species, a.ID, a.Position())
		}
		if !a.Alive {
			continue
		}
		if other, ok := occupied[a.Position()]; ok {
			t.Fatalf("%s %d and %s %d share cell %v", a.Species, a.ID, other.Species, other.ID, a.Position())
		}
		occupied[a.Position()] = a
		if a.HasAPair {
			paired++
		}
	}

	for _, p := range s.Pairs() {
		if !p.First.HasAPair || !p.Second.HasAPair {
			t.Fatalf("pair %d/%d has an unflagged partner", p.First.ID, p.Second.ID)
		}
		if p.First.Species != p.Second.Species {
			t.Fatalf("pair %d/%d mixes species", p.First.ID, p.Second.ID)
		}
	}
	if paired != 2*len(s.Pairs()) {
		t.Fatalf("%d animals flagged as paired, want %d", paired, 2*len(s.Pairs()))
	}
}

func TestNewSavannaInitialPopulation(t *testing.T) {
	cfg := testConfig(20, 30)
	cfg.InitialLions = 3
	cfg.InitialAntelopes = 10

	s := NewSavanna(cfg)
	census := s.Census()
	if census.Lions+census.Antelopes == 0 || census.Lions > 3 || census.Antelopes > 10 {
		t.Errorf("census = %d lions, %d antelopes", census.Lions, census.Antelopes)
	}
	if s.Seed() != testSeed {
		t.Errorf("Seed() = %d, want %d", s.Seed(), testSeed)
	}
	for _, a := range s.Animals() {
		if a.Vision != cfg.Vision || !a.Alive || a.HasAPair {
			t.Errorf("unexpected fresh animal %+v", a)
		}
	}
	assertInvariants(t, s)
}

func TestSpawnDropsOnTakenCell(t *testing.T) {
	s := NewSavanna(testConfig(1, 1))

	if _, ok := s.Spawn(Lion); !ok {
		t.Fatal("first spawn on an empty 1x1 board should succeed")
	}
	if a, ok := s.Spawn(Antelope); ok || a != nil {
		t.Fatal("second spawn should be dropped")
	}
	if len(s.Animals()) != 1 {
		t.Errorf("population = %d, want 1", len(s.Animals()))
	}
}

func TestPlace(t *testing.T) {
	s := NewSavanna(testConfig(3, 3))
	lion := mustPlace(t, s, Lion, 1, 1)

	if lion.Health != 100 || lion.Symbol() != SymbolLion {
		t.Errorf("unexpected lion %+v", lion)
	}
	if _, err := s.Place(Antelope, 1, 1); err == nil {
		t.Error("placing on a taken cell should fail")
	}
	if _, err := s.Place(Antelope, 3, 0); err == nil {
		t.Error("placing off the board should fail")
	}
}

func TestAnimalsInRange(t *testing.T) {
	s := NewSavanna(testConfig(10, 10))
	lion := mustPlace(t, s, Lion, 5, 5)
	near := mustPlace(t, s, Antelope, 3, 7)
	mustPlace(t, s, Antelope, 5, 8)
	mustPlace(t, s, Lion, 5, 6)
	dead := mustPlace(t, s, Antelope, 6, 6)
	dead.Alive = false

	got := AnimalsInRange(lion, Antelope, s.Animals())
	if len(got) != 1 || got[0] != near {
		t.Errorf("AnimalsInRange() = %v, want only the antelope at (3,7)", got)
	}
}

// Board 5x5, vision 2: the lion at (2,2) sees the antelope at (2,4) and steps to (2,3)
func TestLionPursuit(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	lion := mustPlace(t, s, Lion, 2, 2)
	antelope := mustPlace(t, s, Antelope, 2, 4)

	inRange := AnimalsInRange(lion, Antelope, s.Animals())
	if target := nearest(lion, inRange); target != antelope {
		t.Fatalf("nearest antelope = %v, want %v", target, antelope)
	}
	if d := rules.SquaredDistance(lion.Position(), antelope.Position()); d != 4 {
		t.Fatalf("squared distance = %d, want 4", d)
	}

	if killed := s.moveAnimal(lion); killed != nil {
		t.Fatalf("unexpected kill of %v", killed)
	}

	if lion.Position() != (Position{Row: 2, Col: 3}) {
		t.Errorf("lion at %v, want (2,3)", lion.Position())
	}
	if antelope.Health != 80 || !antelope.Alive {
		t.Errorf("antelope health = %v alive = %v, want 80 true", antelope.Health, antelope.Alive)
	}
	if lion.Health != 100 {
		t.Errorf("lion health = %v, want capped at 100", lion.Health)
	}
}

func TestLionWandersWithoutPrey(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	lion := mustPlace(t, s, Lion, 2, 2)

	s.moveAnimal(lion)

	if !rules.Adjacent(lion.Position(), Position{Row: 2, Col: 2}) {
		t.Errorf("lion jumped to %v", lion.Position())
	}
	if math.Abs(lion.Health-99.5) > 1e-9 {
		t.Errorf("lion health = %v, want 99.5", lion.Health)
	}
}

func TestAntelopeFlees(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	mustPlace(t, s, Lion, 2, 4)
	antelope := mustPlace(t, s, Antelope, 2, 2)

	s.moveAnimal(antelope)

	if antelope.Position() != (Position{Row: 1, Col: 1}) {
		t.Errorf("antelope at %v, want (1,1)", antelope.Position())
	}
}

func TestAntelopeRandomMoveIsSeeded(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	antelope := mustPlace(t, s, Antelope, 0, 0)

	candidates := FreeCellsAround(s.dims, antelope, s.Animals())
	expected := candidates[rand.New(rand.NewSource(testSeed)).Intn(len(candidates))]

	s.moveAnimal(antelope)

	if antelope.Position() != expected {
		t.Errorf("antelope at %v, want seeded draw %v", antelope.Position(), expected)
	}
	if !s.dims.IsOnBoard(antelope.Row, antelope.Col) {
		t.Errorf("antelope left the board: %v", antelope.Position())
	}
}

// Feeding an antelope down to 0 removes it on purge and restores the lion
func TestLionKillsAndEats(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	lion := mustPlace(t, s, Lion, 2, 2)
	lion.Health = 50
	antelope := mustPlace(t, s, Antelope, 2, 3)
	antelope.Health = 20

	report, err := s.Step(nil)
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	if report.Kills != 1 || report.Deaths != 1 {
		t.Errorf("report = %+v, want one kill and one death", report)
	}
	if antelope.Alive {
		t.Error("antelope should be dead")
	}
	if len(s.Animals()) != 1 || s.Animals()[0] != lion {
		t.Errorf("population = %v, want only the lion", s.Animals())
	}
	if lion.Health != s.cfg.LionMaxHealth {
		t.Errorf("lion health = %v, want %v", lion.Health, s.cfg.LionMaxHealth)
	}
	if lion.Position() != (Position{Row: 2, Col: 3}) {
		t.Errorf("lion at %v, want the antelope's cell (2,3)", lion.Position())
	}
}

func TestLionStarves(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	lion := mustPlace(t, s, Lion, 2, 2)
	lion.Health = 0.5

	report, err := s.Step(nil)
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if lion.Alive || report.Deaths != 1 || len(s.Animals()) != 0 {
		t.Errorf("lion alive = %v, report = %+v, population = %d", lion.Alive, report, len(s.Animals()))
	}
}

func TestGiveBirth(t *testing.T) {
	s := NewSavanna(testConfig(3, 3))
	lion := mustPlace(t, s, Lion, 1, 1)

	child := s.GiveBirth(lion)
	if child == nil {
		t.Fatal("expected a cub")
	}
	if child.Species != Lion || child.Position() != (Position{Row: 0, Col: 0}) {
		t.Errorf("child = %+v, want lion at (0,0)", child)
	}
	if child.Health != s.cfg.LionMaxHealth || !child.Alive || child.HasAPair {
		t.Errorf("child not initialized with defaults: %+v", child)
	}

	boxed := NewSavanna(testConfig(1, 1))
	if c := boxed.GiveBirth(mustPlace(t, boxed, Antelope, 0, 0)); c != nil {
		t.Errorf("GiveBirth() = %+v, want nil with no free cell", c)
	}
}

func TestApply(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))

	if s.Apply(CommandNone) || len(s.Animals()) != 0 {
		t.Error("CommandNone should do nothing")
	}
	if s.Apply(CommandAddAntelope) || len(s.Animals()) != 1 || s.Animals()[0].Species != Antelope {
		t.Error("CommandAddAntelope should add an antelope")
	}
	if s.Apply(CommandAddLion) {
		t.Error("CommandAddLion should not stop the simulation")
	}
	if !s.Apply(CommandQuit) {
		t.Error("CommandQuit should stop the simulation")
	}
}

func TestStepKeepsInvariants(t *testing.T) {
	cfg := testConfig(20, 30)
	cfg.InitialLions = 6
	cfg.InitialAntelopes = 40
	s := NewSavanna(cfg)
	assertInvariants(t, s)

	for range 200 {
		if _, err := s.Step(nil); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
		assertInvariants(t, s)
	}
}

func TestStepExhaustivePairingKeepsInvariants(t *testing.T) {
	cfg := testConfig(10, 10)
	cfg.InitialLions = 4
	cfg.InitialAntelopes = 30
	cfg.StrictPairingScan = false
	s := NewSavanna(cfg)

	for range 100 {
		if _, err := s.Step(nil); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
		assertInvariants(t, s)
	}
}

func TestCensusAndHUD(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	mustPlace(t, s, Antelope, 4, 4)
	mustPlace(t, s, Antelope, 4, 3)
	mustPlace(t, s, Lion, 0, 0).Health = 60
	mustPlace(t, s, Lion, 0, 4).Health = 90
	s.CreatePairs()

	c := s.Census()
	if c.Lions != 2 || c.Antelopes != 2 || c.Pairs != 1 || len(c.LionHealth) != 2 {
		t.Errorf("Census() = %+v", c)
	}
	hud := s.HUD()
	if hud.AverageLionHealth != 75 {
		t.Errorf("AverageLionHealth = %v, want 75", hud.AverageLionHealth)
	}
	if hud.String() != "Tick: 0 | Lions: 2 | Antelopes: 2 | Pairs: 1 | Avg lion health: 75.0" {
		t.Errorf("HUD = %q", hud.String())
	}

	empty := NewSavanna(testConfig(5, 5)).HUD()
	if empty.AverageLionHealth != 0 {
		t.Errorf("AverageLionHealth with no lions = %v, want 0", empty.AverageLionHealth)
	}
}

func TestStepReportsSpawnFailures(t *testing.T) {
	s := NewSavanna(testConfig(1, 1))
	mustPlace(t, s, Antelope, 0, 0)

	if s.Apply(CommandAddLion) {
		t.Fatal("CommandAddLion should not stop the simulation")
	}
	s.Apply(CommandAddAntelope)
	if len(s.Animals()) != 1 {
		t.Fatalf("population = %d, want 1 on a full board", len(s.Animals()))
	}

	report, err := s.Step(nil)
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if report.SpawnFailures != 2 {
		t.Errorf("SpawnFailures = %d, want 2", report.SpawnFailures)
	}

	report, err = s.Step(nil)
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if report.SpawnFailures != 0 {
		t.Errorf("SpawnFailures on the next tick = %d, want 0", report.SpawnFailures)
	}
}

func TestStepFailsWhenAnimalLeavesTheBoard(t *testing.T) {
	s := NewSavanna(testConfig(5, 5))
	a := mustPlace(t, s, Antelope, 2, 2)
	a.Row = 7

	_, err := s.Step(nil)
	if err == nil {
		t.Fatal("Step() error = nil, want an off-board error")
	}
	want := "[Step] antelope 1 left the board at (7,2) on tick 1"
	if err.Error() != want {
		t.Errorf("Step() error = %q, want %q", err.Error(), want)
	}
}
