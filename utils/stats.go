package utils

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stats for population monitoring
type Stats struct {
	TotalTicks        int
	Lions             int
	Antelopes         int
	Pairs             int
	AverageLionHealth float64
	LionHealthStdDev  float64
	AveragePopulation float64
	TotalBirths       int
	TotalDeaths       int
	SpawnFailures     int
	StartTime         time.Time
}

// Sample is the census of one tick
type Sample struct {
	Tick       int
	Lions      int
	Antelopes  int
	Pairs      int
	Births     int
	Deaths     int
	Dropped    int
	LionHealth []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(sample Sample) {
	s.TotalTicks = sample.Tick
	s.Lions = sample.Lions
	s.Antelopes = sample.Antelopes
	s.Pairs = sample.Pairs
	s.TotalBirths += sample.Births
	s.TotalDeaths += sample.Deaths
	s.SpawnFailures += sample.Dropped

	switch n := len(sample.LionHealth); {
	case n == 0:
		s.AverageLionHealth, s.LionHealthStdDev = 0, 0
	case n == 1:
		// Sample stddev is undefined for a single lion
		s.AverageLionHealth, s.LionHealthStdDev = sample.LionHealth[0], 0
	default:
		s.AverageLionHealth, s.LionHealthStdDev = stat.MeanStdDev(sample.LionHealth, nil)
	}

	// Simple moving average for population
	population := float64(sample.Lions + sample.Antelopes)
	if s.AveragePopulation == 0 {
		s.AveragePopulation = population
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (population * 0.1)
	}
}
