package utils

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

const ticksFileName = "ticks.csv"

// TickRecord is one row of ticks.csv
type TickRecord struct {
	Tick              int     `csv:"tick"`
	Lions             int     `csv:"lions"`
	Antelopes         int     `csv:"antelopes"`
	Pairs             int     `csv:"pairs"`
	Births            int     `csv:"births"`
	Deaths            int     `csv:"deaths"`
	SpawnFailures     int     `csv:"spawn_failures"`
	AverageLionHealth float64 `csv:"avg_lion_health"`
	LionHealthStdDev  float64 `csv:"lion_health_stddev"`
}

// StatsRecorder appends per-tick records to a CSV file.
// A nil recorder is valid and discards everything.
type StatsRecorder struct {
	file          *os.File
	headerWritten bool
}

// NewStatsRecorder creates dir and opens ticks.csv inside it. Returns nil if dir is empty.
func NewStatsRecorder(dir string) (*StatsRecorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "[NewStatsRecorder] failed to create output dir: %+v", dir)
	}

	path := filepath.Join(dir, ticksFileName)
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewStatsRecorder] failed to create file: %+v", path)
	}

	return &StatsRecorder{file: f}, nil
}

// Record writes the current stats and the per-tick counts of sample as a single row
func (r *StatsRecorder) Record(s *Stats, sample Sample) error {
	if r == nil {
		return nil
	}

	records := []*TickRecord{{
		Tick:              s.TotalTicks,
		Lions:             s.Lions,
		Antelopes:         s.Antelopes,
		Pairs:             s.Pairs,
		Births:            sample.Births,
		Deaths:            sample.Deaths,
		SpawnFailures:     sample.Dropped,
		AverageLionHealth: s.AverageLionHealth,
		LionHealthStdDev:  s.LionHealthStdDev,
	}}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return errors.Wrap(err, "[Record] failed to write tick record")
		}
		r.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return errors.Wrap(err, "[Record] failed to write tick record")
	}
	return nil
}

// Close flushes and closes the underlying file
func (r *StatsRecorder) Close() error {
	if r == nil {
		return nil
	}
	return r.file.Close()
}
