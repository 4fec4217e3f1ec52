package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/outpost/config"
)

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir           string
	energyFile    *os.File
	materialsFile *os.File
	statsFile     *os.File

	// Track if headers have been written
	energyHeaderWritten    bool
	materialsHeaderWritten bool
	statsHeaderWritten     bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "energy.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating energy.csv: %w", err)
	}
	om.energyFile = f

	f, err = os.Create(filepath.Join(dir, "materials.csv"))
	if err != nil {
		om.energyFile.Close()
		return nil, fmt.Errorf("creating materials.csv: %w", err)
	}
	om.materialsFile = f

	f, err = os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		om.energyFile.Close()
		om.materialsFile.Close()
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEnergy appends one tick record to energy.csv.
func (om *OutputManager) WriteEnergy(rec TickRecord) error {
	if om == nil {
		return nil
	}

	records := []TickRecord{rec}
	if !om.energyHeaderWritten {
		if err := gocsv.Marshal(records, om.energyFile); err != nil {
			return fmt.Errorf("writing energy: %w", err)
		}
		om.energyHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.energyFile); err != nil {
		return fmt.Errorf("writing energy: %w", err)
	}
	return nil
}

// WriteMaterials appends one tick's account records to materials.csv.
func (om *OutputManager) WriteMaterials(records []MaterialRecord) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.materialsHeaderWritten {
		if err := gocsv.Marshal(records, om.materialsFile); err != nil {
			return fmt.Errorf("writing materials: %w", err)
		}
		om.materialsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.materialsFile); err != nil {
		return fmt.Errorf("writing materials: %w", err)
	}
	return nil
}

// WriteStats appends one window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.energyFile, om.materialsFile, om.statsFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
