package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/icesim/internal/icesheet"
)

// Store persists finished runs under a base directory, one directory
// per run holding metadata.json and series.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Curve      string             `json:"curve"`
	Forcing    string             `json:"forcing"`
	RateModel  string             `json:"rate_model"`
	Timestamp  time.Time          `json:"timestamp"`
	Period     int                `json:"period"`
	TimeMax    int                `json:"time_max"`
	StepLength float64            `json:"step_length"`
	Start      string             `json:"start"`
	DualRun    bool               `json:"dual_run"`
	Summary    map[string]float64 `json:"summary"`
}

var seriesHeader = []string{"time", "control", "eq_top", "eq_bottom", "volume"}
var secondHeader = []string{"control_2nd", "eq_top_2nd", "eq_bottom_2nd", "volume_2nd"}

// Save writes one run (or a dual-run pair sharing a time axis) and
// returns its generated ID.
func (s *Store) Save(meta RunMetadata, primary, secondary *icesheet.Result) (string, error) {
	runID, runDir, err := s.claimRunDir(meta.Curve)
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.DualRun = secondary != nil

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := seriesHeader
	if secondary != nil {
		header = append(append([]string{}, seriesHeader...), secondHeader...)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for t := 0; t < primary.Len(); t++ {
		row := []string{
			formatFloat(primary.Times[t]),
			formatFloat(primary.Controls[t]),
			formatFloat(primary.EqTop[t]),
			formatFloat(primary.EqBottom[t]),
			formatFloat(primary.Volumes[t]),
		}
		if secondary != nil {
			row = append(row,
				formatFloat(secondary.Controls[t]),
				formatFloat(secondary.EqTop[t]),
				formatFloat(secondary.EqBottom[t]),
				formatFloat(secondary.Volumes[t]),
			)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// claimRunDir reserves a fresh run directory. Runs saved within the
// same second get a numeric suffix instead of clobbering each other.
func (s *Store) claimRunDir(curve string) (string, string, error) {
	base := fmt.Sprintf("%s_%d", curve, time.Now().Unix())

	for n := 0; ; n++ {
		runID := base
		if n > 0 {
			runID = fmt.Sprintf("%s_%d", base, n+1)
		}
		runDir := filepath.Join(s.baseDir, runID)

		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
	}
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads a run's recorded series back. The secondary result
// is nil for single runs.
func (s *Store) LoadSeries(runID string) (*icesheet.Result, *icesheet.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("storage: run %s has no data rows", runID)
	}

	dual := len(records[0]) == len(seriesHeader)+len(secondHeader)
	n := len(records) - 1

	primary := newResult(n)
	var secondary *icesheet.Result
	if dual {
		secondary = newResult(n)
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: bad value at row %d col %d: %w", i, j, err)
			}
			vals[j] = v
		}

		t := i - 1
		primary.Times[t] = vals[0]
		primary.Controls[t] = vals[1]
		primary.EqTop[t] = vals[2]
		primary.EqBottom[t] = vals[3]
		primary.Volumes[t] = vals[4]
		if dual {
			secondary.Times[t] = vals[0]
			secondary.Controls[t] = vals[5]
			secondary.EqTop[t] = vals[6]
			secondary.EqBottom[t] = vals[7]
			secondary.Volumes[t] = vals[8]
		}
	}

	return primary, secondary, nil
}

func newResult(n int) *icesheet.Result {
	return &icesheet.Result{
		Times:    make([]float64, n),
		Controls: make([]float64, n),
		EqTop:    make([]float64, n),
		EqBottom: make([]float64, n),
		Volumes:  make([]float64, n),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
