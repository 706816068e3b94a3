package conform

import (
	"encoding/gob"
	"os"
)

// Report is the persisted outcome of a fuzz run: enough to resume
// reporting without re-running every property, and to diff two runs
// against each other after a kernel change.
type Report struct {
	TrialsPerProperty int64
	Checked           int64
	Failed            int64
	Failures          []Failure
}

func init() {
	gob.Register(Failure{})
}

// NewReport summarizes a completed Runner into a Report.
func NewReport(r *Runner, trialsPerProperty int64) *Report {
	checked, failed := r.Stats()
	return &Report{
		TrialsPerProperty: trialsPerProperty,
		Checked:           checked,
		Failed:            failed,
		Failures:          append([]Failure(nil), r.Failures...),
	}
}

// Save writes rep to path via gob encoding.
func (rep *Report) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(rep)
}

// LoadReport reads a Report previously written by Save.
func LoadReport(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rep Report
	if err := gob.NewDecoder(f).Decode(&rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
