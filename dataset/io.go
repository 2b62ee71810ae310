package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

type sampleSetJSON struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// FromJSON reads a sample set from a JSON document of the form
// {"x": [...], "y": [...]}.
func FromJSON(r io.Reader) (*SampleSet, error) {
	var doc sampleSetJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode sample set, %w", err)
	}
	return New(doc.X, doc.Y)
}

// WriteJSON serializes the sample set as a JSON document.
func (s *SampleSet) WriteJSON(w io.Writer) error {
	doc := sampleSetJSON{
		X: s.X,
		Y: s.Y,
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("unable to encode sample set, %w", err)
	}
	return nil
}

// LoadFile reads a JSON sample set from the given path.
func LoadFile(path string) (*SampleSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open sample set file, %w", err)
	}
	defer file.Close()
	return FromJSON(file)
}
