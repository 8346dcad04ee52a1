// Package dataset decodes report input for the command line host.
// The analysis core never imports it.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wonny/salesperf/internal/contracts"
)

// Load reads a JSON dataset from path
func Load(path string) (*contracts.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode reads one JSON dataset document from r
func Decode(r io.Reader) (*contracts.Dataset, error) {
	var ds contracts.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &ds, nil
}
