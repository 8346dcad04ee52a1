package policyconfig

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML policy file on top of Default and returns it with the raw bytes.
// Unknown fields fail the decode.
func Load(path string) (*Policy, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	p, err := Parse(data)
	if err != nil {
		return nil, data, fmt.Errorf("policy %s: %w", path, err)
	}

	return p, data, nil
}

// Parse decodes and validates a YAML policy document
func Parse(data []byte) (*Policy, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, err
	}

	if err := Validate(p); err != nil {
		return nil, err
	}

	return p, nil
}

// Hash generates SHA256 hash from Policy (canonical JSON)
func Hash(p *Policy) (string, error) {
	jsonBytes, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}

// NewRunSnapshot creates a snapshot with a fresh run id
func NewRunSnapshot(p *Policy, yamlData []byte, datasetName string) (*RunSnapshot, error) {
	hash, err := Hash(p)
	if err != nil {
		return nil, err
	}

	return &RunSnapshot{
		RunID:       uuid.NewString(),
		PolicyHash:  hash,
		PolicyYAML:  string(yamlData),
		PolicyID:    p.Meta.PolicyID,
		DatasetName: datasetName,
		CreatedAt:   time.Now(),
	}, nil
}
