package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/multiz/internal/stats"
)

// BlobVersion is the only persisted format version this build reads.
const BlobVersion = 1

// Blob is the wholesale persisted form of the stats mapping.
type Blob struct {
	Version     int                         `json:"version"`
	LastUpdated string                      `json:"lastUpdated"`
	Stats       map[string]*stats.FactStats `json:"stats"`
}

// EncodeBlob serializes the mapping with the current version and a fresh
// lastUpdated timestamp.
func EncodeBlob(mapping map[string]*stats.FactStats, now time.Time) ([]byte, error) {
	blob := Blob{
		Version:     BlobVersion,
		LastUpdated: now.UTC().Format(time.RFC3339),
		Stats:       mapping,
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return nil, fmt.Errorf("marshal stats blob: %w", err)
	}
	return data, nil
}

// DecodeBlob parses a persisted blob back into the stats mapping.
// A version other than BlobVersion is an error; the caller treats it the
// same as absent data. Entries without a history field decode to an
// empty history, for data written before history tracking existed.
func DecodeBlob(data []byte) (map[string]*stats.FactStats, error) {
	var blob Blob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("unmarshal stats blob: %w", err)
	}
	if blob.Version != BlobVersion {
		return nil, fmt.Errorf("unsupported stats blob version %d", blob.Version)
	}
	if blob.Stats == nil {
		blob.Stats = make(map[string]*stats.FactStats)
	}
	return blob.Stats, nil
}
