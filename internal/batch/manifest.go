package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rptomey/silent-auction-card-generator/pkg/models"
)

// WriteManifest writes entries as one JSON array. An empty run writes "[]".
func WriteManifest(path string, entries []models.ManifestEntry) error {
	if entries == nil {
		entries = []models.ManifestEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func ReadManifest(path string) ([]models.ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var entries []models.ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return entries, nil
}
