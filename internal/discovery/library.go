package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// #region library-file
// libraryFile is the on-disk JSON shape of a saved feature library.
type libraryFile struct {
	Features        []libraryEntry `json:"features"`
	SuspiciousCount int            `json:"suspicious_count"`
	DeceptionCount  int            `json:"deception_count"`
	Config          Config         `json:"config"`
}

type libraryEntry struct {
	ExternalID string  `json:"external_id"`
	Feature    Feature `json:"feature"`
}

// #endregion library-file

// #region library-ops
// AddFeature stores a discovered feature under an external identifier.
// The library is populated by callers, not by discovery itself.
func (d *Discoverer) AddFeature(externalID string, f Feature) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.library[externalID] = f
}

// GetFeature looks up a feature by external identifier.
func (d *Discoverer) GetFeature(externalID string) (Feature, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	f, ok := d.library[externalID]
	return f, ok
}

// LibrarySize returns the number of stored features.
func (d *Discoverer) LibrarySize() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.library)
}

// #endregion library-ops

// #region save-load
// SaveFeatureLibrary writes the library as UTF-8 JSON. Fails loudly only on
// I/O or encoding errors.
func (d *Discoverer) SaveFeatureLibrary(path string) error {
	d.mu.RLock()
	entries := make([]libraryEntry, 0, len(d.library))
	for id, f := range d.library {
		entries = append(entries, libraryEntry{ExternalID: id, Feature: f})
	}
	suspicious := len(d.suspicious)
	deception := len(d.deception)
	d.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].ExternalID < entries[j].ExternalID })

	payload := libraryFile{
		Features:        entries,
		SuspiciousCount: suspicious,
		DeceptionCount:  deception,
		Config:          d.config,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feature library: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write feature library: %w", err)
	}
	return nil
}

// LoadFeatureLibrary replaces the in-memory library with a saved one.
func (d *Discoverer) LoadFeatureLibrary(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read feature library: %w", err)
	}
	var payload libraryFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parse feature library: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.library = make(map[string]Feature, len(payload.Features))
	for _, e := range payload.Features {
		d.library[e.ExternalID] = e.Feature
	}
	return nil
}

// #endregion save-load
