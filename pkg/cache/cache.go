// Package cache keeps the last successful collection fetch per screen
// on disk so the console can browse snapshots while the API is
// unreachable. It is a convenience layer only; mutations never touch
// the cache path.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// Snapshots stores one JSON document per screen name.
type Snapshots struct {
	d *diskv.Diskv
}

// Open builds a snapshot store rooted at basePath.
func Open(basePath string) *Snapshots {
	return &Snapshots{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// Save overwrites the snapshot for the named screen.
func (s *Snapshots) Save(screen string, v interface{}) error {
	if screen == "" {
		return errors.New("cache: screen name required")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode snapshot: %w", err)
	}
	if err := s.d.Write(screen, data); err != nil {
		return fmt.Errorf("cache: write snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot for the named screen into v.
func (s *Snapshots) Load(screen string, v interface{}) error {
	data, err := s.d.Read(screen)
	if err != nil {
		return fmt.Errorf("cache: no snapshot for %s: %w", screen, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cache: decode snapshot: %w", err)
	}
	return nil
}

// Has reports whether a snapshot exists for the named screen.
func (s *Snapshots) Has(screen string) bool {
	return s.d.Has(screen)
}

// Erase drops the snapshot for the named screen.
func (s *Snapshots) Erase(screen string) error {
	return s.d.Erase(screen)
}
