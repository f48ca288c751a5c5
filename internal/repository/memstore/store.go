package memstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go-resume-backend/internal/domain"
)

// Store owns every record collection plus the user-information singleton.
// Collections are addressed by position; deleting a record shifts later
// indices down. When opened with a path, the whole store is mirrored to that
// JSON file after each mutation and reloaded from it at startup.
type Store struct {
	mu   sync.RWMutex
	path string
	data snapshot
}

type snapshot struct {
	Experience      []domain.Experience    `json:"experience"`
	Education       []domain.Education     `json:"education"`
	Skill           []domain.Skill         `json:"skill"`
	UserInformation domain.UserInformation `json:"user_information"`
	CustomSections  []domain.CustomSection `json:"custom_sections"`
}

// Open creates a store. An empty path keeps records in memory only. With a
// path, an existing snapshot is loaded; a missing file starts from seed data
// and is written on the first mutation.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: seed()}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode store snapshot %s: %w", path, err)
	}
	return s, nil
}

// seed mirrors the sample records the service has always started with.
func seed() snapshot {
	return snapshot{
		Experience: []domain.Experience{
			{
				Title:       "Software Developer",
				Company:     "A Cool Company",
				StartDate:   "October 2022",
				EndDate:     "Present",
				Description: "Writing Python Code",
				Logo:        "example-logo.png",
			},
		},
		Education: []domain.Education{
			{
				Course:    "Computer Science",
				School:    "University of Tech",
				StartDate: "September 2019",
				EndDate:   "July 2022",
				Grade:     "80%",
				Logo:      "example-logo.png",
			},
		},
		Skill: []domain.Skill{
			{Name: "Python", Proficiency: "1-2 Years", Logo: "example-logo.png"},
		},
		CustomSections: []domain.CustomSection{},
	}
}

// persistLocked writes the snapshot to disk. Callers must hold the write
// lock. A store without a path never touches the filesystem.
func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write store snapshot: %w", err)
	}
	return nil
}
