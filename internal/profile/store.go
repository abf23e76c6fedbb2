package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/moveguider/moveguider/internal/wellness"
)

// ErrNotFound is returned when no profile exists under the requested name.
var ErrNotFound = errors.New("profile not found")

// FileStore persists named user profiles as one JSON document on disk. The
// core never touches this; it only consumes the UserProfile records loaded
// here.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore writing to path. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Names lists stored profile names in sorted order.
func (s *FileStore) Names() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Get returns the profile stored under name.
func (s *FileStore) Get(name string) (wellness.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return wellness.UserProfile{}, err
	}
	p, ok := profiles[name]
	if !ok {
		return wellness.UserProfile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p, nil
}

// Put creates or replaces the profile stored under name, assigning an ID on
// first save.
func (s *FileStore) Put(name string, p wellness.UserProfile) (wellness.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return wellness.UserProfile{}, err
	}

	if existing, ok := profiles[name]; ok && existing.ID != "" {
		p.ID = existing.ID
	} else if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Name = name
	profiles[name] = p

	if err := s.save(profiles); err != nil {
		return wellness.UserProfile{}, err
	}
	return p, nil
}

// Delete removes the profile stored under name, if present.
func (s *FileStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(profiles, name)
	return s.save(profiles)
}

func (s *FileStore) load() (map[string]wellness.UserProfile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]wellness.UserProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}

	profiles := make(map[string]wellness.UserProfile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}
	return profiles, nil
}

func (s *FileStore) save(profiles map[string]wellness.UserProfile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}

	// Write-then-rename keeps the file intact if we crash mid-write.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing profiles: %w", err)
	}
	return os.Rename(tmp, s.path)
}
