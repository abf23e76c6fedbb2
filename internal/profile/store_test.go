package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moveguider/moveguider/internal/wellness"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "profiles.json"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := tempStore(t)

	saved, err := s.Put("alice", wellness.UserProfile{
		SleepStart: "23:00",
		SleepEnd:   "07:00",
		WeightKg:   64,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "alice", saved.Name)

	loaded, err := s.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestFileStorePreservesIDOnUpdate(t *testing.T) {
	s := tempStore(t)

	first, err := s.Put("bob", wellness.UserProfile{WeightKg: 80})
	require.NoError(t, err)

	second, err := s.Put("bob", wellness.UserProfile{WeightKg: 85})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 85.0, second.WeightKg)
}

func TestFileStoreNames(t *testing.T) {
	s := tempStore(t)

	names, err := s.Names()
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = s.Put("zoe", wellness.UserProfile{})
	require.NoError(t, err)
	_, err = s.Put("adam", wellness.UserProfile{})
	require.NoError(t, err)

	names, err = s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"adam", "zoe"}, names)
}

func TestFileStoreDelete(t *testing.T) {
	s := tempStore(t)

	_, err := s.Put("carol", wellness.UserProfile{})
	require.NoError(t, err)

	require.NoError(t, s.Delete("carol"))
	_, err = s.Get("carol")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete("carol"), ErrNotFound)
}

func TestFileStoreGetMissing(t *testing.T) {
	s := tempStore(t)
	_, err := s.Get("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
