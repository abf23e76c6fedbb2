package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moveguider/moveguider/internal/wellness"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	s := NewMemoryStore(10, time.Hour)

	_, err := s.Get("lisbon")
	assert.ErrorIs(t, err, ErrNotFound)

	s.Save("lisbon", wellness.CityContext{Name: "Lisbon", Timezone: "Europe/Lisbon"})
	city, err := s.Get("lisbon")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", city.Name)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(10, time.Millisecond)
	s.Save("oslo", wellness.CityContext{Name: "Oslo"})

	time.Sleep(5 * time.Millisecond)
	_, err := s.Get("oslo")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreEviction(t *testing.T) {
	s := NewMemoryStore(1, 0)

	s.Save("first", wellness.CityContext{Name: "First"})
	time.Sleep(time.Millisecond)
	s.Save("second", wellness.CityContext{Name: "Second"})

	_, err := s.Get("first")
	assert.ErrorIs(t, err, ErrNotFound)

	city, err := s.Get("second")
	require.NoError(t, err)
	assert.Equal(t, "Second", city.Name)
}
