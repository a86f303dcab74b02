package worldfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badlands/internal/elevation"
	"badlands/internal/generate"
	"badlands/internal/world"
)

func sampleResult(t *testing.T) *generate.Result {
	t.Helper()
	m := world.NewTileMatrix(8)
	for _, row := range m {
		for col := range row {
			row[col].Type = world.Grass
		}
	}
	m[0][0].Type = world.Lava
	m[3][4].Content = world.Tree(3)
	m[5][1].Content = world.Bank(1, 20)

	values := make([]float64, 64)
	for i := range values {
		values[i] = float64(i) / 10
	}
	return &generate.Result{
		World:     m,
		Spawn:     world.Coordinate{Row: 0, Col: 1},
		Env:       world.DefaultEnvironment(),
		Seed:      99,
		Elevation: elevation.FromValues(8, values),
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	res := sampleResult(t)
	path := filepath.Join(t.TempDir(), "grove.world")
	require.NoError(t, Save(path, res))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, res.World, loaded.World)
	assert.Equal(t, res.Spawn, loaded.Spawn)
	assert.Equal(t, res.Env, loaded.Env)
	assert.Equal(t, res.Seed, loaded.Seed)
	require.NotNil(t, loaded.Elevation)
	assert.Equal(t, res.Elevation.Values(), loaded.Elevation.Values())
	assert.Nil(t, loaded.Timings, "timings are not persisted")
}

func TestRoundTripWithoutElevation(t *testing.T) {
	res := sampleResult(t)
	res.Elevation = nil
	path := filepath.Join(t.TempDir(), "flat.world")
	require.NoError(t, Save(path, res))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, loaded.Elevation)
	assert.Equal(t, res.World, loaded.World)
}

func TestLoadRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-world.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text, long enough"), 0o644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrFormat), "got %v", err)
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stub.world")
	require.NoError(t, os.WriteFile(path, []byte{'B', 'D'}, 0o644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrFormat), "got %v", err)
}

func TestLoadRejectsFutureVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.world")
	require.NoError(t, os.WriteFile(path, []byte{'B', 'D', 'L', 'W', 9, 0, 0}, 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestLoadFromGenerator(t *testing.T) {
	res, err := generate.Default(120, 11).Generate()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "generated.world")
	require.NoError(t, Save(path, res))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, res.World, loaded.World)
	assert.Equal(t, res.Spawn, loaded.Spawn)
	assert.Equal(t, int64(11), loaded.Seed)
}
