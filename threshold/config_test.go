package threshold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, Toric, cfg.Family)
	assert.Equal(t, []int{3, 5, 7}, cfg.Distances)
}

func TestNewConfigAppliesOptionsInOrder(t *testing.T) {
	cfg := NewConfig(
		WithFamily(RotatedPlanar),
		WithDistances(3, 5),
		WithErrorRates(0.02, 0.1),
		WithTrialsPerPoint(50),
		WithSeed(42),
		WithOutputPath("out.json"),
	)

	assert.Equal(t, RotatedPlanar, cfg.Family)
	assert.Equal(t, []int{3, 5}, cfg.Distances)
	assert.Equal(t, []float64{0.02, 0.1}, cfg.ErrorRates)
	assert.Equal(t, 50, cfg.TrialsPerPoint)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "out.json", cfg.OutputPath)
}

func TestOptionsIgnoreZeroValues(t *testing.T) {
	base := NewConfig(WithTrialsPerPoint(10))
	cfg := NewConfig(
		WithTrialsPerPoint(10),
		WithFamily(""),
		WithDistances(),
		WithErrorRates(),
		WithTrialsPerPoint(0),
		WithOutputPath(""),
	)

	assert.Equal(t, base.Family, cfg.Family)
	assert.Equal(t, base.Distances, cfg.Distances)
	assert.Equal(t, base.ErrorRates, cfg.ErrorRates)
	assert.Equal(t, base.TrialsPerPoint, cfg.TrialsPerPoint)
	assert.Equal(t, base.OutputPath, cfg.OutputPath)
}

func TestValidateRejectsEmptyGrids(t *testing.T) {
	cfg := NewConfig(WithDistances())
	cfg.Distances = nil
	assert.ErrorIs(t, cfg.Validate(), ErrNoDistances)

	cfg = NewConfig()
	cfg.ErrorRates = nil
	assert.ErrorIs(t, cfg.Validate(), ErrNoErrorRates)

	cfg = NewConfig()
	cfg.TrialsPerPoint = 0
	assert.ErrorIs(t, cfg.Validate(), ErrTooFewTrials)

	cfg = NewConfig()
	cfg.Family = "surface_17"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownFamily)
}

func TestLoadConfigParsesYAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "threshold.yaml")
	doc := "family: rotated_planar\ndistances: [3, 5]\nerror_rates: [0.05, 0.1]\ntrials_per_point: 200\nseed: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, RotatedPlanar, cfg.Family)
	assert.Equal(t, []int{3, 5}, cfg.Distances)
	assert.Equal(t, []float64{0.05, 0.1}, cfg.ErrorRates)
	assert.Equal(t, 200, cfg.TrialsPerPoint)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "threshold.json", cfg.OutputPath) // untouched by the YAML doc
}

func TestLoadConfigAppliesOptionsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "threshold.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o644))

	cfg, err := LoadConfig(path, WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
