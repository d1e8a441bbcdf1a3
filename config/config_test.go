package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vidcache/config"
	"github.com/katalvlaran/vidcache/knapsack"
	"github.com/katalvlaran/vidcache/placement"
)

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Full(t *testing.T) {
	doc := []byte(`
workers: 3
objective: volume
negative_gain: clamp
merge_videos: true
memory_mode: bits
max_table_cells: 5000
log:
  level: debug
  development: true
`)
	cfg, err := config.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Workers:       3,
		Objective:     "volume",
		NegativeGain:  "clamp",
		MergeVideos:   true,
		MemoryMode:    "bits",
		MaxTableCells: 5000,
		Log:           config.LogConfig{Level: "debug", Development: true},
	}, cfg)

	opts, err := cfg.PlannerOptions()
	require.NoError(t, err)
	got := placement.New(opts...).Options()
	assert.Equal(t, 3, got.Workers)
	assert.Equal(t, placement.WeightedByVolume, got.Objective)
	assert.Equal(t, placement.ClampNegative, got.NegativeGain)
	assert.True(t, got.MergeVideos)

	so := knapsack.DefaultOptions()
	for _, o := range got.Solver {
		o(&so)
	}
	assert.Equal(t, knapsack.Options{MemoryMode: knapsack.ChoiceBits, MaxCells: 5000}, so)
}

func TestParse_Partial(t *testing.T) {
	cfg, err := config.Parse([]byte("workers: 2\n"))
	require.NoError(t, err)
	want := config.Default()
	want.Workers = 2
	assert.Equal(t, want, cfg)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", "threads: 4\n", config.ErrDecode},
		{"not yaml", "workers: [\n", config.ErrDecode},
		{"zero workers", "workers: 0\n", config.ErrInvalid},
		{"bad cells", "max_table_cells: -1\n", config.ErrInvalid},
		{"bad objective", "objective: speed\n", placement.ErrUnknownObjective},
		{"bad policy", "negative_gain: keep\n", placement.ErrUnknownPolicy},
		{"bad mode", "memory_mode: disk\n", config.ErrInvalid},
		{"bad level", "log:\n  level: trace\n", config.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidcache.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objective: volume\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "volume", cfg.Objective)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
