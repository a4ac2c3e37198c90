package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_Load(t *testing.T) {
	sample := GenerateSample(42)

	tests := []struct {
		name     string
		filename string
	}{
		{name: "Gzipped dataset", filename: "catalogue.json.gz"},
		{name: "Plain dataset", filename: "catalogue.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, WriteFile(path, sample))

			ds, err := NewFileLoader(zerolog.Nop()).Load(context.Background(), path)

			require.NoError(t, err)
			assert.Equal(t, sample.Size(), ds.Size())
			assert.Len(t, ds.Menu, 20)
			assert.Len(t, ds.Recommendations, 3)
			assert.Equal(t, sample.Menu[0].Name, ds.Menu[0].Name)
		})
	}
}

func TestFileLoader_Load_Errors(t *testing.T) {
	dir := t.TempDir()

	notGzip := filepath.Join(dir, "broken.json.gz")
	require.NoError(t, os.WriteFile(notGzip, []byte(`{"menu": []}`), 0o600))

	badJSON := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(badJSON, []byte(`{"menu": [`), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{name: "Missing file", path: filepath.Join(dir, "missing.json")},
		{name: "Not gzip", path: notGzip},
		{name: "Malformed JSON", path: badJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := NewFileLoader(zerolog.Nop()).Load(context.Background(), tt.path)

			assert.Error(t, err)
			assert.Nil(t, ds)
		})
	}
}

func TestFileLoader_Load_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileLoader(zerolog.Nop()).Load(ctx, "whatever.json")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateSample_Deterministic(t *testing.T) {
	a := GenerateSample(7)
	b := GenerateSample(7)

	assert.Equal(t, a, b)
	for _, m := range a.Menu {
		assert.Greater(t, m.Price, 0.0)
		assert.Contains(t, sampleCategories, m.Category)
	}
}
