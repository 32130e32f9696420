package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixturesAsset(t *testing.T) {
	f, err := loadFixtures(filepath.Join("..", "..", "assets", "fixtures.json"))
	require.NoError(t, err)
	require.NotEmpty(t, f.Games)

	for _, g := range f.Games {
		assert.NotEmpty(t, g.Picks, g.ID)
	}
}

func TestLoadFixturesRejects(t *testing.T) {
	cases := map[string]string{
		"bad id":    `{"games":[{"id":"x","start_in":"1h"}]}`,
		"bad start": `{"games":[{"id":"7c9e6679-7425-40de-944b-e07fc1f90ae7","start_in":"soon"}]}`,
		"bad side":  `{"games":[{"id":"7c9e6679-7425-40de-944b-e07fc1f90ae7","start_in":"1h","picks":[{"side":"left"}]}]}`,
		"bad json":  `{"games":`,
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "f.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		_, err := loadFixtures(path)
		assert.Error(t, err, name)
	}
}

func TestStartTime(t *testing.T) {
	now := time.Date(2026, 1, 10, 18, 30, 45, 0, time.UTC)
	g := GameFixture{StartIn: "90m"}
	assert.Equal(t, time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC), g.startTime(now))
}
