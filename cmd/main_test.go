package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"--env-file", "prod.env", "--migrate", "--lat", "55.75", "--lng", "37.61"})
	require.NoError(t, err)

	assert.Equal(t, "prod.env", f.envFile)
	assert.True(t, f.migrate)
	assert.Equal(t, "migrations", f.migrationsDir)
	assert.True(t, f.hasLocation)
	assert.InDelta(t, 55.75, f.lat, 1e-9)
	assert.InDelta(t, 37.61, f.lng, 1e-9)
}

func TestParseFlags_Defaults(t *testing.T) {
	f, err := parseFlags(nil)
	require.NoError(t, err)

	assert.False(t, f.migrate)
	assert.False(t, f.hasLocation)
	assert.Empty(t, f.envFile)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"--nope"})
	assert.Error(t, err)
}
