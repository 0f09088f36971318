package churchboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRun(t *testing.T) {
	cmd, config, err := Parse([]string{"run"})
	require.NoError(t, err)
	assert.IsType(t, &RunCommand{}, cmd)
	assert.Equal(t, "run", cmd.Name())
	assert.Equal(t, "8080", config.ServerPort)
	assert.Contains(t, config.PostgresDSN, "localhost:5432")
}

func TestParseMigrate(t *testing.T) {
	cmd, _, err := Parse([]string{"migrate"})
	require.NoError(t, err)
	assert.IsType(t, &MigrateCommand{}, cmd)
	assert.Equal(t, "migrate", cmd.Name())
}

func TestParseFlags(t *testing.T) {
	_, config, err := Parse([]string{"-port=9090", "-postgres-port=5438", "run"})
	require.NoError(t, err)
	assert.Equal(t, "9090", config.ServerPort)
	assert.Contains(t, config.PostgresDSN, "localhost:5438")
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("POSTGRES_DSN", "postgres://override")

	_, config, err := Parse([]string{"run"})
	require.NoError(t, err)
	assert.Equal(t, "7070", config.ServerPort)
	assert.Equal(t, "postgres://override", config.PostgresDSN)
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse([]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subcommand required")

	_, _, err = Parse([]string{"serve"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: serve")
}
