package config

import (
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotinstall/pkg/errors"
)

func TestRenderTOML(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	out, err := Render(cfg, "toml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "[project]")

	var back Config
	require.NoError(t, gotoml.Unmarshal(out, &back))
	assert.Equal(t, cfg.Project, back.Project)
	assert.Equal(t, cfg.Symlinks, back.Symlinks)
}

func TestRenderYAML(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	out, err := Render(cfg, "yaml")
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, cfg.Files.Common, back.Files.Common)
}

func TestRenderUnknownFormat(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	_, err = Render(cfg, "json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
