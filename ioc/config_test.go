package ioc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContainerOptionsParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strictScoping: true\nstrictRegistration: false\n"), 0o644))

	opts, err := LoadContainerOptions(path)
	require.NoError(t, err)
	assert.True(t, opts.StrictScoping)
	assert.False(t, opts.StrictRegistration)
}

func TestLoadContainerOptionsMissingFile(t *testing.T) {
	_, err := LoadContainerOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
