package profile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitylog/unitylog-go/pkg/unitylog/profile"
)

func TestLoad_Valid(t *testing.T) {
	p, err := profile.Load("testdata/valid.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Version)
	assert.Equal(t, "UnityEngine.Debug:Log", p.Marker)
	assert.Equal(t, []string{"GameLogger", "DebugHelper"}, p.WrapperHints)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	_, err := profile.Load("testdata/unsupported_version.yaml")
	require.Error(t, err)
	var valErr *profile.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestLoad_EmptyHint(t *testing.T) {
	_, err := profile.Load("testdata/empty_hint.yaml")
	require.Error(t, err)
	var hintErr *profile.HintError
	require.True(t, errors.As(err, &hintErr))
	assert.Equal(t, 1, hintErr.Index)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := profile.Load("testdata/nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open profile file")
}

func TestLoadBytes_Valid(t *testing.T) {
	data := []byte(`version: 1
marker: "MyEngine.Debug:Log"
`)
	p, err := profile.LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "MyEngine.Debug:Log", p.Marker)
	assert.Empty(t, p.WrapperHints)
}

func TestLoadBytes_Empty(t *testing.T) {
	_, err := profile.LoadBytes(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadBytes_InvalidYAML(t *testing.T) {
	_, err := profile.LoadBytes([]byte("version: [not closed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadBytes_TooLarge(t *testing.T) {
	data := []byte("version: 1\nmarker: \"" + strings.Repeat("x", profile.MaxProfileFileSize) + "\"\n")
	_, err := profile.LoadBytes(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
