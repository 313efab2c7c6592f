package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgsq/gsq/pkg/endpoint"
)

func TestLoadFromFile_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "servers.yaml")

	content := `
version: "1.0"
name: test servers
servers:
  - type: source
    host: 1.2.3.4:27015
  - type: valheim
    host: play.example.com:2456
    id: weekend-server
    options:
      query_port: 2457
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	collection, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", collection.Version)
	assert.Equal(t, "test servers", collection.Name)
	require.Len(t, collection.Servers, 2)

	assert.Equal(t, "source", collection.Servers[0].Type)
	assert.Equal(t, "1.2.3.4:27015", collection.Servers[0].Host)

	assert.Equal(t, "weekend-server", collection.Servers[1].ID)
	assert.Equal(t, 2457, collection.Servers[1].Options["query_port"])
}

func TestLoadFromFile_ValidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "servers.json")

	content := `{
		"version": "1.0",
		"servers": [
			{"type": "source", "host": "1.2.3.4:27015", "options": {"query_port": 27016}}
		]
	}`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	collection, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, collection.Servers, 1)
	assert.Equal(t, "source", collection.Servers[0].Type)
}

func TestLoadFromFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")

	err := os.WriteFile(path, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	collection, err := LoadFromFile(path)
	assert.Nil(t, collection)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	err := os.WriteFile(path, []byte("servers:\n  - type: [unclosed"), 0644)
	require.NoError(t, err)

	collection, err := LoadFromFile(path)
	assert.Nil(t, collection)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFromFile_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadFromFile_Directory(t *testing.T) {
	_, err := LoadFromFile(t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestServerConfig_Descriptor(t *testing.T) {
	sc := ServerConfig{
		Type:    "source",
		Host:    "1.2.3.4:27015",
		ID:      "named",
		Options: map[string]any{"query_port": 27016},
	}

	desc := sc.Descriptor()
	assert.Equal(t, "source", desc.Type)
	assert.Equal(t, "1.2.3.4:27015", desc.Host)
	assert.Equal(t, "named", desc.ID)
	assert.Equal(t, 27016, desc.Options["query_port"])
}

func TestServerCollection_Validate(t *testing.T) {
	collection := &ServerCollection{Servers: []ServerConfig{
		{Type: "source", Host: "1.2.3.4:27015"},
		{Type: "", Host: "1.2.3.4:27015"},
	}}

	err := collection.Validate()
	assert.ErrorIs(t, err, endpoint.ErrMissingType)
	assert.Contains(t, err.Error(), "server 1")
}

func TestServerConfig_Validate(t *testing.T) {
	assert.NoError(t, ServerConfig{Type: "source", Host: "h:1"}.Validate())
	assert.ErrorIs(t, ServerConfig{Host: "h:1"}.Validate(), endpoint.ErrMissingType)
	assert.ErrorIs(t, ServerConfig{Type: "source"}.Validate(), endpoint.ErrMissingHost)
}
