package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgsq/gsq/pkg/config"
	"github.com/getgsq/gsq/pkg/logging"
)

func writeCollection(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "servers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunCheck_AllValid(t *testing.T) {
	path := writeCollection(t, `
servers:
  - type: source
    host: 1.2.3.4:27015
  - type: valheim
    host: 5.6.7.8:2456
    id: weekend-server
`)

	var buf bytes.Buffer
	err := runCheck(context.Background(), &buf, logging.Nop(), path, false)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1.2.3.4:27015")
	assert.Contains(t, out, "weekend-server")
	assert.Contains(t, out, "2457") // valheim query port = client + 1
	assert.Contains(t, out, "steam://connect/1.2.3.4:27015")
}

func TestRunCheck_ReportsFailures(t *testing.T) {
	path := writeCollection(t, `
servers:
  - type: source
    host: 1.2.3.4:27015
  - type: no-such-game
    host: 1.2.3.4:27015
  - type: source
    host: "[bad::ipv6::]:1"
`)

	var buf bytes.Buffer
	err := runCheck(context.Background(), &buf, logging.Nop(), path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")

	out := buf.String()
	assert.Contains(t, out, "unknown protocol")
	assert.Contains(t, out, "ok")
}

func TestRunCheck_JSON(t *testing.T) {
	path := writeCollection(t, `
servers:
  - type: ase
    host: 1.2.3.4:22003
`)

	var buf bytes.Buffer
	err := runCheck(context.Background(), &buf, logging.Nop(), path, true)
	require.NoError(t, err)

	var results []CheckOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "1.2.3.4:22003", results[0].ID)
	assert.Equal(t, 22126, results[0].PortQuery) // ase offset +123
	assert.Empty(t, results[0].JoinLink)
}

func TestRunCheck_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runCheck(context.Background(), &buf, logging.Nop(),
		filepath.Join(t.TempDir(), "absent.yaml"), false)
	assert.ErrorIs(t, err, config.ErrFileNotFound)
}
