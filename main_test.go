package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLayoutCommand_YAML(t *testing.T) {
	out, err := runCmd(t, "layout", "--yaml")
	require.NoError(t, err)

	var doc struct {
		Placements []layoutRow `yaml:"placements"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Placements, 10)

	first := doc.Placements[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "Italian cuisine", first.Name)
	assert.InDelta(t, 270.0, first.Angle, 1e-9)
	assert.InDelta(t, 306.0, doc.Placements[1].Angle, 1e-9)
}

func TestLayoutCommand_TableWithMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	menu := "dishes:\n  - name: Soup\n    color: \"#ff8800\"\n  - name: Bread\n    color: \"#00aaff\"\n"
	require.NoError(t, os.WriteFile(path, []byte(menu), 0o644))

	out, err := runCmd(t, "layout", "--yaml=false", "--menu", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Contains(t, lines[1], "Soup")
	assert.Contains(t, lines[1], "#FF8800")
	assert.Contains(t, lines[1], "270.0")
	assert.Contains(t, lines[2], "Bread")
	assert.Contains(t, lines[2], "90.0")
}

func TestLayoutCommand_BadMenu(t *testing.T) {
	_, err := runCmd(t, "layout", "--menu", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
