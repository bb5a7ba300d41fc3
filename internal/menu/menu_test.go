package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMenu_Valid(t *testing.T) {
	m := DefaultMenu()
	require.NoError(t, m.Validate())
	assert.Len(t, m.Dishes, 10)
	assert.Equal(t, m.Dishes[0], m.Dishes[6], "default menu repeats dishes")
}

func TestLoadMenu_EmptyPathUsesDefault(t *testing.T) {
	m, err := LoadMenu("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMenu(), m)
}

func TestLoadMenu_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	doc := `dishes:
  - name: Ramen
    image: /dishes/ramen.svg
    color: "#ff8800"
  - name: ""
    color: "#0af"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	m, err := LoadMenu(path)
	require.NoError(t, err)
	require.Len(t, m.Dishes, 2)
	assert.Equal(t, "Ramen", m.Dishes[0].Name)
	assert.Equal(t, "#FF8800", m.Dishes[0].Color)
	assert.Equal(t, "Food dish", m.Dishes[1].Name)
	assert.Equal(t, "#00AAFF", m.Dishes[1].Color)
}

func TestLoadMenu_MissingFile(t *testing.T) {
	_, err := LoadMenu(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read menu file")
}

func TestParseMenu_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{name: "empty", doc: "dishes: []\n", wantErr: ErrEmptyMenu},
		{name: "bad color", doc: "dishes:\n  - name: x\n    color: red\n", wantErr: ErrBadColor},
		{name: "unknown field", doc: "dishes:\n  - name: x\n    colour: \"#fff\"\n", wantMsg: "decode menu yaml"},
		{name: "trailing document", doc: "dishes:\n  - name: x\n    color: \"#fff\"\n---\nfoo: 1\n", wantMsg: "trailing document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMenu([]byte(tt.doc))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
