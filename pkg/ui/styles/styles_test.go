package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))
	for _, name := range []string{Program, Error, Warning, Success, Path, Muted, ID, Prompt} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s missing", name)
	}
	assert.True(t, GetStyle(Program).GetBold())
	assert.True(t, GetStyle(ID).GetItalic())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	before := StyleRegistry
	assert.Error(t, LoadStylesFromData([]byte("colors: [")))
	assert.Equal(t, before, StyleRegistry, "registry kept on error")
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.False(t, GetStyle("Nope").GetBold())
}

func TestDefaultStyles(t *testing.T) {
	t.Cleanup(func() { _ = LoadStylesFromData(embeddedStyles) })
	initDefaultStyles()
	assert.Len(t, StyleRegistry, 8)
}
