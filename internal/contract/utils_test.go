package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseBoolString covers the accepted truthy and falsy spellings.
func TestParseBoolString(t *testing.T) {
	truthy := []string{"yes", "YES", "true", "True", "1"}
	for _, s := range truthy {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}

	falsy := []string{"no", "NO", "false", "False", "0"}
	for _, s := range falsy {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}

	for _, s := range []string{"", "maybe", "2"} {
		_, err := ParseBoolString(s)
		assert.Error(t, err, s)
	}
}

// TestGetItemLabel returns the plain label when colors are disabled and a
// colored variant otherwise.
func TestGetItemLabel(t *testing.T) {
	assert.Equal(t, "Heavy Plate", GetItemLabel("Heavy Plate", false, false))
	assert.Equal(t, "7.62x54R BT (x60)", GetItemLabel("7.62x54R BT (x60)", true, false))

	// With colors on, the label text is still present in the output.
	colored := GetItemLabel("7.62x54R BT (x60)", true, true)
	assert.True(t, strings.Contains(colored, "7.62x54R BT (x60)"))
}

// TestGetCacheDBFilePath always yields a non-empty database path.
func TestGetCacheDBFilePath(t *testing.T) {
	path := GetCacheDBFilePath()
	assert.NotEmpty(t, path)
	assert.True(t, strings.HasSuffix(path, ".deltaforce_cache.db"))
}
