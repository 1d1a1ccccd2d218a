package data_test

import (
	"io/fs"
	"testing"

	"github.com/larynjahor/lists/data"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{"array", "linked", "stack"}, data.Names())

	for _, name := range data.Names() {
		content, err := fs.ReadFile(data.FS, data.File(name))
		require.NoError(t, err)
		require.Contains(t, string(content), `"version"`)
	}
}
