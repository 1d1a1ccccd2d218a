package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larynjahor/lists/internal/config"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    config.Config
		wantErr bool
	}{
		{
			name: "empty",
			doc:  "",
			want: config.Default(),
		},
		{
			name: "overrides",
			doc:  "default_size: 10\nseparator: \" | \"\nlog_file: /tmp/lists.log\n",
			want: config.Config{DefaultSize: 10, Separator: " | ", Parallelism: 4, LogFile: "/tmp/lists.log"},
		},
		{
			name: "parallelism floor",
			doc:  "parallelism: 0\n",
			want: config.Config{DefaultSize: 4, Separator: ", ", Parallelism: 1},
		},
		{
			name:    "negative size",
			doc:     "default_size: -1\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			doc:     "default_size: [",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.Parse([]byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		t.Setenv(config.EnvPath, filepath.Join(dir, "nope.yaml"))

		got, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, config.Default(), got)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("default_size: 8\n"), 0o600))
		t.Setenv(config.EnvPath, path)

		got, err := config.Load()
		require.NoError(t, err)
		require.Equal(t, 8, got.DefaultSize)
	})
}
