package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/larynjahor/lists/internal/config"
	"github.com/stretchr/testify/require"
)

func TestReadScripts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "v1"}`), 0o600))

	t.Run("file", func(t *testing.T) {
		got, err := readScripts([]string{path}, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "mine", got[0].Name)
	})

	t.Run("sample", func(t *testing.T) {
		got, err := readScripts([]string{"sample:stack", "sample:array"}, nil)
		require.NoError(t, err)
		require.Equal(t, "stack", got[0].Name)
		require.Equal(t, "array", got[1].Name)
	})

	t.Run("unknown sample", func(t *testing.T) {
		_, err := readScripts([]string{"sample:nope"}, nil)
		require.ErrorIs(t, err, errUnknownSample)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readScripts([]string{filepath.Join(dir, "absent.json")}, nil)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("stdin", func(t *testing.T) {
		got, err := readScripts(nil, strings.NewReader(`{"version": "v1", "ops": []}`))
		require.NoError(t, err)
		require.Equal(t, "stdin", got[0].Name)
	})
}

func TestRun(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), config.Default(), []string{"sample:linked"}, nil, &out)
	require.NoError(t, err)

	var resp struct {
		Reports []struct {
			Name    string `json:"name"`
			Results []struct {
				Op    string `json:"op"`
				Value *int   `json:"value"`
				Len   int    `json:"len"`
				Error string `json:"error"`
			} `json:"results"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))

	require.Len(t, resp.Reports, 1)
	require.Equal(t, "linked", resp.Reports[0].Name)
	require.Len(t, resp.Reports[0].Results, 9)
	require.Equal(t, "empty container", resp.Reports[0].Results[0].Error)
	require.Equal(t, 30, *resp.Reports[0].Results[6].Value)
}

func TestRunAbortedScript(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), config.Default(), nil, strings.NewReader(`{"version": "v3"}`), &out)
	require.Error(t, err)
	require.Contains(t, out.String(), `"name":"stdin"`)
	require.Contains(t, out.String(), "unsupported script version")
}
