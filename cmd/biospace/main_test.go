package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_MissingAPIKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// no config file and no key on the command line
	err := run(ctx, Opts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.api_key is required")
}

func TestRun_MissingDataset(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{APIKey: "key", Data: filepath.Join(t.TempDir(), "nope.csv")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dataset")
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig(Opts{Listen: "127.0.0.1:9999", Data: "pubs.csv", APIKey: "cli-key"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Listen)
	assert.Equal(t, "pubs.csv", cfg.Dataset.Path)
	assert.Equal(t, "cli-key", cfg.LLM.APIKey)
}

func TestRun_ServerStartStop(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Setenv("BIOSPACE_DATA", filepath.Join(wd, "testdata", "publications.csv"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: filepath.Join(wd, "testdata", "test_config.yml")})
	}()

	// wait for server to start
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://127.0.0.1:18766/ping") //nolint:noctx // test
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))

	// the loaded dataset is searchable through the api
	searchResp, err := http.Get("http://127.0.0.1:18766/api/v1/search?q=bone") //nolint:noctx // test
	require.NoError(t, err)
	defer searchResp.Body.Close()
	assert.Equal(t, http.StatusOK, searchResp.StatusCode)
	body, _ = io.ReadAll(searchResp.Body)
	assert.Contains(t, string(body), "Microgravity effects on bone density")
	assert.NotContains(t, string(body), "Plant growth")

	cancel()
	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "", "secret2")
	})

	t.Run("no color mode", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		SetupLog(false)
	})
}
