package unifi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeToDelete(t *testing.T) {
	cases := []struct {
		dir  string
		want bool
	}{
		{"/opt/unifi", true},
		{"/opt/unifi/", true},
		{"/opt/unifi//", false},
		{"/opt/unifi/data", false},
		{"/opt", false},
		{"/tmp/other", false},
		{"/", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SafeToDelete(tc.dir), "dir %q", tc.dir)
	}
}

func TestDeleteStackDirRefusesUnsafePath(t *testing.T) {
	dir := t.TempDir()
	inner := filepath.Join(dir, "data", "keep.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(inner), 0o750))
	require.NoError(t, os.WriteFile(inner, []byte("controller data"), 0o640))

	err := deleteStackDir(dir)
	require.Error(t, err)
	assert.Equal(t, ExitUnsafePath, ExitCode(err))
	assert.FileExists(t, inner, "refusal must leave the filesystem untouched")
}

func TestRunTeardownRefusesUnsafePathBeforeAnyStep(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "Caddyfile")
	require.NoError(t, os.WriteFile(marker, []byte("example.com {}"), 0o640))

	cfg := testConfig(t)
	opts := TeardownOptions{
		DeleteData:      true,
		RemoveCaddyfile: true,
		Yes:             true,
		StackDir:        dir,
		DockerRoot:      "/opt/docker",
	}

	err := RunTeardown(cfg, opts)
	require.Error(t, err)
	assert.Equal(t, ExitUnsafePath, ExitCode(err))
	assert.FileExists(t, marker, "no step may run after an unsafe path is detected")
}

func TestParseTeardownFlags(t *testing.T) {
	cfg := testConfig(t)

	opts, err := parseTeardownFlags(cfg, []string{
		"--delete-data", "--purge-images", "--yes", "--stack-dir", "/opt/unifi",
	})
	require.NoError(t, err)
	assert.True(t, opts.DeleteData)
	assert.True(t, opts.PurgeImages)
	assert.True(t, opts.Yes)
	assert.False(t, opts.Force)
	assert.Equal(t, "/opt/unifi", opts.StackDir)
	assert.Equal(t, cfg.DockerRoot, opts.DockerRoot)
}

func TestParseTeardownFlagsDefaults(t *testing.T) {
	cfg := testConfig(t)

	opts, err := parseTeardownFlags(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.StackDir, opts.StackDir)
	assert.Equal(t, cfg.DockerRoot, opts.DockerRoot)
	assert.False(t, opts.DeleteData)
	assert.False(t, opts.Yes)
}

func TestParseTeardownFlagsUnknownFlag(t *testing.T) {
	cfg := testConfig(t)

	_, err := parseTeardownFlags(cfg, []string{"--nuke-everything"})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestParseTeardownFlagsRejectsPositionalArgs(t *testing.T) {
	cfg := testConfig(t)

	_, err := parseTeardownFlags(cfg, []string{"extra"})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestTeardownPlanReflectsFlags(t *testing.T) {
	cfg := testConfig(t)

	plan := teardownPlan(cfg, TeardownOptions{})
	require.Len(t, plan, 1)

	full := teardownPlan(cfg, TeardownOptions{
		DeleteData:       true,
		PurgeImages:      true,
		RevertDaemonJSON: true,
		RemoveDocker:     true,
		RemoveDockerRepo: true,
		RemoveCaddyfile:  true,
	})
	assert.Len(t, full, 7)
}
