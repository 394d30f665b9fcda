package unifi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DOMAIN", "ACME_EMAIL", "PUID", "PGID", "UNIFI_STACK_DIR",
		"DOCKER_ROOT", "TZ", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "unifi.example.com", cfg.Domain)
	assert.Equal(t, "admin@example.com", cfg.AcmeEmail)
	assert.Equal(t, 1000, cfg.PUID)
	assert.Equal(t, 1000, cfg.PGID)
	assert.Equal(t, defaultStackDir, cfg.StackDir)
	assert.Equal(t, defaultDockerRoot, cfg.DockerRoot)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Empty(t, cfg.AWSAccessKeyID)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOMAIN", "unifi.corp.example")
	t.Setenv("PUID", "1100")
	t.Setenv("UNIFI_STACK_DIR", "/srv/unifi")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "unifi.corp.example", cfg.Domain)
	assert.Equal(t, 1100, cfg.PUID)
	assert.Equal(t, "/srv/unifi", cfg.StackDir)
}

func TestLoadConfigBlankPathsFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNIFI_STACK_DIR", "  ")
	t.Setenv("DOCKER_ROOT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultStackDir, cfg.StackDir)
	assert.Equal(t, defaultDockerRoot, cfg.DockerRoot)
}

func TestConfigPaths(t *testing.T) {
	cfg := Config{StackDir: "/opt/unifi"}

	assert.Equal(t, "/opt/unifi/docker-compose.yml", cfg.ComposePath())
	assert.Equal(t, "/opt/unifi/Caddyfile", cfg.CaddyfilePath())
	assert.Equal(t, "/opt/unifi/container-vars.env", cfg.EnvFilePath())
	assert.Equal(t, "/opt/unifi/db-init", cfg.DBInitDir())
}

func TestReadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "container-vars.env")
	content := "# comment\n\nMONGO_HOST=unifi-mongodb\nMONGO_PASS=\"quoted\"\nbroken line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))

	vars, err := ReadDotEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "unifi-mongodb", vars["MONGO_HOST"])
	assert.Equal(t, "quoted", vars["MONGO_PASS"])
	assert.Len(t, vars, 2)
}
