package unifi

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCaddyfile(t *testing.T) {
	cfg := testConfig(t)
	cfg.AWSAccessKeyID = "AKIAEXAMPLE"
	cfg.AWSSecretAccessKey = "secretexample"

	require.NoError(t, writeCaddyfile(cfg))

	raw, err := os.ReadFile(cfg.CaddyfilePath())
	require.NoError(t, err)
	text := string(raw)

	assert.True(t, strings.HasPrefix(text, "example.com {"), "site block header must match the domain")
	assert.Contains(t, text, "dns route53")
	assert.Contains(t, text, "access_key_id AKIAEXAMPLE")
	assert.Contains(t, text, "protocols tls1.2 tls1.3")
	assert.Contains(t, text, "curves x25519 secp384r1")

	for _, header := range []string{
		"Strict-Transport-Security",
		"X-Content-Type-Options",
		"X-Frame-Options",
		"Referrer-Policy",
		"Permissions-Policy",
		"-Server",
	} {
		assert.Contains(t, text, header)
	}

	assert.Contains(t, text, "format json")
	assert.Contains(t, text, "rate_limit")
	assert.Contains(t, text, "reverse_proxy https://127.0.0.1:8443")
}
