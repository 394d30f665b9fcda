package unifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOSReleaseCodename(t *testing.T) {
	raw := []byte(`PRETTY_NAME="Ubuntu 24.04.1 LTS"
NAME="Ubuntu"
VERSION_ID="24.04"
VERSION="24.04.1 LTS (Noble Numbat)"
VERSION_CODENAME=noble
ID=ubuntu
ID_LIKE=debian
UBUNTU_CODENAME=noble
`)
	codename, err := parseOSReleaseCodename(raw)
	require.NoError(t, err)
	assert.Equal(t, "noble", codename)
}

func TestParseOSReleaseCodenameQuoted(t *testing.T) {
	codename, err := parseOSReleaseCodename([]byte("VERSION_CODENAME=\"jammy\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "jammy", codename)
}

func TestParseOSReleaseCodenameMissing(t *testing.T) {
	_, err := parseOSReleaseCodename([]byte("ID=ubuntu\nVERSION_ID=\"24.04\"\n"))
	assert.Error(t, err)
}
