package unifi

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alnumRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func TestGenerateCredentials(t *testing.T) {
	creds, err := generateCredentials()
	require.NoError(t, err)

	assert.Equal(t, "unifi", creds.AppUser)
	assert.Equal(t, "root", creds.RootUser)
	assert.Len(t, creds.AppPass, appPasswordLen)
	assert.Len(t, creds.RootPass, rootPasswordLen)
	assert.Regexp(t, alnumRe, creds.AppPass)
	assert.Regexp(t, alnumRe, creds.RootPass)
}

func TestGenerateCredentialsFreshEachRun(t *testing.T) {
	first, err := generateCredentials()
	require.NoError(t, err)
	second, err := generateCredentials()
	require.NoError(t, err)

	assert.NotEqual(t, first.AppPass, second.AppPass)
	assert.NotEqual(t, first.RootPass, second.RootPass)
}

func TestRandomStringLengths(t *testing.T) {
	for _, n := range []int{1, 24, 28, 64} {
		s, err := randomString(n)
		require.NoError(t, err)
		assert.Len(t, s, n)
		assert.Regexp(t, alnumRe, s)
	}
}
