package unifi

import (
	"crypto/rand"
	"fmt"
)

const credentialCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	appPasswordLen  = 24
	rootPasswordLen = 28
)

// Credentials are generated fresh on every setup run and surfaced only in the
// final summary. There is no rotation; rerunning setup replaces them.
type Credentials struct {
	AppUser  string
	AppPass  string
	RootUser string
	RootPass string
}

func generateCredentials() (Credentials, error) {
	appPass, err := randomString(appPasswordLen)
	if err != nil {
		return Credentials{}, err
	}
	rootPass, err := randomString(rootPasswordLen)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{
		AppUser:  "unifi",
		AppPass:  appPass,
		RootUser: "root",
		RootPass: rootPass,
	}, nil
}

func randomString(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = credentialCharset[int(b)%len(credentialCharset)]
	}
	return string(out), nil
}
