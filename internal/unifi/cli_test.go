package unifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMissingCommand(t *testing.T) {
	err := Run(nil)
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestRunUnknownCommand(t *testing.T) {
	err := Run([]string{"provision"})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestRunSetupRejectsFlags(t *testing.T) {
	err := Run([]string{"setup", "--domain", "example.com"})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestRunTeardownUnknownFlag(t *testing.T) {
	err := Run([]string{"teardown", "--bogus"})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestRunHelp(t *testing.T) {
	assert.NoError(t, Run([]string{"help"}))
}

func TestExitCodeMapping(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUnsafePath, ExitCode(exitErrf(ExitUnsafePath, "nope")))
	assert.Equal(t, ExitMissingTool, ExitCode(assert.AnError))
}
