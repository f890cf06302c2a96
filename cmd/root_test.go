package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"score", "demo", "report", "chart", "policy", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "compliscore", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestScoreCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"input", "policy", "format", "output"} {
		flag := scoreCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "score should have --%s flag", flagName)
	}

	format := scoreCmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "table", format.DefValue)
}

func TestDemoCommand_Flags(t *testing.T) {
	flag := demoCmd.Flags().Lookup("rows")
	require.NotNil(t, flag, "demo command should have --rows flag")
	assert.Equal(t, "0", flag.DefValue)

	format := demoCmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "csv", format.DefValue)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestPolicyCommand_HasSubcommands(t *testing.T) {
	cmds := policyCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	for _, name := range []string{"show", "init"} {
		assert.True(t, names[name], "policy should have subcommand %q", name)
	}
}
