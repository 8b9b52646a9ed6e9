package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "shortlink "+Version+"\n", out.String())
}

func TestRejectsExtraArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"https://a.example", "https://b.example"})

	assert.Error(t, cmd.Execute())
}

func TestRejectsBadAPIURL(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--api-url", "not a url"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api url")
}
