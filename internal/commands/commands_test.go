package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearch_PrintsResultsAndShareLink(t *testing.T) {
	out, err := runCmd(t, "search", "--status", "open", "--skill", "React")
	require.NoError(t, err)

	assert.Contains(t, out, "E-commerce Platform Development")
	assert.Contains(t, out, "Data Analytics Dashboard")
	assert.NotContains(t, out, "Blockchain-based Supply Chain Solution")
	assert.Contains(t, out, "Found 2 project(s)")
	assert.Contains(t, out, "Share: /projects?skills=React&status=open")
}

func TestSearch_AppliesFlagsOnTopOfQuery(t *testing.T) {
	out, err := runCmd(t, "search", "--json", "--query", "/projects?status=open&skills=React", "--search", "blockchain")
	require.NoError(t, err)

	var got searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0, got.Total)
	assert.Equal(t, "search=blockchain&skills=React&status=open", got.Query)
}

func TestSearch_SkillToggleTwiceRemovesIt(t *testing.T) {
	out, err := runCmd(t, "search", "--json", "--skill", "React", "--skill", "React")
	require.NoError(t, err)

	var got searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 5, got.Total)
	assert.Empty(t, got.Query)
	assert.Equal(t, "/projects", got.Location)
}

func TestSearch_NoResults(t *testing.T) {
	out, err := runCmd(t, "search", "--skill", "COBOL")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects match the current filters.")
}

func TestDecode_NormalisesLink(t *testing.T) {
	out, err := runCmd(t, "--path", "/explore", "decode", "/projects?status=weird&skills=React,,Python,React&category=Finance")
	require.NoError(t, err)

	assert.Contains(t, out, "status:   all")
	assert.Contains(t, out, "category: Finance")
	assert.Contains(t, out, "skills:   React, Python")
	assert.Contains(t, out, "query:    category=Finance&skills=React%2CPython")
	assert.Contains(t, out, "link:     /explore?category=Finance&skills=React%2CPython")
}

func TestDecode_RequiresArgument(t *testing.T) {
	_, err := runCmd(t, "decode")
	assert.Error(t, err)
}
