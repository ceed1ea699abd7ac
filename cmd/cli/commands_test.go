package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParse(t *testing.T) {
	out, err := run(t, "parse", "Team standup every Monday")
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got["IsRecurring"])
	assert.Equal(t, 2, got["FreqType"])
	assert.Equal(t, 2, got["FreqRecurrance"])
}

func TestParse_YAML(t *testing.T) {
	out, err := run(t, "parse", "--output", "yaml", "pay rent next friday")
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0, got["IsRecurring"])
}

func TestTranslate(t *testing.T) {
	out, err := run(t, "translate", "16384")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["translated"])
	assert.EqualValues(t, 8000, got["value"])
	assert.EqualValues(t, 15, got["day"])

	out, err = run(t, "translate", "4")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, false, got["translated"])
	assert.EqualValues(t, 4, got["value"])
}

func TestTranslate_BadInput(t *testing.T) {
	_, err := run(t, "translate", "abc")
	assert.Error(t, err)
}

func TestOutputFlag(t *testing.T) {
	_, err := run(t, "parse", "--output", "xml", "daily")
	assert.Error(t, err)
}
