package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieu-m/arcosphere/solver"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitBadInput, exitCode(inputError(errors.New("bad"))))
	assert.Equal(t, exitTruncated, exitCode(fmt.Errorf("solve: %w", solver.ErrTruncated)))
	assert.Equal(t, exitNoSolution, exitCode(solver.ErrNoSolution))
	assert.Equal(t, exitNoSolution, exitCode(errors.New("anything else")))
}

func TestSolveCommand(t *testing.T) {
	out, err := runCommand(t, "solve", "EP", "LX")
	require.NoError(t, err)
	assert.Contains(t, out, "2 path(s) with 1 catalyst(s), 2 recipe(s):")
	assert.Contains(t, out, "EP -> LX + G => GP -> OX | EO -> GL")
	assert.Contains(t, out, "EP -> LX + O => EO -> GL | GP -> OX")
}

func TestSolveCommandPlan(t *testing.T) {
	out, err := runCommand(t, "solve", "--plan", "--catalysts", "O", "EP", "LX")
	require.NoError(t, err)
	assert.Contains(t, out, "1 path(s) with 1 catalyst(s), 2 recipe(s):")
	assert.Contains(t, out, "  1. [P] + [EO] + [L] | EO -> GL")
	assert.Contains(t, out, "  2. [L] + [GP] + [LOX] | GP -> OX")
}

func TestSolveCommandNoSolution(t *testing.T) {
	_, err := runCommand(t, "solve", "EP", "EG")
	require.Error(t, err)
	assert.Equal(t, exitNoSolution, exitCode(err))
}

func TestSolveCommandBadInput(t *testing.T) {
	tests := [][]string{
		{"solve", "AB", "LX"},
		{"solve", "EP"},
		{"solve", "-n", "0", "EP", "LX"},
		{"solve", "--sort", "weight", "EP", "LX"},
		{"verify", "not a path"},
		{"plan"},
	}
	for _, args := range tests {
		_, err := runCommand(t, args...)
		require.Error(t, err, "args %v", args)
		assert.Equal(t, exitBadInput, exitCode(err), "args %v", args)
	}
}

func TestVerifyCommand(t *testing.T) {
	out, err := runCommand(t, "verify", "EP -> LX + O => EO -> LG | PG -> XO")
	require.NoError(t, err)
	assert.Contains(t, out, "valid path: EP -> LX + O => EO -> GL | GP -> OX")
}

func TestVerifyCommandInvalid(t *testing.T) {
	_, err := runCommand(t, "verify", "EP -> LX + O => PG -> XO | EO -> LG")
	require.Error(t, err)
	assert.Equal(t, exitNoSolution, exitCode(err))
	assert.True(t, strings.Contains(err.Error(), "could not apply"))
}

func TestPlanCommand(t *testing.T) {
	out, err := runCommand(t, "plan", "EP -> LX + O => EO -> LG | PG -> XO")
	require.NoError(t, err)
	assert.Contains(t, out, "EP -> LX + O => EO -> GL | GP -> OX")
	assert.Contains(t, out, "  2. [L] + [GP] + [LOX] | GP -> OX")
}
