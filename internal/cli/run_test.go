package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/cli"
	"github.com/katalvlaran/hillclimb/pathfinder"
)

const canonical = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeBoth(t, stdin, args...)
	return out, err
}

// executeBoth runs the root command and returns stdout and stderr separately.
func executeBoth(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRoot_TextFromStdin(t *testing.T) {
	out, err := execute(t, canonical)
	require.NoError(t, err)
	assert.Equal(t, "Answer Part 1 = 31\nAnswer Part 2 = 29\n", out)
}

func TestRoot_SingleModeFromFile(t *testing.T) {
	path := writeFile(t, "input.txt", canonical)
	out, err := execute(t, "", "-i", path, "--mode", "single")
	require.NoError(t, err)
	assert.Equal(t, "Answer Part 1 = 31\n", out)
}

func TestRoot_TableAndTime(t *testing.T) {
	out, err := execute(t, canonical, "--output", "table", "--time", "-v")
	require.NoError(t, err)
	for _, want := range []string{"PART", "MODE", "single", "multi", "31", "29", "Total Runtime:"} {
		assert.Contains(t, out, want)
	}
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, "Sab\nbc\n")
	require.ErrorIs(t, err, gridgraph.ErrMalformedGrid)

	_, err = execute(t, "Szb\nzzE\n")
	require.ErrorIs(t, err, pathfinder.ErrUnreachableTarget)

	_, err = execute(t, canonical, "--mode", "diagonal")
	require.ErrorIs(t, err, cli.ErrInvalidConfig)

	_, err = execute(t, "", "-i", "does-not-exist.txt")
	require.Error(t, err)

	_, err = execute(t, canonical, "positional")
	require.Error(t, err)
}

// TestRoot_LogsToCommandStderr keeps log lines on the command's error writer.
func TestRoot_LogsToCommandStderr(t *testing.T) {
	out, errOut, err := executeBoth(t, "Szb\nzzE\n", "--mode", "single")
	require.ErrorIs(t, err, pathfinder.ErrUnreachableTarget)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `"msg":"search failed"`)
	assert.Contains(t, errOut, `"mode":"single"`)

	out, errOut, err = executeBoth(t, canonical, "-v")
	require.NoError(t, err)
	assert.Equal(t, "Answer Part 1 = 31\nAnswer Part 2 = 29\n", out)
	assert.Contains(t, errOut, `"msg":"heightmap loaded"`)
	assert.NotContains(t, out, "heightmap loaded")
}

// TestRoot_MaxSteps caps the search depth; the canonical answers are 31 and 29.
func TestRoot_MaxSteps(t *testing.T) {
	_, err := execute(t, canonical, "--max-steps", "30", "--mode", "single")
	require.ErrorIs(t, err, pathfinder.ErrUnreachableTarget)

	out, err := execute(t, canonical, "--max-steps", "30", "--mode", "multi")
	require.NoError(t, err)
	assert.Equal(t, "Answer Part 2 = 29\n", out)

	out, errOut, err := executeBoth(t, canonical, "--max-steps", "31", "-v")
	require.NoError(t, err)
	assert.Equal(t, "Answer Part 1 = 31\nAnswer Part 2 = 29\n", out)
	assert.Contains(t, errOut, `"peak_frontier":`)

	_, err = execute(t, canonical, "--max-steps", "-1")
	require.ErrorIs(t, err, cli.ErrInvalidConfig)
}

// TestRun_Direct drives Run without cobra, with a nil logger.
func TestRun_Direct(t *testing.T) {
	var out bytes.Buffer
	cfg := &cli.Config{Input: "", Mode: "multi", Output: cli.OutputText}
	require.NoError(t, cli.Run(context.Background(), cfg, strings.NewReader(canonical), &out, nil))
	assert.Equal(t, "Answer Part 2 = 29\n", out.String())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &cli.Config{Mode: cli.ModeBoth, Output: cli.OutputText}
	err := cli.Run(ctx, cfg, strings.NewReader(canonical), &bytes.Buffer{}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
