// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	cli, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cli.rows)
	assert.Equal(t, 5, cli.cols)
	assert.Equal(t, 7, cli.window)
	assert.Equal(t, "insertion", cli.order)
	assert.Empty(t, cli.metricsAddr)
}

func TestParseFlags_Sources(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "graphdata.conf")
	require.NoError(t, os.WriteFile(cfg, []byte("rows 3\ncols 2\norder sorted\n"), 0o600))
	t.Setenv("RG_DAYS", "21")

	cli, err := parseFlags([]string{"-config", cfg, "-cols", "6"})
	require.NoError(t, err)
	assert.Equal(t, 3, cli.rows, "from config file")
	assert.Equal(t, 6, cli.cols, "command line wins")
	assert.Equal(t, 21, cli.days, "from environment")
	assert.Equal(t, "sorted", cli.order)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"-rows", "0"})
	require.ErrorIs(t, err, errBadFlag)
	_, err = parseFlags([]string{"-order", "random"})
	require.ErrorIs(t, err, errBadFlag)
	_, err = parseFlags([]string{"-nope"})
	require.Error(t, err)
}

func TestRun_Summary(t *testing.T) {
	cli, err := parseFlags([]string{"-rows", "2", "-cols", "3", "-days", "20", "-age-buckets", "2", "-dense"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cli, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3, out.String())
	assert.True(t, strings.HasPrefix(lines[0], "region"))
	assert.True(t, strings.HasPrefix(lines[1], "01"))
	assert.True(t, strings.HasPrefix(lines[2], "02"))
}

func TestRun_Deterministic(t *testing.T) {
	cli, err := parseFlags([]string{"-rows", "2", "-cols", "2", "-days", "10", "-seed", "-1", "-commuters", "0", "-window", "20"})
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, run(context.Background(), cli, &a))
	require.NoError(t, run(context.Background(), cli, &b))
	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), "0.0", "window longer than the series leaves no rolling mean")

	cli.commuters = 0.5
	require.ErrorIs(t, run(context.Background(), cli, &a), errBadFlag)
}

func TestRun_UnknownBackend(t *testing.T) {
	cli, err := parseFlags([]string{"-rows", "1", "-cols", "1", "-backend", "cuda"})
	require.NoError(t, err)
	require.Error(t, run(context.Background(), cli, &bytes.Buffer{}))
}
