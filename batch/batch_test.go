package batch_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/api"
	"github.com/katalvlaran/linsys/batch"
	"github.com/katalvlaran/linsys/solver"
)

const problems = `
problems:
  - name: gauss
    method: gauss
    A: [[2, 1], [1, 3]]
    b: [4, 7]
  - name: singular-lu
    method: lu
    A: [[1, 2], [2, 4]]
    b: [3, 6]
  - name: fractions
    method: gauss-jordan
    A: [["1/2", 0], [0, "0.25"]]
    b: [1, 1]
    pivoting: false
  - method: gauss-seidel
    A: [[10, 1], [1, 10]]
    b: [11, 11]
    tolerance: 1e-8
    max_iterations: 50
`

func TestLoad(t *testing.T) {
	ps, err := batch.Load(strings.NewReader(problems))
	require.NoError(t, err)
	require.Len(t, ps, 4)
	require.Equal(t, "gauss", ps[0].Method)
	require.Equal(t, "1/2", ps[2].A[0][0].String())
	require.NotNil(t, ps[2].Pivoting)
	require.False(t, *ps[2].Pivoting)
	require.Equal(t, "problem-4", ps[3].Name)
	require.Equal(t, 1e-8, *ps[3].Tolerance)
	require.Equal(t, 50, *ps[3].MaxIterations)

	_, err = batch.Load(strings.NewReader("problems: []\n"))
	require.ErrorIs(t, err, batch.ErrNoProblems)

	_, err = batch.Load(strings.NewReader("problems:\n  - name: x\n    colour: red\n"))
	require.Error(t, err)

	_, err = batch.Load(strings.NewReader("problems:\n  - method: gauss\n    A: [[nope]]\n    b: [1]\n"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte(problems), 0o600))
	ps, err := batch.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, ps, 4)

	_, err = batch.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	ps, err := batch.Load(strings.NewReader(problems))
	require.NoError(t, err)

	out, err := batch.Run(context.Background(), ps, 2, nil, api.NewDefaults())
	require.NoError(t, err)
	require.Len(t, out, 4)

	// input order is preserved and failures stay local
	require.Equal(t, "gauss", out[0].Name)
	require.NoError(t, out[0].Err)
	require.Equal(t, map[string]string{"x": "1", "y": "2"}, out[0].Response.Solution.Variables)

	require.ErrorIs(t, out[1].Err, solver.ErrSingular)
	require.Nil(t, out[1].Response)

	require.NoError(t, out[2].Err)
	require.Equal(t, []string{"2", "4"}, out[2].Response.Solution.Vector)

	require.NoError(t, out[3].Err)
	require.True(t, *out[3].Response.Converged)

	solved, failed := batch.Summary(out)
	require.Equal(t, 3, solved)
	require.Equal(t, 1, failed)
}

func TestRun_Cancelled(t *testing.T) {
	ps, err := batch.Load(strings.NewReader(problems))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := batch.Run(ctx, ps, 0, nil, api.NewDefaults())
	require.ErrorIs(t, err, context.Canceled)
	for _, o := range out {
		require.ErrorIs(t, o.Err, context.Canceled)
		require.NotEmpty(t, o.Name)
	}
}

func TestWriteReport(t *testing.T) {
	ps, err := batch.Load(strings.NewReader(problems))
	require.NoError(t, err)
	out, err := batch.Run(context.Background(), ps, 4, nil, api.NewDefaults())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, batch.WriteReport(&buf, out, false))
	var doc struct {
		Results []struct {
			Name     string            `yaml:"name"`
			Solution map[string]string `yaml:"solution"`
			Residual string            `yaml:"residual"`
			Error    string            `yaml:"error"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Results, 4)
	require.Equal(t, "2", doc.Results[0].Solution["y"])
	require.Equal(t, "0", doc.Results[0].Residual)
	require.Contains(t, doc.Results[1].Error, "singular")

	buf.Reset()
	require.NoError(t, batch.WriteReport(&buf, out, true))
	require.Contains(t, buf.String(), "steps:")
}

func TestRun_LogsShareRunID(t *testing.T) {
	ps, err := batch.Load(strings.NewReader(problems))
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	_, err = batch.Run(context.Background(), ps, 2, logger, api.NewDefaults())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, len(ps))
	ids := map[string]bool{}
	for _, line := range lines {
		for _, field := range strings.Fields(line) {
			if strings.HasPrefix(field, "run_id=") {
				ids[field] = true
			}
		}
	}
	require.Len(t, ids, 1)
	require.Contains(t, logs.String(), "problem failed")
}
