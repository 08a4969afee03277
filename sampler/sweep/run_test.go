package sweep

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SmallGrid(t *testing.T) {
	// GIVEN a small grid cheap enough to evaluate exactly
	spec := &Spec{
		CSPs:    []int{10},
		Taus:    []int{2, 3},
		Workers: 2,
	}
	require.NoError(t, spec.Validate())

	// WHEN the sweep runs
	rows, err := Run(spec)
	require.NoError(t, err)

	// THEN rows come back in grid order with ordered thresholds
	require.Len(t, rows, 2)
	assert.Equal(t, 10, rows[0].CSP)
	assert.Equal(t, 2, rows[0].Tau)
	assert.Equal(t, 10, rows[1].CSP)
	assert.Equal(t, 3, rows[1].Tau)
	for _, row := range rows {
		assert.Positive(t, row.TOpenEighth, "csp=%d tau=%d", row.CSP, row.Tau)
		assert.LessOrEqual(t, row.TOpenEighth, row.TOpenQuarter)
		assert.LessOrEqual(t, row.TOpenQuarter, row.TOpenHalf)
	}
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{CSP: 40, Tau: 8, TOpenEighth: 12, TOpenQuarter: 13, TOpenHalf: 15},
		{CSP: 40, Tau: 10, TOpenEighth: 11, TOpenQuarter: 12, TOpenHalf: 14},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "lambda,tau,t_open_1_8,t_open_1_4,t_open_1_2", lines[0])
	assert.Equal(t, "40,8,12,13,15", lines[1])
	assert.Equal(t, "40,10,11,12,14", lines[2])
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	rows := []Row{{CSP: 45, Tau: 8, TOpenEighth: 9, TOpenQuarter: 10, TOpenHalf: 12}}

	require.NoError(t, WriteCSVFile(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "45,8,9,10,12")
}
