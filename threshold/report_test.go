package threshold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointFailureRate(t *testing.T) {
	assert.Equal(t, 0.0, Point{}.FailureRate())
	assert.InDelta(t, 0.25, Point{Trials: 4, LogicalFailures: 1}.FailureRate(), 1e-12)
}

func TestReportWriteJSONRoundTrip(t *testing.T) {
	report := Report{
		RunID:  uuid.New(),
		Family: Toric,
		Points: []Point{
			{Distance: 3, ErrorRate: 0.05, Trials: 100, LogicalFailures: 4, DecodeRounds: 210},
		},
	}

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.WriteJSON(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, report, decoded)
}

func TestReportWriteJSONBadPath(t *testing.T) {
	report := Report{RunID: uuid.New(), Family: Toric}
	err := report.WriteJSON(filepath.Join(t.TempDir(), "no-such-dir", "report.json"))
	assert.Error(t, err)
}
