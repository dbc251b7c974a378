package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalSnapshotCanonical(t *testing.T) {
	snapshot := Snapshot{
		ScenarioName: "demo",
		Counts:       []int{1, 0},
		Trace: []TraceEvent{
			{Op: OpInsert, Axiom: "A", Changed: true},
		},
	}

	data, err := marshalSnapshot(&snapshot)
	require.NoError(t, err)

	// Keys sorted at every level, compact, no trailing newline.
	assert.Equal(t,
		`{"counts":[1,0],"scenario_name":"demo","trace":[{"axiom":"A","changed":true,"op":"insert"}]}`,
		string(data))
}

func TestMarshalSnapshotDeterministic(t *testing.T) {
	snapshot := Snapshot{
		ScenarioName: "demo",
		Counts:       []int{3},
		Trace: []TraceEvent{
			{Op: OpInsert, Axiom: "A", Changed: true},
			{Op: OpTake, Axiom: "A", Changed: true},
		},
	}

	first, err := marshalSnapshot(&snapshot)
	require.NoError(t, err)
	second, err := marshalSnapshot(&snapshot)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGoldenScenarios(t *testing.T) {
	names := []string{
		"single_set_insert_remove",
		"four_slot_fan_out",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}
