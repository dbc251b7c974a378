package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot captures a scenario execution for golden comparison.
// All fields use canonical JSON serialization for deterministic bytes.
type Snapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Counts       []int        `json:"counts"`
	Trace        []TraceEvent `json:"trace"`
}

// toCanonicalMap converts a Snapshot to a map[string]any so that JSON
// serialization emits keys in sorted order at every level.
func (s *Snapshot) toCanonicalMap() map[string]any {
	traceList := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		traceList[i] = map[string]any{
			"op":      event.Op,
			"axiom":   event.Axiom,
			"changed": event.Changed,
		}
	}

	counts := make([]any, len(s.Counts))
	for i, n := range s.Counts {
		counts[i] = n
	}

	return map[string]any{
		"scenario_name": s.ScenarioName,
		"counts":        counts,
		"trace":         traceList,
	}
}

// marshalSnapshot serializes the snapshot canonically: sorted keys, no
// HTML escaping, no trailing newline.
func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s.toCanonicalMap()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// RunWithGolden executes a scenario and compares the snapshot against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails. Test failure (via goldie)
// occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	snapshot := Snapshot{
		ScenarioName: scenario.Name,
		Counts:       result.Counts,
		Trace:        result.Trace,
	}

	data, err := marshalSnapshot(&snapshot)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
