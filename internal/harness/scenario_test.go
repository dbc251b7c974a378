package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes YAML content to a temp file and returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validScenarioYAML = `name: basic_insert
description: "Insert one axiom into a single set slot"
slots: [set]
axioms:
  A:
    type: "http://www.w3.org/2002/07/owl#Class"
    iri: "http://www.example.com/c"
flow:
  - op: insert
    axiom: A
    expect: true
assertions:
  - type: count
    slot: 0
    count: 1
`

func TestLoadScenarioValid(t *testing.T) {
	path := writeScenario(t, validScenarioYAML)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "basic_insert", scenario.Name)
	assert.Equal(t, []string{SlotSet}, scenario.Slots)
	require.Len(t, scenario.Flow, 1)
	assert.Equal(t, OpInsert, scenario.Flow[0].Op)
	require.NotNil(t, scenario.Flow[0].Expect)
	assert.True(t, *scenario.Flow[0].Expect)
	require.Len(t, scenario.Assertions, 1)
	assert.Equal(t, AssertCount, scenario.Assertions[0].Type)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	// "assertion:" is a typo for "assertions:".
	path := writeScenario(t, `name: typo
description: "Typo in assertions key"
slots: [set]
axioms:
  A:
    type: "http://www.w3.org/2002/07/owl#Class"
    iri: "http://www.example.com/c"
flow:
  - op: insert
    axiom: A
assertion:
  - type: count
    slot: 0
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenarioMissingName(t *testing.T) {
	path := writeScenario(t, `description: "No name"
slots: [set]
axioms:
  A:
    type: "http://www.w3.org/2002/07/owl#Class"
    iri: "http://www.example.com/c"
flow:
  - op: insert
    axiom: A
assertions:
  - type: count
    slot: 0
    count: 1
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenarioSlotValidation(t *testing.T) {
	tests := []struct {
		name    string
		slots   string
		wantErr string
	}{
		{"no slots", "[]", "between 1 and 4"},
		{"too many slots", "[set, set, set, set, set]", "between 1 and 4"},
		{"unknown kind", "[set, tree]", `unknown slot kind "tree"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, `name: slots_check
description: "Slot list validation"
slots: `+tt.slots+`
axioms:
  A:
    type: "http://www.w3.org/2002/07/owl#Class"
    iri: "http://www.example.com/c"
flow:
  - op: insert
    axiom: A
assertions:
  - type: slots_equal
`)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarioAxiomSpecValidation(t *testing.T) {
	tests := []struct {
		name    string
		axiom   string
		wantErr string
	}{
		{
			"both forms",
			`{ type: "http://www.w3.org/2002/07/owl#Class", iri: "http://www.example.com/c", sub: "http://www.example.com/c", super: "http://www.example.com/d" }`,
			"mutually exclusive",
		},
		{
			"declaration missing iri",
			`{ type: "http://www.w3.org/2002/07/owl#Class" }`,
			"need both type and iri",
		},
		{
			"subclass missing super",
			`{ sub: "http://www.example.com/c" }`,
			"need both sub and super",
		},
		{
			"empty",
			`{}`,
			"either type/iri or sub/super is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, `name: axiom_check
description: "Axiom spec validation"
slots: [set]
axioms:
  A: `+tt.axiom+`
flow:
  - op: insert
    axiom: A
assertions:
  - type: slots_equal
`)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarioFlowValidation(t *testing.T) {
	path := writeScenario(t, `name: flow_check
description: "Flow references an undefined alias"
slots: [set]
axioms:
  A:
    type: "http://www.w3.org/2002/07/owl#Class"
    iri: "http://www.example.com/c"
flow:
  - op: insert
    axiom: B
assertions:
  - type: slots_equal
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown axiom alias "B"`)
}

func TestLoadScenarioUnknownOp(t *testing.T) {
	path := writeScenario(t, `name: op_check
description: "Flow uses an unknown op"
slots: [set]
axioms:
  A:
    type: "http://www.w3.org/2002/07/owl#Class"
    iri: "http://www.example.com/c"
flow:
  - op: upsert
    axiom: A
assertions:
  - type: slots_equal
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown op "upsert"`)
}

func TestLoadScenarioAssertionValidation(t *testing.T) {
	tests := []struct {
		name      string
		assertion string
		wantErr   string
	}{
		{"unknown type", `{ type: trace_contains }`, "unknown assertion type"},
		{"slot out of range", `{ type: count, slot: 2, count: 1 }`, "out of range"},
		{"contains on null slot", `{ type: contains, slot: 1, axiom: A }`, "needs a set slot"},
		{"contains unknown alias", `{ type: contains, slot: 0, axiom: Z }`, `unknown axiom alias "Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, `name: assertion_check
description: "Assertion validation"
slots: [set, "null"]
axioms:
  A:
    type: "http://www.w3.org/2002/07/owl#Class"
    iri: "http://www.example.com/c"
flow:
  - op: insert
    axiom: A
assertions:
  - `+tt.assertion+`
`)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
