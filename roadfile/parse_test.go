// Package roadfile_test covers the sectioned text reader and the result
// writer.
package roadfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triroute/core"
	"github.com/katalvlaran/triroute/roadfile"
	"github.com/katalvlaran/triroute/solver"
)

const russiaInput = `[CITIES]
1: Москва
2: Санкт-Петербург
3: Нижний Новгород
4: Казань

[ROADS]
1 - 2: 700, 480, 800
1 - 3: 400, 250, 300
2 - 3: 1100, 700, 1200
3 - 4: 350, 300, 500
1 - 4: 800, 600, 1000

[REQUESTS]
Москва -> Санкт-Петербург | (Д,В,С)
Нижний Новгород -> Казань | (С,В,Д)
`

func parse(t *testing.T, input string) *roadfile.Document {
	t.Helper()
	doc, err := roadfile.Parse(strings.NewReader(input))
	require.NoError(t, err)

	return doc
}

func TestParse_Valid(t *testing.T) {
	doc := parse(t, russiaInput)

	assert.Equal(t, 4, doc.Graph.NodeCount())
	assert.Equal(t, 5, doc.Graph.EdgeCount())
	n, ok := doc.Graph.NodeByID(2)
	require.True(t, ok)
	assert.Equal(t, "Санкт-Петербург", n.Name)

	require.Len(t, doc.Requests, 2)
	assert.Equal(t, solver.Request{
		From: "Москва", To: "Санкт-Петербург",
		Priority: core.Priority{core.Distance, core.Time, core.Cost},
	}, doc.Requests[0])
	assert.Equal(t, core.Priority{core.Cost, core.Time, core.Distance}, doc.Requests[1].Priority)
}

func TestParse_WhitespaceAndCodes(t *testing.T) {
	doc := parse(t, "\ufeff  [CITIES]  \n"+
		"  10:   Great   Falls  \n"+
		"20:Little Rock\n"+
		"\n\n"+
		"[ROADS]\n"+
		"10-20:1,2,3\n"+
		"[REQUESTS]\n"+
		"Great   Falls->Little Rock|( t , c , d )\n"+
		"Little Rock -> Great   Falls | (COST,DISTANCE,TIME)\n")

	_, ok := doc.Graph.NodeByName("Great   Falls")
	assert.True(t, ok, "inner spaces are part of the name")
	require.Len(t, doc.Requests, 2)
	assert.Equal(t, "Great   Falls", doc.Requests[0].From)
	assert.Equal(t, "Little Rock", doc.Requests[0].To)
	assert.Equal(t, core.Priority{core.Time, core.Cost, core.Distance}, doc.Requests[0].Priority)
	assert.Equal(t, core.Priority{core.Cost, core.Distance, core.Time}, doc.Requests[1].Priority)
}

func TestParse_UnknownSectionIgnored(t *testing.T) {
	doc := parse(t, "[META]\nanything: goes here\n[CITIES]\n1: A\n2: B\n[ROADS]\n1 - 2: 1, 1, 1\n")
	assert.Equal(t, 2, doc.Graph.NodeCount())
	assert.Empty(t, doc.Requests)
}

func TestParse_DuplicateCityKeepsFirst(t *testing.T) {
	doc := parse(t, "[CITIES]\n1: A\n1: Z\n")
	n, ok := doc.Graph.NodeByID(1)
	require.True(t, ok)
	assert.Equal(t, "A", n.Name)
	assert.False(t, doc.Graph.HasName("Z"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{"city without colon", "[CITIES]\n1 Moscow\n", roadfile.ErrSyntax, 2},
		{"city without id", "[CITIES]\n: Moscow\n", roadfile.ErrSyntax, 2},
		{"road missing cost", "[CITIES]\n1: A\n2: B\n[ROADS]\n1 - 2: 10, 20\n", roadfile.ErrSyntax, 5},
		{"negative weight", "[CITIES]\n1: A\n2: B\n[ROADS]\n1 - 2: -1, 2, 3\n", roadfile.ErrSyntax, 5},
		{"road to undeclared city", "[CITIES]\n1: A\n[ROADS]\n1 - 9: 1, 1, 1\n", core.ErrNodeNotFound, 4},
		{"request unknown city", "[CITIES]\n1: A\n[REQUESTS]\nA -> B | (D,T,C)\n", roadfile.ErrUnknownCity, 4},
		{"request bad criterion", "[CITIES]\n1: A\n2: B\n[REQUESTS]\nA -> B | (D,X,C)\n", core.ErrUnknownCriterion, 5},
		{"request repeated criterion", "[CITIES]\n1: A\n2: B\n[REQUESTS]\nA -> B | (D,D,C)\n", core.ErrInvalidPriority, 5},
		{"request without priority", "[CITIES]\n1: A\n2: B\n[REQUESTS]\nA -> B\n", roadfile.ErrSyntax, 5},
		{"content before section", "1: A\n[CITIES]\n", roadfile.ErrSyntax, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := roadfile.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.wantErr)

			var le *roadfile.LineError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tc.wantLine, le.Line)
			assert.Contains(t, err.Error(), le.Text)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(russiaInput), 0o644))

	doc, err := roadfile.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Requests, 2)

	_, err = roadfile.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
