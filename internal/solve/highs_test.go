package solve

import (
	"math"
	"testing"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/oreworks/orecalc/internal/model"
)

func testProblem() *model.Problem {
	return &model.Problem{
		Variables: []model.Variable{
			{Name: "A", Lower: 0, Upper: math.Inf(1), Integer: true},
			{Name: "B", Lower: 0, Upper: math.Inf(1), Integer: true},
			{Name: "aggregate_price", Lower: math.Inf(-1), Upper: math.Inf(1)},
		},
		Constraints: []model.Constraint{
			{
				Name:  "price",
				Terms: []model.Term{{Var: "A", Coeff: 10}, {Var: "B", Coeff: 8}, {Var: "aggregate_price", Coeff: -1}},
				Lower: 0,
				Upper: 0,
			},
			{
				Name:  "produce_Widget",
				Terms: []model.Term{{Var: "A", Coeff: 5}, {Var: "B", Coeff: 4}},
				Lower: 20,
				Upper: math.Inf(1),
			},
		},
		Objective: []model.Term{{Var: "aggregate_price", Coeff: 1}},
	}
}

func TestBuildHighsModelColumns(t *testing.T) {
	m, names, err := buildHighsModel(testProblem())
	if err != nil {
		t.Fatalf("buildHighsModel failed: %v", err)
	}

	wantNames := []string{"A", "B", "aggregate_price"}
	if len(names) != len(wantNames) {
		t.Fatalf("Expected %d columns, got %d", len(wantNames), len(names))
	}
	for i, want := range wantNames {
		if names[i] != want {
			t.Errorf("Column %d: expected %s, got %s", i, want, names[i])
		}
	}

	if m.ColCosts[0] != 0 || m.ColCosts[1] != 0 || m.ColCosts[2] != 1 {
		t.Errorf("Cost vector mismatch: %v", m.ColCosts)
	}
	if m.ColLower[0] != 0 || !math.IsInf(m.ColUpper[0], 1) {
		t.Errorf("Bounds of A mismatch: [%v, %v]", m.ColLower[0], m.ColUpper[0])
	}
	if !math.IsInf(m.ColLower[2], -1) || !math.IsInf(m.ColUpper[2], 1) {
		t.Errorf("Aggregate must be free: [%v, %v]", m.ColLower[2], m.ColUpper[2])
	}
	if m.VarTypes[0] != highs.Integer || m.VarTypes[1] != highs.Integer {
		t.Error("Purchase variables must be integer")
	}
	if m.VarTypes[2] != highs.Continuous {
		t.Error("Aggregate variable must be continuous")
	}
}

func TestBuildHighsModelRows(t *testing.T) {
	m, _, err := buildHighsModel(testProblem())
	if err != nil {
		t.Fatalf("buildHighsModel failed: %v", err)
	}

	if m.NumConstraints() != 2 {
		t.Fatalf("Expected 2 rows, got %d", m.NumConstraints())
	}
	if m.RowLower[0] != 0 || m.RowUpper[0] != 0 {
		t.Errorf("Equality row bounds mismatch: [%v, %v]", m.RowLower[0], m.RowUpper[0])
	}
	if m.RowLower[1] != 20 || !math.IsInf(m.RowUpper[1], 1) {
		t.Errorf("Quota row bounds mismatch: [%v, %v]", m.RowLower[1], m.RowUpper[1])
	}

	// 3 entries in the equality row, 2 in the quota row.
	if len(m.ConstMatrix) != 5 {
		t.Fatalf("Expected 5 nonzeros, got %d", len(m.ConstMatrix))
	}
	nz := m.ConstMatrix[2]
	if nz.Row != 0 || nz.Col != 2 || nz.Val != -1 {
		t.Errorf("Aggregate link entry mismatch: %+v", nz)
	}
}

func TestBuildHighsModelRejectsDuplicates(t *testing.T) {
	p := &model.Problem{
		Variables: []model.Variable{
			{Name: "A", Upper: math.Inf(1)},
			{Name: "A", Upper: math.Inf(1)},
		},
	}
	if _, _, err := buildHighsModel(p); err == nil {
		t.Error("Expected error for duplicate variable names")
	}
}

func TestBuildHighsModelRejectsUnknownVariables(t *testing.T) {
	p := &model.Problem{
		Variables: []model.Variable{{Name: "A", Upper: math.Inf(1)}},
		Constraints: []model.Constraint{
			{Name: "bad", Terms: []model.Term{{Var: "Z", Coeff: 1}}, Lower: 0, Upper: 0},
		},
	}
	if _, _, err := buildHighsModel(p); err == nil {
		t.Error("Expected error for constraint on unknown variable")
	}

	p = &model.Problem{
		Variables: []model.Variable{{Name: "A", Upper: math.Inf(1)}},
		Objective: []model.Term{{Var: "Z", Coeff: 1}},
	}
	if _, _, err := buildHighsModel(p); err == nil {
		t.Error("Expected error for objective on unknown variable")
	}
}

func TestMapStatus(t *testing.T) {
	cases := []struct {
		name   string
		status highs.ModelStatus
		want   Status
	}{
		{"optimal", highs.ModelStatusOptimal, StatusOptimal},
		{"infeasible", highs.ModelStatusInfeasible, StatusInfeasible},
		{"unbounded", highs.ModelStatusUnbounded, StatusUnbounded},
		{"unbounded_or_infeasible", highs.ModelStatusUnboundedOrInfeasible, StatusInfeasible},
		{"time_limit", highs.ModelStatusTimeLimit, StatusTimedOut},
	}
	for _, tc := range cases {
		got, err := mapStatus(&highs.Solution{Status: tc.status})
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
