package aggregate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/obsidianstack/empviz/pkg/types"
)

// samples mirrors the five fixed leading rows; none is in Operations.
var samples = types.Table{
	{EmployeeID: "EMP001", Department: "Finance"},
	{EmployeeID: "EMP002", Department: "R&D"},
	{EmployeeID: "EMP003", Department: "Marketing"},
	{EmployeeID: "EMP004", Department: "IT"},
	{EmployeeID: "EMP005", Department: "Finance"},
}

// tableOf builds a types.TableSize table where every row is in dept.
func tableOf(dept string) types.Table {
	t := make(types.Table, types.TableSize)
	for i := range t {
		t[i] = types.Record{Department: dept}
	}
	return t
}

// --- CountDepartment ---

func TestCountDepartment_NoMatches(t *testing.T) {
	if got := CountDepartment(tableOf("Sales"), "Operations"); got != 0 {
		t.Errorf("CountDepartment = %d, want 0", got)
	}
}

func TestCountDepartment_AllMatch(t *testing.T) {
	if got := CountDepartment(tableOf("Operations"), "Operations"); got != 100 {
		t.Errorf("CountDepartment = %d, want 100", got)
	}
}

func TestCountDepartment_SamplesPlusRandomRows(t *testing.T) {
	others := []string{"HR", "Sales", "IT", "Finance"}
	tbl := append(types.Table{}, samples...)
	for i := 0; i < 95; i++ {
		dept := others[i%len(others)]
		if i%3 == 0 && i < 72 {
			dept = "Operations"
		}
		tbl = append(tbl, types.Record{Department: dept})
	}
	if len(tbl) != 100 {
		t.Fatalf("table size = %d, want 100", len(tbl))
	}
	if got := CountDepartment(tbl, "Operations"); got != 24 {
		t.Errorf("CountDepartment = %d, want 24", got)
	}
}

func TestCountDepartment_Empty(t *testing.T) {
	if got := CountDepartment(nil, "Operations"); got != 0 {
		t.Errorf("CountDepartment(nil) = %d, want 0", got)
	}
}

// --- ByDepartment ---

func TestByDepartment_EnumerationOrder(t *testing.T) {
	tbl := types.Table{
		{Department: "Sales"},
		{Department: "Operations"},
		{Department: "Finance"},
		{Department: "Operations"},
		{Department: "R&D"},
	}
	want := []DepartmentCount{
		{"Finance", 1},
		{"R&D", 1},
		{"Operations", 2},
		{"Sales", 1},
	}
	if diff := cmp.Diff(want, ByDepartment(tbl)); diff != "" {
		t.Errorf("ByDepartment (-want +got):\n%s", diff)
	}
}

func TestByDepartment_UnknownAppended(t *testing.T) {
	tbl := types.Table{{Department: "Legal"}, {Department: "IT"}, {Department: "Legal"}}
	want := []DepartmentCount{{"IT", 1}, {"Legal", 2}}
	if diff := cmp.Diff(want, ByDepartment(tbl)); diff != "" {
		t.Errorf("ByDepartment (-want +got):\n%s", diff)
	}
}

func TestByDepartment_SumsToRows(t *testing.T) {
	tbl := append(append(types.Table{}, samples...), tableOf("Operations")[:95]...)
	total := 0
	for _, dc := range ByDepartment(tbl) {
		total += dc.Count
	}
	if total != len(tbl) {
		t.Errorf("sum of counts = %d, want %d", total, len(tbl))
	}
}

// --- Summarize ---

func TestSummarize(t *testing.T) {
	tbl := types.Table{
		{Department: "Operations", PerformanceScore: 70, SatisfactionRating: 4},
		{Department: "Operations", PerformanceScore: 80, SatisfactionRating: 3},
		{Department: "IT", PerformanceScore: 90, SatisfactionRating: 5},
	}
	s := Summarize(tbl, "Operations")

	if s.Rows != 3 {
		t.Errorf("Rows = %d, want 3", s.Rows)
	}
	if s.FocusCount != 2 {
		t.Errorf("FocusCount = %d, want 2", s.FocusCount)
	}
	if s.PerformanceMean != 80 {
		t.Errorf("PerformanceMean = %v, want 80", s.PerformanceMean)
	}
	// Sample standard deviation of 70, 80, 90.
	if math.Abs(s.PerformanceStdDev-10) > 1e-9 {
		t.Errorf("PerformanceStdDev = %v, want 10", s.PerformanceStdDev)
	}
	if s.SatisfactionMean != 4 {
		t.Errorf("SatisfactionMean = %v, want 4", s.SatisfactionMean)
	}
	if len(s.Departments) != 2 {
		t.Errorf("Departments = %v, want 2 entries", s.Departments)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, "Operations")
	if s.Rows != 0 || s.FocusCount != 0 || s.PerformanceMean != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero values", s)
	}
}
