package aggregate

import "github.com/obsidianstack/empviz/pkg/types"

// DepartmentCount is the number of records in one department.
type DepartmentCount struct {
	Department string
	Count      int
}

// CountDepartment returns the number of records whose department is dept.
func CountDepartment(t types.Table, dept string) int {
	n := 0
	for _, rec := range t {
		if rec.Department == dept {
			n++
		}
	}
	return n
}

// ByDepartment returns per-department counts in types.Departments order.
// Departments with no records are omitted; names outside the enumeration
// are appended after it in order of first appearance.
func ByDepartment(t types.Table) []DepartmentCount {
	counts := make(map[string]int, len(types.Departments))
	var extra []string
	for _, rec := range t {
		if counts[rec.Department] == 0 && !types.IsDepartment(rec.Department) {
			extra = append(extra, rec.Department)
		}
		counts[rec.Department]++
	}

	out := make([]DepartmentCount, 0, len(counts))
	for _, d := range append(append([]string{}, types.Departments...), extra...) {
		if n := counts[d]; n > 0 {
			out = append(out, DepartmentCount{Department: d, Count: n})
		}
	}
	return out
}
