package aggregate

import (
	"gonum.org/v1/gonum/stat"

	"github.com/obsidianstack/empviz/pkg/types"
)

// Summary holds the aggregate figures shown in the report and exported as
// metrics.
type Summary struct {
	Rows            int
	FocusDepartment string
	FocusCount      int
	Departments     []DepartmentCount

	PerformanceMean   float64
	PerformanceStdDev float64
	SatisfactionMean  float64
}

// Summarize computes the Summary of t. focus names the department whose
// frequency is reported on its own.
func Summarize(t types.Table, focus string) Summary {
	s := Summary{
		Rows:            len(t),
		FocusDepartment: focus,
		FocusCount:      CountDepartment(t, focus),
		Departments:     ByDepartment(t),
	}
	if len(t) == 0 {
		return s
	}

	perf := make([]float64, len(t))
	sat := make([]float64, len(t))
	for i, rec := range t {
		perf[i] = rec.PerformanceScore
		sat[i] = rec.SatisfactionRating
	}

	s.PerformanceMean, s.PerformanceStdDev = stat.MeanStdDev(perf, nil)
	s.SatisfactionMean = stat.Mean(sat, nil)
	return s
}
