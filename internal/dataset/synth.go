package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/obsidianstack/empviz/pkg/types"
)

// Distribution parameters for the generated columns.
const (
	perfMean   = 72.0
	perfStdDev = 8.0

	satMean   = 3.8
	satStdDev = 0.7
	satMin    = 1.0
	satMax    = 5.0

	yearsMin = 1
	yearsMax = 15
)

// departmentWeights are the draw probabilities for types.Departments,
// index for index. Operations is weighted up so it appears often.
var departmentWeights = []float64{0.15, 0.15, 0.15, 0.15, 0.25, 0.075, 0.075}

// SampleRecords are written over the first rows of every generated table.
var SampleRecords = []types.Record{
	{EmployeeID: "EMP001", Department: types.DeptFinance, Region: "Asia Pacific", PerformanceScore: 74.34, YearsExperience: 7, SatisfactionRating: 4.6},
	{EmployeeID: "EMP002", Department: types.DeptRnD, Region: "Latin America", PerformanceScore: 67.17, YearsExperience: 5, SatisfactionRating: 4.3},
	{EmployeeID: "EMP003", Department: types.DeptMarketing, Region: "North America", PerformanceScore: 71.87, YearsExperience: 9, SatisfactionRating: 3.6},
	{EmployeeID: "EMP004", Department: types.DeptIT, Region: "Europe", PerformanceScore: 71.98, YearsExperience: 5, SatisfactionRating: 3.1},
	{EmployeeID: "EMP005", Department: types.DeptFinance, Region: "Latin America", PerformanceScore: 82.42, YearsExperience: 7, SatisfactionRating: 3.9},
}

// NewSource returns the seeded source Generate expects.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// Generate builds a Table of types.TableSize records from src.
//
// Columns are drawn one at a time, in column order, so a given source
// always yields the same table. SampleRecords then replace the leading rows.
func Generate(src rand.Source) types.Table {
	r := rand.New(src)
	n := types.TableSize

	depts := make([]string, n)
	pick := newCategorical(departmentWeights)
	for i := range depts {
		depts[i] = types.Departments[pick(r)]
	}

	regions := make([]string, n)
	for i := range regions {
		regions[i] = types.Regions[r.IntN(len(types.Regions))]
	}

	perf := make([]float64, n)
	for i := range perf {
		perf[i] = round(r.NormFloat64()*perfStdDev+perfMean, 2)
	}

	years := make([]int, n)
	for i := range years {
		years[i] = yearsMin + r.IntN(yearsMax-yearsMin+1)
	}

	sat := make([]float64, n)
	for i := range sat {
		sat[i] = round(clamp(r.NormFloat64()*satStdDev+satMean, satMin, satMax), 1)
	}

	t := make(types.Table, n)
	for i := range t {
		t[i] = types.Record{
			EmployeeID:         fmt.Sprintf("EMP%03d", i+1),
			Department:         depts[i],
			Region:             regions[i],
			PerformanceScore:   perf[i],
			YearsExperience:    years[i],
			SatisfactionRating: sat[i],
		}
	}

	copy(t, SampleRecords)
	return t
}

// newCategorical returns a sampler over the indices of weights.
func newCategorical(weights []float64) func(*rand.Rand) int {
	cum := floats.CumSum(make([]float64, len(weights)), weights)
	total := cum[len(cum)-1]
	return func(r *rand.Rand) int {
		u := r.Float64() * total
		i := sort.SearchFloat64s(cum, u)
		if i >= len(cum) {
			i = len(cum) - 1
		}
		return i
	}
}

// clamp restricts v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
