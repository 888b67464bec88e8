package checks

import (
	"strconv"
	"strings"

	"github.com/obsidianstack/empviz/internal/aggregate"
)

// evalCondition evaluates a check condition string against a Summary.
//
// Supported expressions (field operator value):
//
//	focus_count < 10
//	rows == 100
//	departments < 7
//	performance_mean < 65
//	performance_stddev > 12
//	satisfaction_mean <= 3
//
// Returns (fires bool, observed value float64, ok bool). ok is false if the
// expression cannot be parsed or the field is unknown; such a check never
// fires.
func evalCondition(cond string, s aggregate.Summary) (bool, float64, bool) {
	parts := strings.Fields(cond)
	if len(parts) != 3 {
		return false, 0, false
	}
	field, op, rhs := parts[0], parts[1], parts[2]

	v, ok := numericField(field, s)
	if !ok {
		return false, 0, false
	}
	threshold, err := strconv.ParseFloat(rhs, 64)
	if err != nil {
		return false, v, false
	}
	fires, ok := compareFloat(v, op, threshold)
	return fires, v, ok
}

// numericField maps a field name to its value in the summary.
func numericField(field string, s aggregate.Summary) (float64, bool) {
	switch field {
	case "focus_count":
		return float64(s.FocusCount), true
	case "rows":
		return float64(s.Rows), true
	case "departments":
		return float64(len(s.Departments)), true
	case "performance_mean":
		return s.PerformanceMean, true
	case "performance_stddev":
		return s.PerformanceStdDev, true
	case "satisfaction_mean":
		return s.SatisfactionMean, true
	default:
		return 0, false
	}
}

// compareFloat applies a comparison operator to two float64 values.
func compareFloat(v float64, op string, threshold float64) (bool, bool) {
	switch op {
	case ">":
		return v > threshold, true
	case ">=":
		return v >= threshold, true
	case "<":
		return v < threshold, true
	case "<=":
		return v <= threshold, true
	case "==":
		return v == threshold, true
	default:
		return false, false
	}
}
