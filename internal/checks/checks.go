package checks

import (
	"log/slog"

	"github.com/obsidianstack/empviz/internal/aggregate"
	"github.com/obsidianstack/empviz/internal/config"
)

// Result is the outcome of one check.
type Result struct {
	Name      string
	Condition string
	Severity  string

	// Fired is true when the condition held.
	Fired bool

	// Value is the observed value of the condition's field.
	Value float64

	// Invalid is true when the condition could not be parsed.
	Invalid bool
}

// Evaluate runs every configured check against s, in order. Fired checks
// are logged at WARN, unparseable ones at ERROR.
func Evaluate(cfgs []config.CheckConfig, s aggregate.Summary) []Result {
	if len(cfgs) == 0 {
		return nil
	}
	out := make([]Result, 0, len(cfgs))
	for _, c := range cfgs {
		fired, v, ok := evalCondition(c.Condition, s)
		r := Result{
			Name:      c.Name,
			Condition: c.Condition,
			Severity:  c.Severity,
			Fired:     fired,
			Value:     v,
			Invalid:   !ok,
		}
		switch {
		case r.Invalid:
			slog.Error("checks: invalid condition", "check", c.Name, "condition", c.Condition)
		case r.Fired:
			slog.Warn("checks: check fired",
				"check", c.Name,
				"severity", c.Severity,
				"condition", c.Condition,
				"value", v,
			)
		default:
			slog.Debug("checks: check passed", "check", c.Name, "value", v)
		}
		out = append(out, r)
	}
	return out
}

// Fired returns the results whose condition held.
func Fired(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Fired {
			out = append(out, r)
		}
	}
	return out
}
