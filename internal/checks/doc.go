// Package checks evaluates threshold conditions such as "focus_count < 10"
// against the report summary. Results are informational: they are logged
// and listed in the report, and never fail a run.
package checks
