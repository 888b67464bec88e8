// Package metrics exports the report summary as Prometheus gauges in the
// text exposition format, suitable for the node_exporter textfile
// collector.
//
// WriteTextfile(path, summary) writes:
//   - empviz_department_employees{department}: one sample per department present
//   - empviz_focus_department_employees{department}: the focus department count
//   - empviz_employees_total
//   - empviz_performance_score_mean / _stddev, empviz_satisfaction_rating_mean
//
// ReadText and SumFamily parse such a file back.
package metrics
