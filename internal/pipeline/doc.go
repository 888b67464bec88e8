// Package pipeline runs the report stages in order:
//
//	generate → write CSV (→ XLSX) → aggregate and print
//	→ render chart → evaluate checks (→ metrics textfile) → write report
//
// Each stage receives the output of the previous one; nothing reads back a
// later stage's output. The report's code listing is pipeline.go itself,
// bundled at build time with go:embed.
package pipeline
