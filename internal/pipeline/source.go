package pipeline

import _ "embed"

//go:embed pipeline.go
var source string

// Source returns the code listing embedded in the report: the pipeline
// that produced it.
func Source() string {
	return source
}
