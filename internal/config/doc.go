// Package config loads and watches the empviz configuration file.
//
// Default() returns the built-in configuration used when empviz runs with
// no arguments: seed 42, focus department "Operations", employees.csv and
// report.html in the working directory, an 8x5in chart with 30° tick labels.
//
// Load(path) starts from Default(), overlays the YAML file, then validates
// enums (log level, department, check severity) and required paths.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config. A reload that fails validation is
// logged and skipped.
package config
