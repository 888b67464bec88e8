// Package aggregate computes department frequencies and summary statistics
// over a generated table. Every function is pure.
package aggregate
