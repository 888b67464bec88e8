// Package dataset synthesizes the employee table and writes it to disk.
//
// Generate(src) draws every column from an explicitly passed math/rand/v2
// source, so two sources built with the same seed produce identical tables
// and no process-global random state is involved:
//   - department: weighted categorical over types.Departments
//   - region: uniform over types.Regions
//   - performance_score: Normal(72, 8), 2 decimals
//   - years_experience: uniform integer in [1, 15]
//   - satisfaction_rating: Normal(3.8, 0.7) clamped to [1, 5], 1 decimal
//
// The five SampleRecords always replace rows 0–4 after generation.
//
// WriteCSV writes the table with Header as the first row; WriteXLSX writes
// the same rows to an "Employees" worksheet.
package dataset
