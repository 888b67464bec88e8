package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/obsidianstack/empviz/pkg/types"
)

// Header is the CSV header row, in column order.
var Header = []string{
	"employee_id",
	"department",
	"region",
	"performance_score",
	"years_experience",
	"satisfaction_rating",
}

// WriteCSV writes t to path as comma separated values with a header row.
// An existing file is overwritten.
func WriteCSV(path string, t types.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("dataset: write csv: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}
	for _, rec := range t {
		if err := w.Write(row(rec)); err != nil {
			return fmt.Errorf("dataset: write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}
	return nil
}

// row formats rec as CSV fields, matching Header.
func row(rec types.Record) []string {
	return []string{
		rec.EmployeeID,
		rec.Department,
		rec.Region,
		formatFloat(rec.PerformanceScore),
		strconv.Itoa(rec.YearsExperience),
		formatFloat(rec.SatisfactionRating),
	}
}

// formatFloat uses the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
