package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/obsidianstack/empviz/internal/aggregate"
	"github.com/obsidianstack/empviz/internal/chart"
	"github.com/obsidianstack/empviz/internal/checks"
	"github.com/obsidianstack/empviz/internal/config"
	"github.com/obsidianstack/empviz/internal/dataset"
	"github.com/obsidianstack/empviz/internal/metrics"
	"github.com/obsidianstack/empviz/internal/report"
	"github.com/obsidianstack/empviz/pkg/types"
)

// Result describes one completed run.
type Result struct {
	RunID   string
	Table   types.Table
	Summary aggregate.Summary
	Checks  []checks.Result
}

// Run generates the dataset, prints the focus department frequency, renders
// the chart and writes every configured artifact. It stops at the first
// error. Exactly two lines are written to stdout on success.
func Run(ctx context.Context, cfg *config.Config, stdout io.Writer) (*Result, error) {
	runID := uuid.NewString()
	log := slog.With("run_id", runID)
	start := time.Now()

	// 1) Generate dataset.
	tbl := dataset.Generate(dataset.NewSource(cfg.Seed))
	if err := dataset.WriteCSV(cfg.Output.CSV, tbl); err != nil {
		return nil, err
	}
	log.Debug("pipeline: dataset written", "path", cfg.Output.CSV, "rows", len(tbl))

	if cfg.Output.XLSX != "" {
		if err := dataset.WriteXLSX(cfg.Output.XLSX, tbl); err != nil {
			return nil, err
		}
		log.Debug("pipeline: workbook written", "path", cfg.Output.XLSX)
	}

	// 2) Frequency of the focus department.
	summary := aggregate.Summarize(tbl, cfg.FocusDepartment)
	fmt.Fprintf(stdout, "Frequency count for '%s' department: %d\n", cfg.FocusDepartment, summary.FocusCount)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3) Department distribution chart.
	svg, err := chart.Render(summary.Departments, chart.Options{
		WidthIn:         cfg.Chart.WidthIn,
		HeightIn:        cfg.Chart.HeightIn,
		TickRotationDeg: cfg.Chart.TickRotationDeg,
	})
	if err != nil {
		return nil, err
	}

	results := checks.Evaluate(cfg.Checks, summary)

	if cfg.Output.Metrics != "" {
		if err := metrics.WriteTextfile(cfg.Output.Metrics, summary); err != nil {
			return nil, err
		}
		log.Debug("pipeline: metrics textfile written", "path", cfg.Output.Metrics)
	}

	// 4) Report with chart and code.
	page := report.Page{
		Title:        cfg.Report.Title,
		Contact:      cfg.Contact,
		ChartSVG:     svg,
		Summary:      summary,
		Checks:       results,
		Code:         Source(),
		CodeLanguage: "go",
		Highlight:    cfg.Report.Highlight,
		Style:        cfg.Report.Style,
		RunID:        runID,
		GeneratedAt:  time.Now(),
	}
	if err := report.Write(cfg.Output.HTML, page); err != nil {
		return nil, err
	}
	fmt.Fprintf(stdout, "Saved HTML to %s\n", cfg.Output.HTML)

	log.Info("pipeline: run complete",
		"focus_department", cfg.FocusDepartment,
		"focus_count", summary.FocusCount,
		"checks_fired", len(checks.Fired(results)),
		"elapsed", time.Since(start),
	)

	return &Result{RunID: runID, Table: tbl, Summary: summary, Checks: results}, nil
}
