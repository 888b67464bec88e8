package metrics

import (
	"bufio"
	"fmt"
	"io"
	"os"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/obsidianstack/empviz/internal/aggregate"
)

// Metric names written by WriteTextfile.
const (
	DepartmentEmployees      = "empviz_department_employees"
	FocusDepartmentEmployees = "empviz_focus_department_employees"
	EmployeesTotal           = "empviz_employees_total"
	PerformanceScoreMean     = "empviz_performance_score_mean"
	PerformanceScoreStdDev   = "empviz_performance_score_stddev"
	SatisfactionRatingMean   = "empviz_satisfaction_rating_mean"
)

// Families converts s into Prometheus metric families, in output order.
func Families(s aggregate.Summary) []*dto.MetricFamily {
	byDept := make([]*dto.Metric, 0, len(s.Departments))
	for _, dc := range s.Departments {
		byDept = append(byDept, gaugeMetric(float64(dc.Count), "department", dc.Department))
	}

	return []*dto.MetricFamily{
		family(DepartmentEmployees, "Number of generated employees per department.", byDept...),
		family(FocusDepartmentEmployees, "Number of generated employees in the focus department.",
			gaugeMetric(float64(s.FocusCount), "department", s.FocusDepartment)),
		family(EmployeesTotal, "Number of generated employees.", gaugeMetric(float64(s.Rows))),
		family(PerformanceScoreMean, "Mean performance score.", gaugeMetric(s.PerformanceMean)),
		family(PerformanceScoreStdDev, "Sample standard deviation of the performance score.", gaugeMetric(s.PerformanceStdDev)),
		family(SatisfactionRatingMean, "Mean satisfaction rating.", gaugeMetric(s.SatisfactionMean)),
	}
}

// WriteText writes s to w in the Prometheus text exposition format.
func WriteText(w io.Writer, s aggregate.Summary) error {
	for _, mf := range Families(s) {
		if len(mf.GetMetric()) == 0 {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteTextfile writes s to path for the node_exporter textfile collector.
// An existing file is overwritten.
func WriteTextfile(path string, s aggregate.Summary) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("metrics: write textfile: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteText(bw, s); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}
	return nil
}

// ReadText parses Prometheus text exposition from r into metric families
// keyed by name. A partial result with a non-fatal parse warning is still
// returned successfully.
func ReadText(r io.Reader) (map[string]*dto.MetricFamily, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	if err != nil && len(mfs) == 0 {
		return nil, fmt.Errorf("metrics: parse text: %w", err)
	}
	return mfs, nil
}

// SumFamily adds up all counter, gauge, or untyped values in a MetricFamily.
// Returns 0 if mf is nil.
func SumFamily(mf *dto.MetricFamily) float64 {
	if mf == nil {
		return 0
	}
	var total float64
	for _, m := range mf.GetMetric() {
		switch {
		case m.Counter != nil:
			total += m.Counter.GetValue()
		case m.Gauge != nil:
			total += m.Gauge.GetValue()
		case m.Untyped != nil:
			total += m.Untyped.GetValue()
		}
	}
	return total
}

func family(name, help string, ms ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: ms,
	}
}

// gaugeMetric builds a gauge sample; labels are name/value pairs.
func gaugeMetric(v float64, labels ...string) *dto.Metric {
	m := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(v)}}
	for i := 0; i+1 < len(labels); i += 2 {
		m.Label = append(m.Label, &dto.LabelPair{
			Name:  proto.String(labels[i]),
			Value: proto.String(labels[i+1]),
		})
	}
	return m
}
