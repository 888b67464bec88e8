package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/obsidianstack/empviz/pkg/types"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultSeed            = 42
	DefaultFocusDepartment = types.DeptOperations
	DefaultContact         = "24f2005847@ds.study.iitm.ac.in"
	DefaultCSVPath         = "employees.csv"
	DefaultHTMLPath        = "report.html"
	DefaultTitle           = "Employee Performance Visualization"
	DefaultStyle           = "github"
	DefaultWidthIn         = 8.0
	DefaultHeightIn        = 5.0
	DefaultTickRotationDeg = 30.0
	DefaultLogLevel        = "info"
)

// Config is the full empviz configuration.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// Seed initialises the random source used by the dataset synthesizer.
	Seed uint64 `yaml:"seed"`

	// FocusDepartment is the department whose frequency is printed.
	FocusDepartment string `yaml:"focus_department"`

	// Contact is the static contact line shown at the top of the report.
	Contact string `yaml:"contact"`

	Output OutputConfig  `yaml:"output"`
	Chart  ChartConfig   `yaml:"chart"`
	Report ReportConfig  `yaml:"report"`
	Checks []CheckConfig `yaml:"checks"`
}

// OutputConfig holds artifact paths. Empty optional paths disable that artifact.
type OutputConfig struct {
	CSV  string `yaml:"csv"`
	HTML string `yaml:"html"`

	// XLSX is an optional workbook copy of the CSV.
	XLSX string `yaml:"xlsx"`

	// Metrics is an optional Prometheus textfile with the summary gauges.
	Metrics string `yaml:"metrics"`
}

// ChartConfig controls the department distribution chart.
type ChartConfig struct {
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`

	// TickRotationDeg rotates the x axis tick labels, in degrees.
	TickRotationDeg float64 `yaml:"tick_rotation_deg"`
}

// ReportConfig controls the HTML report.
type ReportConfig struct {
	Title string `yaml:"title"`

	// Highlight enables syntax highlighting of the embedded code.
	Highlight bool `yaml:"highlight"`

	// Style is the chroma style name used when Highlight is set.
	Style string `yaml:"style"`
}

// CheckConfig defines a threshold check evaluated against the summary.
type CheckConfig struct {
	Name string `yaml:"name"`

	// Condition is an expression like "focus_count < 10".
	Condition string `yaml:"condition"`

	// Severity is one of: critical | warning | info.
	Severity string `yaml:"severity"`
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		LogLevel:        DefaultLogLevel,
		Seed:            DefaultSeed,
		FocusDepartment: DefaultFocusDepartment,
		Contact:         DefaultContact,
		Output: OutputConfig{
			CSV:  DefaultCSVPath,
			HTML: DefaultHTMLPath,
		},
		Chart: ChartConfig{
			WidthIn:         DefaultWidthIn,
			HeightIn:        DefaultHeightIn,
			TickRotationDeg: DefaultTickRotationDeg,
		},
		Report: ReportConfig{
			Title:     DefaultTitle,
			Highlight: true,
			Style:     DefaultStyle,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", cfg.LogLevel)
	}
	if !types.IsDepartment(cfg.FocusDepartment) {
		return fmt.Errorf("focus_department: unknown department %q", cfg.FocusDepartment)
	}
	if cfg.Output.CSV == "" {
		return fmt.Errorf("output.csv is required")
	}
	if cfg.Output.HTML == "" {
		return fmt.Errorf("output.html is required")
	}
	if cfg.Chart.WidthIn <= 0 || cfg.Chart.HeightIn <= 0 {
		return fmt.Errorf("chart: width_in and height_in must be positive")
	}
	if cfg.Chart.TickRotationDeg < 0 || cfg.Chart.TickRotationDeg > 90 {
		return fmt.Errorf("chart.tick_rotation_deg must be within [0, 90]")
	}
	for i, c := range cfg.Checks {
		if c.Name == "" {
			return fmt.Errorf("checks[%d]: name is required", i)
		}
		if c.Condition == "" {
			return fmt.Errorf("checks[%d] %q: condition is required", i, c.Name)
		}
		switch c.Severity {
		case "critical", "warning", "info":
		default:
			return fmt.Errorf("checks[%d] %q: unknown severity %q", i, c.Name, c.Severity)
		}
	}
	return nil
}
