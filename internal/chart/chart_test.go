package chart

import (
	"html"
	"strings"
	"testing"

	"github.com/obsidianstack/empviz/internal/aggregate"
)

var sampleCounts = []aggregate.DepartmentCount{
	{Department: "Finance", Count: 17},
	{Department: "R&D", Count: 14},
	{Department: "Marketing", Count: 15},
	{Department: "IT", Count: 13},
	{Department: "Operations", Count: 24},
	{Department: "HR", Count: 9},
	{Department: "Sales", Count: 8},
}

var defaultOpts = Options{WidthIn: 8, HeightIn: 5, TickRotationDeg: 30}

func TestRender_SVGFragment(t *testing.T) {
	svg, err := Render(sampleCounts, defaultOpts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("markup does not start with <svg: %.60q", svg)
	}
	if strings.Contains(svg, "<?xml") {
		t.Error("markup still contains the XML prolog")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("markup is missing </svg>")
	}
}

func TestRender_TitleAndLabels(t *testing.T) {
	svg, err := Render(sampleCounts, defaultOpts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"Department Distribution (n=100)", xLabel, yLabel} {
		if !strings.Contains(svg, want) {
			t.Errorf("markup missing %q", want)
		}
	}
	for _, dc := range sampleCounts {
		if !containsText(svg, dc.Department) {
			t.Errorf("markup missing tick label %q", dc.Department)
		}
	}
}

func TestRender_OneRotatedLabelPerDepartment(t *testing.T) {
	for _, counts := range [][]aggregate.DepartmentCount{sampleCounts, sampleCounts[:3], sampleCounts[4:5]} {
		flat, err := Render(counts, Options{WidthIn: 8, HeightIn: 5})
		if err != nil {
			t.Fatalf("Render(flat) error = %v", err)
		}
		rotated, err := Render(counts, defaultOpts)
		if err != nil {
			t.Fatalf("Render(rotated) error = %v", err)
		}
		got := strings.Count(rotated, "rotate(") - strings.Count(flat, "rotate(")
		if got != len(counts) {
			t.Errorf("%d departments: rotated tick labels = %d, want %d", len(counts), got, len(counts))
		}
	}
}

func TestRender_NoData(t *testing.T) {
	if _, err := Render(nil, defaultOpts); err == nil {
		t.Fatal("expected error for empty counts, got nil")
	}
}

func TestRender_Deterministic(t *testing.T) {
	a, err := Render(sampleCounts, defaultOpts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b, err := Render(sampleCounts, defaultOpts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if a != b {
		t.Error("two renders of the same counts differ")
	}
}

func TestFigure_ClosedFigureRefusesSVG(t *testing.T) {
	fig, err := newFigure(sampleCounts, defaultOpts)
	if err != nil {
		t.Fatalf("newFigure() error = %v", err)
	}
	fig.Close()
	if _, err := fig.SVG(); err == nil {
		t.Fatal("SVG() after Close: expected error, got nil")
	}
}

// containsText reports whether s holds name either raw or HTML-escaped.
func containsText(s, name string) bool {
	return strings.Contains(s, name) || strings.Contains(s, html.EscapeString(name))
}
