package summarizer

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	summary := NewBuilder().
		WithProject("project.yaml").
		WithScene(SceneInfo{Name: "a"}).
		WithScene(SceneInfo{Name: "b", Layer: true}).
		WithTotals(2048, 150).
		WithSettings(Settings{Workers: 3, PaddingX: 8}).
		WithFonts([]string{"Go"}, []string{"Missing"}).
		Build()

	if summary.Project != "project.yaml" {
		t.Errorf("expected project.yaml, got %q", summary.Project)
	}
	if len(summary.Scenes) != 2 || summary.Scenes[1].Name != "b" {
		t.Errorf("expected scenes appended in order, got %+v", summary.Scenes)
	}
	if summary.TotalBytes != 2048 || summary.DurationMs != 150 {
		t.Errorf("unexpected totals %d %d", summary.TotalBytes, summary.DurationMs)
	}
	if summary.Settings.Workers != 3 {
		t.Errorf("expected 3 workers, got %d", summary.Settings.Workers)
	}
	if len(summary.Fonts.Fallbacks) != 1 || summary.Fonts.Families[0] != "Go" {
		t.Errorf("unexpected fonts %+v", summary.Fonts)
	}
}

func TestFormatFunc(t *testing.T) {
	f := FormatFunc(func(s *Summary) string { return s.Project })

	if got := f.Format(&Summary{Project: "x"}); got != "x" {
		t.Errorf("expected x, got %q", got)
	}
}

func TestFormatterFor(t *testing.T) {
	if _, ok := FormatterFor("out/summary.md").(*MarkdownFormatter); !ok {
		t.Error("expected Markdown for .md")
	}
	if _, ok := FormatterFor("summary").(*MarkdownFormatter); !ok {
		t.Error("expected Markdown without extension")
	}
	if _, ok := FormatterFor("out/summary.JSON").(FormatFunc); !ok {
		t.Error("expected JSON for .JSON")
	}
}

func TestJSONFormatter(t *testing.T) {
	s := NewBuilder().
		WithProject("trip.yaml").
		WithScene(SceneInfo{Name: "beach", Input: "beach.jpg", Scale: 2, Output: "out/beach.png", Format: "png", Width: 200, Height: 200, Bytes: 10, Overlays: 1}).
		WithTotals(10, 5).
		WithFonts([]string{"Go"}, []string{"Helvetica"}).
		Build()

	var decoded struct {
		Project string `json:"project"`
		Scenes  []struct {
			Name  string  `json:"name"`
			Scale float64 `json:"scale"`
		} `json:"scenes"`
		TotalBytes int64 `json:"total_bytes"`
		Fonts      struct {
			Fallbacks []string `json:"fallbacks"`
		} `json:"fonts"`
	}
	if err := json.Unmarshal([]byte(JSONFormatter.Format(s)), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.Project != "trip.yaml" || decoded.TotalBytes != 10 {
		t.Errorf("unexpected decoded summary %+v", decoded)
	}
	if len(decoded.Scenes) != 1 || decoded.Scenes[0].Name != "beach" || decoded.Scenes[0].Scale != 2 {
		t.Errorf("unexpected scenes %+v", decoded.Scenes)
	}
	if len(decoded.Fonts.Fallbacks) != 1 || decoded.Fonts.Fallbacks[0] != "Helvetica" {
		t.Errorf("unexpected fallbacks %v", decoded.Fonts.Fallbacks)
	}
}
