package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l10n.T("Render Summary"))
	fmt.Fprintf(&b, "%s: %s\n", l10n.T("Generated"), s.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	if s.Project != "" {
		fmt.Fprintf(&b, "%s: `%s`\n", l10n.T("Project"), s.Project)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", l10n.T("Scenes"))
	if len(s.Scenes) == 0 {
		b.WriteString(l10n.T("No scenes were rendered.") + "\n\n")
	} else {
		b.WriteString("| Scene | Source | Output | Pixels | Overlays | File Size |\n")
		b.WriteString("|-------|--------|--------|--------|----------|-----------|\n")
		for _, sc := range s.Scenes {
			fmt.Fprintf(&b, "| %s | %s | %s | %dx%d | %d | %s |\n",
				escape(sc.Name), escape(source(sc)), escape(output(sc)),
				sc.Width, sc.Height, sc.Overlays, formatBytes(int64(sc.Bytes)))
		}
		fmt.Fprintf(&b, "\n%d images, %s total in %d ms\n\n",
			len(s.Scenes), formatBytes(s.TotalBytes), s.DurationMs)
	}

	st := s.Settings
	fmt.Fprintf(&b, "## %s\n\n", l10n.T("Settings"))
	fmt.Fprintf(&b, "- Workers: %d\n", st.Workers)
	fmt.Fprintf(&b, "- Padding: %s x %s pt\n", formatFloat(st.PaddingX), formatFloat(st.PaddingY))
	fmt.Fprintf(&b, "- Corner radius: %s pt\n", formatFloat(st.CornerRadius))
	fmt.Fprintf(&b, "- Line spacing: %.2f\n", st.LineSpacing)
	fmt.Fprintf(&b, "- Wrap inset: %s pt\n", formatFloat(st.WrapInset))
	fmt.Fprintf(&b, "- Guides: %s\n\n", onOff(st.Guides))

	fmt.Fprintf(&b, "## %s\n\n", l10n.T("Fonts"))
	if len(s.Fonts.Families) > 0 {
		fmt.Fprintf(&b, "- Available: %s\n", strings.Join(s.Fonts.Families, ", "))
	}
	if len(s.Fonts.Fallbacks) == 0 {
		b.WriteString("- Fallbacks: none\n")
	} else {
		quoted := make([]string, len(s.Fonts.Fallbacks))
		for i, f := range s.Fonts.Fallbacks {
			quoted[i] = "`" + f + "`"
		}
		fmt.Fprintf(&b, "- Fallbacks (drawn with the default family): %s\n", strings.Join(quoted, ", "))
	}

	return b.String()
}

func source(sc SceneInfo) string {
	scale := sc.Scale
	if scale <= 0 {
		scale = 1
	}
	if sc.Layer {
		return fmt.Sprintf("layer @%sx", formatFloat(scale))
	}
	return fmt.Sprintf("%s @%sx", sc.Input, formatFloat(scale))
}

func output(sc SceneInfo) string {
	if sc.Format == "" {
		return sc.Output
	}
	return fmt.Sprintf("%s (%s)", sc.Output, sc.Format)
}

// escape keeps cell text from breaking the table.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func formatFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
