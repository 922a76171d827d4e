package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Jstafford98/figmover/internal/config"
	"github.com/Jstafford98/figmover/internal/term"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical figure set 38 MiB", 39845888, "38.0 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"File", "Error"},
		[][]string{
			{"ch03/figures/a_b.png", "malformed figure name"},
			{"ch04/figures/4_1.png"},
		},
		[]Align{AlignLeft},
	)
	for _, want := range []string{"FILE", "ERROR", "ch03/figures/a_b.png", "malformed figure name", "ch04/figures/4_1.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines < 4 {
		t.Errorf("expected a boxed table, got %d lines:\n%s", lines, out)
	}
}

func TestRenderTable_NoHeaders(t *testing.T) {
	if got := RenderTable(nil, [][]string{{"x"}}, nil); got != "" {
		t.Errorf("RenderTable(nil) = %q, want empty", got)
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	term.Configure(config.ColorNever)
	PrintBanner(&buf)
	if strings.Contains(buf.String(), "\033[") {
		t.Error("banner should be uncolored when colors are disabled")
	}
	if !strings.Contains(buf.String(), "|___/") {
		t.Errorf("banner art missing:\n%s", buf.String())
	}
}
